package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/celestial-survivor/shared/kinematics"
	"github.com/automoto/celestial-survivor/sim"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width     float64
	Height    float64
	MaxHealth int
}

// PhysicsConfig holds the per-tick movement constants. Velocities are pixels
// per tick at Config.TPS.
type PhysicsConfig struct {
	Speed          float64
	JumpStrength   float64
	GravityPerTick float64
	JumpCut        bool    // Cap ascent speed while the jump key is released
	AscentCapSpeed float64 // Upward speed cap applied by the jump cut
	Epsilon        float64 // Contact tolerance in pixels
	Ceiling        string  // "crossing" or "overlap"
}

// HazardConfig contains spike configuration
type HazardConfig struct {
	Damage int
}

// ShipPartConfig contains pickup size and hover animation values
type ShipPartConfig struct {
	Width          float64
	Height         float64
	HoverAmplitude float64 // pixels
	HoverPeriodMs  float64 // sin(t / period)
	GlowColor      color.RGBA
	Color          color.RGBA
}

// IntroConfig contains the story intro timing
type IntroConfig struct {
	Texts         []string
	InitialWaitMs float64
	FadeRate      float64 // alpha per millisecond
	VisibleMs     float64
	TextColor     color.RGBA
	FontSize      float64
	SkipHint      string
	HintColor     color.RGBA
	HintMargin    int
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	PanelX, PanelY          float64
	PanelWidth, PanelHeight float64
	PanelColor              color.RGBA
	PanelBorderColor        color.RGBA

	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	HealthBarLow    color.RGBA
	HealthTweenMs   float32

	TextColor   color.RGBA
	HUDFontSize float64

	DebugColors map[string]color.RGBA
}

// WorldConfig contains background and level drawing colors
type WorldConfig struct {
	SkyTop        color.RGBA
	SkyBottom     color.RGBA
	GroundColor   color.RGBA
	PlatformColor color.RGBA
	PlatformEdge  color.RGBA
	SpikeColor    color.RGBA
	PlayerColor   color.RGBA
	PlayerVisor   color.RGBA
	StarCount     int
	PlantCount    int
	PlantSwayPx   float64
	PlantSwayMs   float64
	PlantColor    color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// DeathConfig contains the death overlay text and colors
type DeathConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// LevelCompleteConfig contains the final overlay shown after the last level
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	Message      string
	ContinueHint string
}

// MenuConfig contains start screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
	Subtitle        string
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	FadeOutMs       float32
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip start screen and intro
	ShowSpace bool   // Draw the collision space on start
	LevelsDir string // Load levels from disk and watch for changes
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Hazard HazardConfig
var ShipPart ShipPartConfig
var Intro IntroConfig
var UI UIConfig
var World WorldConfig
var Pause PauseConfig
var Death DeathConfig
var LevelComplete LevelCompleteConfig
var Menu MenuConfig
var Debug DebugConfig
var Log LogConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 224, B: 255, A: 255}
	SoftCyan     = color.RGBA{R: 80, G: 200, B: 255, A: 180}
	Red          = color.RGBA{R: 255, G: 68, B: 68, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 100, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gray         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 640,
		TPS:    60,
		Title:  "Celestial Survivor",
	}

	Player = PlayerConfig{
		Width:     40,
		Height:    40,
		MaxHealth: 100,
	}

	Physics = PhysicsConfig{
		Speed:          4.5,
		JumpStrength:   16.5,
		GravityPerTick: 0.8,
		JumpCut:        true,
		AscentCapSpeed: 4,
		Epsilon:        0.01,
		Ceiling:        "crossing",
	}

	Hazard = HazardConfig{
		Damage: 20,
	}

	ShipPart = ShipPartConfig{
		Width:          40,
		Height:         40,
		HoverAmplitude: 5,
		HoverPeriodMs:  300,
		GlowColor:      color.RGBA{R: 0, G: 224, B: 255, A: 80},
		Color:          color.RGBA{R: 190, G: 200, B: 215, A: 255},
	}

	Intro = IntroConfig{
		Texts: []string{
			"You were piloting the Celestial Voyager...",
			"A sudden surge of energy tears through your ship...",
			"You crash through the atmosphere of an unknown world...",
			"You awaken among twisted skies and strange light, alone...",
			"Find the scattered parts, rebuild your ship... and survive.",
		},
		InitialWaitMs: 1000,
		FadeRate:      0.0015,
		VisibleMs:     1500,
		TextColor:     White,
		FontSize:      26,
		SkipHint:      "Press ENTER to skip",
		HintColor:     Gray,
		HintMargin:    20,
	}

	UI = UIConfig{
		PanelX:           15,
		PanelY:           10,
		PanelWidth:       260,
		PanelHeight:      90,
		PanelColor:       color.RGBA{R: 15, G: 20, B: 30, A: 153},
		PanelBorderColor: SoftCyan,

		HealthBarWidth:  200,
		HealthBarHeight: 18,
		HealthBarBg:     color.RGBA{R: 60, G: 20, B: 20, A: 200},
		HealthBarFg:     Green,
		HealthBarLow:    Red,
		HealthTweenMs:   250,

		TextColor:   White,
		HUDFontSize: 18,

		DebugColors: map[string]color.RGBA{
			"player":   {R: 0, G: 255, B: 0, A: 255},
			"platform": {R: 0, G: 150, B: 255, A: 255},
			"floor":    {R: 128, G: 128, B: 128, A: 255},
			"spike":    {R: 255, G: 0, B: 0, A: 255},
			"part":     {R: 255, G: 255, B: 0, A: 255},
		},
	}

	World = WorldConfig{
		SkyTop:        color.RGBA{R: 10, G: 8, B: 30, A: 255},
		SkyBottom:     color.RGBA{R: 45, G: 20, B: 70, A: 255},
		GroundColor:   color.RGBA{R: 29, G: 59, B: 42, A: 255},
		PlatformColor: color.RGBA{R: 70, G: 60, B: 90, A: 255},
		PlatformEdge:  color.RGBA{R: 140, G: 120, B: 190, A: 255},
		SpikeColor:    color.RGBA{R: 200, G: 210, B: 220, A: 255},
		PlayerColor:   color.RGBA{R: 230, G: 230, B: 240, A: 255},
		PlayerVisor:   Cyan,
		StarCount:     80,
		PlantCount:    8,
		PlantSwayPx:   3,
		PlantSwayMs:   800,
		PlantColor:    color.RGBA{R: 60, G: 140, B: 90, A: 200},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Press ESC to resume",
	}

	Death = DeathConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 178},
		TitleColor:   Red,
		TextColor:    White,
		Title:        "YOU DIED",
		Hint:         "Press ENTER to restart",
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		Title:        "Ship Rebuilt!",
		Message:      "Every part recovered. The Celestial Voyager flies again.",
		ContinueHint: "Press ENTER to play again",
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 10, G: 8, B: 30, A: 255},
		TitleColor:      Cyan,
		Title:           "Celestial Survivor",
		Subtitle:        "Rebuild your ship. Survive.",
		ButtonIdle:      color.RGBA{R: 40, G: 60, B: 110, A: 255},
		ButtonHover:     color.RGBA{R: 60, G: 100, B: 170, A: 255},
		ButtonPressed:   color.RGBA{R: 30, G: 40, B: 80, A: 255},
		FadeOutMs:       800,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		ShowSpace: false,
	}

	Log = LogConfig{
		Level: "info",
	}
}

// Tuning converts the physics config into resolver tuning.
func Tuning() kinematics.Tuning {
	t := kinematics.Tuning{
		Speed:          Physics.Speed,
		JumpStrength:   Physics.JumpStrength,
		Gravity:        Physics.GravityPerTick,
		JumpCut:        Physics.JumpCut,
		AscentCapSpeed: Physics.AscentCapSpeed,
		HazardDamage:   Hazard.Damage,
		Epsilon:        Physics.Epsilon,
	}
	if Physics.Ceiling == "overlap" {
		t.Ceiling = kinematics.CeilingOverlap
	}
	return t
}

// SessionOptions sizes the simulation from the player, ship part and physics
// config.
func SessionOptions() sim.Options {
	return sim.Options{
		Tuning:    Tuning(),
		PlayerW:   Player.Width,
		PlayerH:   Player.Height,
		MaxHealth: Player.MaxHealth,
		PartW:     ShipPart.Width,
		PartH:     ShipPart.Height,
	}
}
