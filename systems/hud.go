package systems

import (
	"fmt"

	"github.com/automoto/celestial-survivor/archetypes"
	"github.com/automoto/celestial-survivor/components"
	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/automoto/celestial-survivor/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// lowHealthRatio is where the bar switches to the warning color.
const lowHealthRatio = 0.3

// UpdateHUD eases the displayed health toward the player's health.
func UpdateHUD(ecs *ecs.ECS) {
	sessEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	health := components.Session.Get(sessEntry).State().Health
	bar := GetOrCreateHealthBar(ecs, health)
	stepHealthBar(bar, health, float32(1000)/float32(cfg.C.TPS))
}

func stepHealthBar(bar *components.HealthBarData, health int, dtMs float32) {
	if health != bar.Target {
		bar.Target = health
		bar.Tween = gween.New(bar.Display, float32(health), cfg.UI.HealthTweenMs, ease.OutQuad)
	}
	if bar.Tween == nil {
		return
	}
	v, done := bar.Tween.Update(dtMs)
	bar.Display = v
	if done {
		bar.Tween = nil
	}
}

// DrawHUD renders the status panel: health bar, ship parts and level name.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	sessEntry, ok := components.Session.First(ecs.World)
	if !ok {
		return
	}
	sess := components.Session.Get(sessEntry)
	level := components.Level.Get(sessEntry)
	state := sess.State()
	bar := GetOrCreateHealthBar(ecs, state.Health)

	ui := cfg.UI
	vector.FillRect(screen, float32(ui.PanelX), float32(ui.PanelY), float32(ui.PanelWidth), float32(ui.PanelHeight), ui.PanelColor, false)
	vector.StrokeRect(screen, float32(ui.PanelX), float32(ui.PanelY), float32(ui.PanelWidth), float32(ui.PanelHeight), 1, ui.PanelBorderColor, false)

	face := fonts.HUD.Get()
	x := int(ui.PanelX) + 12
	text.Draw(screen, "Health", face, x, int(ui.PanelY)+22, ui.TextColor)

	barX := float32(ui.PanelX) + 12
	barY := float32(ui.PanelY) + 30
	vector.FillRect(screen, barX, barY, float32(ui.HealthBarWidth), float32(ui.HealthBarHeight), ui.HealthBarBg, false)

	ratio := healthRatio(bar.Display, state.MaxHealth)
	fg := ui.HealthBarFg
	if ratio <= lowHealthRatio {
		fg = ui.HealthBarLow
	}
	vector.FillRect(screen, barX, barY, float32(ui.HealthBarWidth)*ratio, float32(ui.HealthBarHeight), fg, false)

	text.Draw(screen, fmt.Sprintf("Ship Parts: %d", state.ShipParts), face, x, int(ui.PanelY)+72, ui.TextColor)

	small := fonts.Small.Get()
	label := fmt.Sprintf("Level %d/%d: %s", level.Index+1, level.Count, level.Name)
	width := float64(screen.Bounds().Dx())
	text.Draw(screen, label, small, centerTextX(label, small, width), int(ui.PanelY)+16, ui.TextColor)
}

// healthRatio is the filled fraction of the bar, clamped to [0, 1].
func healthRatio(display float32, maxHealth int) float32 {
	if maxHealth <= 0 {
		return 0
	}
	return min(max(display/float32(maxHealth), 0), 1)
}

// GetOrCreateHealthBar returns the singleton HealthBar component, starting
// it at the given health so it does not animate in from zero.
func GetOrCreateHealthBar(ecs *ecs.ECS, health int) *components.HealthBarData {
	entry, ok := components.HealthBar.First(ecs.World)
	if !ok {
		entry = archetypes.HealthBar.Spawn(ecs)
		components.HealthBar.SetValue(entry, components.HealthBarData{
			Target:  health,
			Display: float32(health),
		})
	}
	return components.HealthBar.Get(entry)
}
