package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/celestial-survivor/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StartUI holds the ebitenui interface for the start screen
type StartUI struct {
	UI *ebitenui.UI

	OnPlay func()

	playButton *widget.Button
	bestLabel  *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewStartUI creates the start screen. bestParts is the best ship part count
// from earlier runs; zero hides the record line.
func NewStartUI(bestParts int, onPlay func()) (*StartUI, error) {
	sui := &StartUI{OnPlay: onPlay}

	if err := sui.loadFonts(); err != nil {
		return nil, err
	}
	sui.buildUI(bestParts)

	return sui, nil
}

func (sui *StartUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load start screen font: %w", err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   48,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   22,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	return nil
}

func (sui *StartUI) buildUI(bestParts int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(18),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &sui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Subtitle, &sui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	sui.playButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 48),
		),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("PLAY", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Play()
		}),
	)
	contentContainer.AddChild(sui.playButton)

	sui.bestLabel = widget.NewLabel(
		widget.LabelOpts.Text(bestPartsText(bestParts), &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	)
	contentContainer.AddChild(sui.bestLabel)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Arrows/A,D move   Space/W jump   ESC pause   M mute", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 140, 170, 255},
		}),
	))

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *StartUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// Play disables the button and fires OnPlay once. Keyboard and gamepad
// confirm go through here too.
func (sui *StartUI) Play() {
	if sui.playButton.GetWidget().Disabled {
		return
	}
	sui.playButton.GetWidget().Disabled = true
	if sui.OnPlay != nil {
		sui.OnPlay()
	}
}

func (sui *StartUI) Update() {
	sui.UI.Update()
}

func bestPartsText(parts int) string {
	if parts <= 0 {
		return ""
	}
	return fmt.Sprintf("Best run: %d ship parts recovered", parts)
}
