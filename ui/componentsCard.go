package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewCard wraps content in a translucent panel floated over the
// background gradient. Cards give the hero sections visual separation
// without blocking the orbs drifting behind them.
func NewCard(content fyne.CanvasObject) fyne.CanvasObject {
	bg := canvas.NewRectangle(CardBackgroundColor)
	bg.CornerRadius = 12

	// Keep the card visible even when content is very small
	bg.SetMinSize(fyne.NewSize(CardMinWidth, CardMinHeight))

	return container.NewStack(bg, container.NewPadded(content))
}

// NewCardWithHeader creates a card with a title header and separator.
func NewCardWithHeader(title string, content fyne.CanvasObject) fyne.CanvasObject {
	header := container.NewVBox(
		NewBoldLabel(title),
		NewSeparator(),
	)

	cardContent := container.NewBorder(
		header,
		nil,
		nil,
		nil,
		content,
	)

	return NewCard(cardContent)
}
