package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// NewHeader creates the page header with the product wordmark and
// tagline. The wordmark is the only large type on the page; everything
// else defers to it.
func NewHeader() fyne.CanvasObject {
	titleText := canvas.NewText("aurora", TextColorLight)
	titleText.TextSize = TitleTextSize
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter

	subtitleText := NewMutedText("Something luminous is on the way.")
	subtitleText.Alignment = fyne.TextAlignCenter

	return container.NewVBox(
		titleText,
		subtitleText,
	)
}
