package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// NewBoldLabel creates a label with bold text styling.
func NewBoldLabel(text string) *widget.Label {
	return widget.NewLabelWithStyle(
		text,
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
}

// NewSeparator creates a horizontal separator line.
func NewSeparator() *widget.Separator {
	return widget.NewSeparator()
}

// NewMutedText creates secondary copy in the muted palette color.
func NewMutedText(text string) *canvas.Text {
	t := canvas.NewText(text, MutedTextColor)
	t.TextSize = SubtitleTextSize
	return t
}
