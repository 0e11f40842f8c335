package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// NewFooter creates the page footer with the copyright line. The year is
// stamped from the supplied clock time so tests can pin it.
func NewFooter(now time.Time) fyne.CanvasObject {
	footerText := canvas.NewText(
		fmt.Sprintf("© %d Aurora Labs · all signals reserved", now.Year()),
		MutedTextColor,
	)
	footerText.TextSize = FooterTextSize
	footerText.Alignment = fyne.TextAlignCenter

	return footerText
}
