package ui

import (
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2/canvas"
)

func TestFooterStampsCurrentYear(t *testing.T) {
	now := time.Date(2031, 4, 1, 0, 0, 0, 0, time.UTC)

	footer := NewFooter(now)

	text, ok := footer.(*canvas.Text)
	if !ok {
		t.Fatalf("footer is %T, want *canvas.Text", footer)
	}
	if !strings.Contains(text.Text, "2031") {
		t.Errorf("footer text %q does not contain the year 2031", text.Text)
	}
}
