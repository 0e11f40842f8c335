package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PageView hosts the theme pages and swaps the visible one when the
// navigation panel changes the current page. Unknown page IDs fall back
// to home so a stale link can never blank the window.
type PageView struct {
	// Container is placed in the center of the main layout
	Container *fyne.Container

	pages map[string]fyne.CanvasObject
}

// NewPageView builds the page set. The home page is passed in because it
// hosts the live components (countdown, subscribe card) constructed by
// the layout; the remaining pages are static copy.
func NewPageView(state *AuroraAppState, home fyne.CanvasObject) *PageView {
	v := &PageView{
		pages: map[string]fyne.CanvasObject{
			"home":         home,
			"features":     featuresPage(),
			"early-access": earlyAccessPage(),
		},
	}

	v.Container = container.NewStack(v.pages[state.CurrentPage])

	state.RegisterPageChangedCallback(func(id string) {
		v.show(id)
	})

	return v
}

func (v *PageView) show(id string) {
	page, ok := v.pages[id]
	if !ok {
		log.Printf("[UI] Unknown page %q, falling back to home", id)
		page = v.pages["home"]
	}

	v.Container.Objects = []fyne.CanvasObject{page}
	v.Container.Refresh()
}

func featuresPage() fyne.CanvasObject {
	intro := widget.NewLabel(
		"What's coming:\n\n" +
			"• Ambient scenes that follow your focus\n" +
			"• A glow engine tuned for late nights\n" +
			"• Scenes that drift with your pointer\n" +
			"• Zero accounts, zero tracking",
	)
	intro.Wrapping = fyne.TextWrapWord

	return container.NewCenter(NewCardWithHeader("Features", intro))
}

func earlyAccessPage() fyne.CanvasObject {
	copyText := widget.NewLabel(
		"Early access opens in small waves. Join the list on the home " +
			"page and you'll be queued for the next one. Wave invites go " +
			"out in the order signups arrive.",
	)
	copyText.Wrapping = fyne.TextWrapWord

	return container.NewCenter(NewCardWithHeader("Early Access", copyText))
}
