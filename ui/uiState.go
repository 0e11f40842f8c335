package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"aurora/models"
)

// AuroraAppState holds the shared state for the launch page. The only
// cross-component state that exists is which page is currently shown;
// everything else (countdown, parallax, form) owns its data exclusively.
//
// The state uses callbacks to notify components when the page changes,
// following an observer pattern. This keeps the navigation panel and the
// page view loosely coupled: the panel sets the page, the view reacts,
// and neither knows about the other.
type AuroraAppState struct {
	// Window is the main application window, needed for dialogs and focus
	Window fyne.Window

	// Config is the loaded landing page configuration
	Config models.LandingConfig

	// CurrentPage is the ID of the page currently shown
	CurrentPage string

	// OnPageChanged callbacks fire after the current page ID changes.
	// The callback receives the new page ID.
	OnPageChanged []func(id string)
}

// NewAuroraAppState creates the shared state. Called once at startup;
// the page always opens on "home".
func NewAuroraAppState(window fyne.Window, cfg models.LandingConfig) *AuroraAppState {
	return &AuroraAppState{
		Window:        window,
		Config:        cfg,
		CurrentPage:   "home",
		OnPageChanged: make([]func(string), 0),
	}
}

// SetPage switches the current page and notifies all registered
// callbacks. Setting the page that is already current is a no-op so the
// active nav link doesn't re-animate.
func (s *AuroraAppState) SetPage(id string) {
	if id == s.CurrentPage {
		return
	}

	s.CurrentPage = id
	log.Printf("[UI] Page changed to %s", id)

	for _, callback := range s.OnPageChanged {
		callback(id)
	}
}

// RegisterPageChangedCallback registers a callback to be called when the
// current page changes. Multiple callbacks can be registered and will all
// be called in order.
func (s *AuroraAppState) RegisterPageChangedCallback(callback func(string)) {
	s.OnPageChanged = append(s.OnPageChanged, callback)
}
