package ui

import (
	"log"
	"math/rand/v2"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"aurora/models"
	"aurora/subscribe"
)

// MainLayout bundles the assembled page content with the components that
// keep running after construction, so the caller can stop them when the
// window goes away.
type MainLayout struct {
	Content fyne.CanvasObject

	Orbs      *OrbField
	Parallax  *ParallaxField
	Countdown *CountdownView
	Panel     *NavPanel
	Subscribe *SubscribeView
}

// BuildMainLayout constructs the complete launch page and starts its
// moving parts. This is the startup orchestrator: every component is
// initialized once, in a fixed order, and each guards its own
// availability, so one opting out (bad countdown target, touch-only
// device, zero orbs) never prevents the others from coming up.
//
// The layout structure is:
//   - Background: night-sky gradient
//   - Orb layers: drifting glows, nudged by the parallax field
//   - Hover surface: invisible, feeds pointer samples to the parallax field
//   - Top bar: wordmark and tagline, menu trigger on the right
//   - Center: the current theme page (home hosts countdown + subscribe)
//   - Footer: year-stamped copyright line
func BuildMainLayout(window fyne.Window, cfg models.LandingConfig, subscribeFn subscribe.Func) *MainLayout {
	state := NewAuroraAppState(window, cfg)
	m := &MainLayout{}

	gradient := canvas.NewLinearGradient(GradientStartColor, GradientEndColor, GradientAngle)

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9E3779B97F4A7C15))
	area := fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	m.Orbs = NewOrbField(cfg, rng, area)

	m.Parallax = NewParallaxField(m.Orbs.Layers, area, fyne.CurrentDevice().IsMobile())
	surface := newParallaxSurface(m.Parallax)

	// Home page components
	m.Subscribe = NewSubscribeView(state, subscribeFn)

	if target, err := time.Parse(time.RFC3339, cfg.CountdownTarget); err != nil {
		// Missing collaborator policy: an unusable target disables the
		// countdown and nothing else
		log.Printf("[Countdown] Unusable target %q: %v", cfg.CountdownTarget, err)
	} else {
		m.Countdown = NewCountdownView(target, time.Now)
	}

	homeItems := []fyne.CanvasObject{layout.NewSpacer()}
	if m.Countdown != nil {
		homeItems = append(homeItems, m.Countdown.Card)
	}
	homeItems = append(homeItems, m.Subscribe.Card, layout.NewSpacer())
	home := container.NewVBox(homeItems...)

	pageView := NewPageView(state, container.NewCenter(home))

	m.Panel = NewNavPanel(state, cfg.NavLinks)

	topBar := container.NewBorder(nil, nil, nil, m.Panel.Trigger, NewHeader())

	mainLayout := container.NewBorder(
		container.NewPadded(topBar),
		container.NewPadded(NewFooter(time.Now())),
		nil,
		nil,
		container.NewPadded(pageView.Container),
	)

	m.Content = container.NewStack(gradient, m.Orbs.Content, surface, mainLayout)

	// The open panel holds keyboard focus and handles Escape itself;
	// this catches the key when nothing has focus at all
	window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			m.Panel.Close()
		}
	})

	// Fan-out startup: each module runs, or declines, independently
	m.Orbs.Start()
	if !m.Parallax.Start() {
		log.Println("[UI] Parallax field idle (no layers or no hover input)")
	}
	if m.Countdown != nil {
		m.Countdown.Start()
	}

	return m
}

// Stop halts every continuously running component. Safe to call twice.
func (m *MainLayout) Stop() {
	m.Parallax.Stop()
	m.Orbs.Stop()
	if m.Countdown != nil {
		m.Countdown.Stop()
	}
}
