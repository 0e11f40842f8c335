package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"aurora/models"
)

const (
	triggerClosedLabel = "Menu"
	triggerOpenLabel   = "Close menu"

	// navPanelMargin insets the panel from the window edge while open
	navPanelMargin = 16
	navPanelTop    = 48
)

// NavPanel is the slide-in navigation for switching between the theme
// pages. Two states, open and closed, initial closed. While open the
// panel sits on a full-canvas overlay that owns every way of closing:
// a tap outside the panel, a tap on the trigger (the overlay swallows
// it, so the panel closes without immediately re-opening) and Escape.
// All of them funnel through Close, so the trigger label always
// matches the real state.
type NavPanel struct {
	// Trigger is the button that toggles the panel, placed in the top bar
	Trigger *widget.Button

	state *AuroraAppState
	links []models.NavLink

	linkButtons map[string]*widget.Button
	panel       fyne.CanvasObject
	overlay     *navOverlay
}

// NewNavPanel creates the panel for the configured links. The link whose
// ID matches the current page is marked active; exactly one or zero
// links carry the mark at any time.
func NewNavPanel(state *AuroraAppState, links []models.NavLink) *NavPanel {
	p := &NavPanel{
		state:       state,
		links:       links,
		linkButtons: make(map[string]*widget.Button),
	}

	p.Trigger = widget.NewButton(triggerClosedLabel, func() {
		p.Toggle()
	})

	items := []fyne.CanvasObject{
		NewBoldLabel("Navigate"),
		NewSeparator(),
	}
	for _, link := range links {
		id := link.ID
		btn := widget.NewButton(link.Title, func() {
			p.state.SetPage(id)
			p.Close()
		})
		btn.Alignment = widget.ButtonAlignLeading
		p.linkButtons[id] = btn
		items = append(items, btn)
	}

	p.panel = container.NewVBox(items...)

	p.refreshActive(state.CurrentPage)
	state.RegisterPageChangedCallback(p.refreshActive)

	return p
}

// Toggle flips between open and closed.
func (p *NavPanel) Toggle() {
	if p.Expanded() {
		p.Close()
	} else {
		p.Open()
	}
}

// Open shows the panel near the trigger and moves keyboard focus onto
// the overlay, so Escape reaches it no matter which widget was focused
// before. No-op while already open.
func (p *NavPanel) Open() {
	if p.Expanded() {
		return
	}
	if p.state == nil || p.state.Window == nil {
		return
	}

	cv := p.state.Window.Canvas()
	p.overlay = newNavOverlay(p.panel, p.Close)
	cv.Overlays().Add(p.overlay)
	p.overlay.Resize(cv.Size())
	cv.Focus(p.overlay)

	p.Trigger.SetText(triggerOpenLabel)
	log.Println("[UI] Navigation panel opened")
}

// Close hides the panel and restores the trigger label. Idempotent;
// every dismissal path ends up here, including the overlay's own
// outside-tap and Escape handling.
func (p *NavPanel) Close() {
	if p.overlay == nil {
		return
	}

	ov := p.overlay
	p.overlay = nil

	if p.state != nil && p.state.Window != nil {
		cv := p.state.Window.Canvas()
		cv.Overlays().Remove(ov)
		if cv.Focused() == ov {
			cv.Unfocus()
		}
	}

	p.Trigger.SetText(triggerClosedLabel)
	log.Println("[UI] Navigation panel closed")
}

// Expanded reports the open state.
func (p *NavPanel) Expanded() bool {
	return p.overlay != nil
}

// refreshActive marks the link matching the current page and unmarks
// the rest.
func (p *NavPanel) refreshActive(current string) {
	for id, btn := range p.linkButtons {
		if id == current {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}
}

// navOverlay is the full-canvas layer hosting the panel while it is
// open. It is tappable, so a click anywhere outside the panel dismisses
// it without reaching the widgets underneath, and focusable, so Escape
// dismisses it regardless of what held focus before it opened.
type navOverlay struct {
	widget.BaseWidget

	panel     fyne.CanvasObject
	onDismiss func()
}

var _ fyne.Tappable = (*navOverlay)(nil)
var _ fyne.SecondaryTappable = (*navOverlay)(nil)
var _ fyne.Focusable = (*navOverlay)(nil)

func newNavOverlay(panel fyne.CanvasObject, onDismiss func()) *navOverlay {
	o := &navOverlay{panel: panel, onDismiss: onDismiss}
	o.ExtendBaseWidget(o)
	return o
}

func (o *navOverlay) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(PanelBackgroundColor)
	bg.CornerRadius = 12
	return &navOverlayRenderer{overlay: o, bg: bg}
}

func (o *navOverlay) Tapped(*fyne.PointEvent) {
	o.onDismiss()
}

func (o *navOverlay) TappedSecondary(*fyne.PointEvent) {
	o.onDismiss()
}

func (o *navOverlay) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape {
		o.onDismiss()
	}
}

func (o *navOverlay) TypedRune(rune) {}

func (o *navOverlay) FocusGained() {}

func (o *navOverlay) FocusLost() {}

type navOverlayRenderer struct {
	overlay *navOverlay
	bg      *canvas.Rectangle
}

func (r *navOverlayRenderer) Layout(size fyne.Size) {
	min := r.overlay.panel.MinSize()
	pos := fyne.NewPos(size.Width-min.Width-navPanelMargin, navPanelTop)

	r.bg.Move(pos)
	r.bg.Resize(min)
	r.overlay.panel.Move(pos)
	r.overlay.panel.Resize(min)
}

func (r *navOverlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *navOverlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.overlay.panel}
}

func (r *navOverlayRenderer) Refresh() {
	r.bg.Refresh()
	canvas.Refresh(r.overlay.panel)
}

func (r *navOverlayRenderer) Destroy() {}
