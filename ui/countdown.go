package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"aurora/motion"
)

const (
	tickInterval = time.Second
	flipDuration = 300 * time.Millisecond
)

// digitCard is one of the four numeric displays. It remembers the value
// rendered on the previous tick so the flip transition only retriggers
// when the value actually changed; the seconds card flips every tick,
// the days card almost never.
type digitCard struct {
	box   fyne.CanvasObject
	text  *canvas.Text
	value int

	// rendered flips to true after the first paint; before that every
	// value counts as changed
	rendered bool

	// anim is replaced on every flip; nil until the first one
	anim *fyne.Animation
}

func newDigitCard(caption string) *digitCard {
	d := &digitCard{}

	d.text = canvas.NewText("--", TextColorLight)
	d.text.TextSize = DigitTextSize
	d.text.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	d.text.Alignment = fyne.TextAlignCenter

	captionText := canvas.NewText(caption, MutedTextColor)
	captionText.TextSize = DigitLabelTextSize
	captionText.Alignment = fyne.TextAlignCenter

	d.box = NewCard(container.NewVBox(d.text, captionText))
	return d
}

// setValue renders a new value, retriggering the flip transition. The
// caller has already decided the value changed.
func (d *digitCard) setValue(n int) {
	d.value = n
	d.rendered = true
	d.text.Text = motion.Pad2(n)
	canvas.Refresh(d.text)
	d.flip()
}

// flip restarts the transition animation. Stopping first means a flip
// mid-animation restarts from the beginning, like removing and re-adding
// a transition class.
func (d *digitCard) flip() {
	if d.anim != nil {
		d.anim.Stop()
	}

	fullSize := float32(DigitTextSize)
	d.anim = fyne.NewAnimation(flipDuration, func(p float32) {
		d.text.TextSize = fullSize * (0.6 + 0.4*p)
		canvas.Refresh(d.text)
	})
	d.anim.Curve = fyne.AnimationEaseOut
	d.anim.Start()
}

// CountdownView counts down to the launch timestamp. Two states exist:
// running and finished. Finished is terminal; once the wall clock
// reaches the target the ticker is cancelled, all four displays read 00
// and no further ticks occur for the rest of the page session.
type CountdownView struct {
	// Card is the complete UI component ready to be added to the layout
	Card fyne.CanvasObject

	// announce carries the countdown status for assistive output
	announce *widget.Label

	days    *digitCard
	hours   *digitCard
	minutes *digitCard
	seconds *digitCard

	// target is parsed once at construction; the config value is static
	// page data, so re-reading it every tick would buy nothing
	target time.Time
	now    func() time.Time

	ticker   *time.Ticker
	quit     chan struct{}
	running  bool
	finished bool
}

// NewCountdownView creates the countdown for the given launch time.
// The clock is injected so tests can drive ticks with a synthetic time.
func NewCountdownView(target time.Time, now func() time.Time) *CountdownView {
	if now == nil {
		now = time.Now
	}

	v := &CountdownView{
		target:  target,
		now:     now,
		days:    newDigitCard("DAYS"),
		hours:   newDigitCard("HOURS"),
		minutes: newDigitCard("MINUTES"),
		seconds: newDigitCard("SECONDS"),
	}

	v.announce = widget.NewLabel("Counting down to launch")
	v.announce.Alignment = fyne.TextAlignCenter

	digits := container.NewGridWithColumns(4,
		v.days.box,
		v.hours.box,
		v.minutes.box,
		v.seconds.box,
	)

	v.Card = container.NewVBox(digits, v.announce)
	return v
}

// Start renders the first tick immediately (no initial delay), then
// schedules a tick every wall-clock second. Starting a finished or
// already-running countdown is a no-op.
func (v *CountdownView) Start() {
	if v.running || v.finished {
		return
	}

	v.tick()
	if v.finished {
		return
	}

	v.quit = make(chan struct{})
	v.ticker = time.NewTicker(tickInterval)
	v.running = true

	go func(ticker *time.Ticker, quit chan struct{}) {
		for {
			select {
			case <-ticker.C:
				fyne.Do(v.tick)
			case <-quit:
				return
			}
		}
	}(v.ticker, v.quit)

	log.Printf("[Countdown] Started, launch at %s", v.target.Format(time.RFC3339))
}

// Stop cancels the repeating tick without entering the finished state.
// Used on window close; idempotent.
func (v *CountdownView) Stop() {
	if !v.running {
		return
	}
	v.ticker.Stop()
	close(v.quit)
	v.running = false
}

// Finished reports whether the terminal state was reached.
func (v *CountdownView) Finished() bool {
	return v.finished
}

// tick recomputes the remaining duration and updates only the digit
// displays whose value changed since the previous tick.
func (v *CountdownView) tick() {
	if v.finished {
		return
	}

	remaining := v.target.Sub(v.now())
	if remaining <= 0 {
		v.finish()
		return
	}

	r := motion.SplitDuration(remaining)
	v.applyDigit(v.days, r.Days)
	v.applyDigit(v.hours, r.Hours)
	v.applyDigit(v.minutes, r.Minutes)
	v.applyDigit(v.seconds, r.Seconds)
}

func (v *CountdownView) applyDigit(d *digitCard, value int) {
	if d.rendered && d.value == value {
		return
	}
	d.setValue(value)
}

// finish is the terminal transition: cancel the schedule, force every
// display to zero and announce completion. Irreversible for this page
// session.
func (v *CountdownView) finish() {
	v.finished = true
	v.Stop()

	for _, d := range []*digitCard{v.days, v.hours, v.minutes, v.seconds} {
		d.setValue(0)
	}

	v.announce.SetText("We have launched!")
	log.Println("[Countdown] Launch time reached")
}
