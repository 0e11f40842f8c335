package ui

import (
	"log"
	"math"
	"math/rand/v2"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"aurora/models"
	"aurora/motion"
	"aurora/sprites"
)

// Orb sizing and drift bounds, in pixels
const (
	orbSizeMin     = 120
	orbSizeMax     = 280
	orbDriftRadius = 18
)

// OrbField owns the decorative glow orbs drifting behind the page. Orbs
// are distributed round-robin across one layer per configured parallax
// depth, so the parallax field can move near layers more than far ones.
//
// Each orb gets a randomized drift duration and a randomized phase offset
// applied as a negative start delay, so on first paint every orb is
// already mid-cycle instead of the whole field starting in sync.
type OrbField struct {
	// Layers are the depth-tagged layer containers, ready to hand to
	// the parallax field
	Layers []ParallaxLayer

	// Content is the stacked layer containers for the background
	Content fyne.CanvasObject

	anims   []*fyne.Animation
	running bool
}

// NewOrbField builds the orb layers for the given config, scattering
// OrbCount orbs across the area. Pass a seeded rng for deterministic
// placement in tests. A zero orb count or no depth layers yields an
// empty field whose Start is a no-op.
func NewOrbField(cfg models.LandingConfig, rng *rand.Rand, area fyne.Size) *OrbField {
	field := &OrbField{}

	if cfg.OrbCount <= 0 || len(cfg.ParallaxDepths) == 0 {
		field.Content = container.NewWithoutLayout()
		return field
	}

	layerBoxes := make([]*fyne.Container, len(cfg.ParallaxDepths))
	for i, depth := range cfg.ParallaxDepths {
		layerBoxes[i] = container.NewWithoutLayout()
		field.Layers = append(field.Layers, ParallaxLayer{Object: layerBoxes[i], Depth: depth})
	}

	for o := 0; o < cfg.OrbCount; o++ {
		layer := layerBoxes[o%len(layerBoxes)]
		tint := OrbTints[o%len(OrbTints)]

		params := motion.SampleOrbParams(rng)
		diameter := orbSizeMin + rng.Float64()*(orbSizeMax-orbSizeMin)

		orb := canvas.NewImageFromImage(sprites.Glow(int(diameter), tint))
		orb.Resize(fyne.NewSize(float32(diameter), float32(diameter)))
		orb.Move(fyne.NewPos(
			float32(rng.Float64()*(float64(area.Width)-diameter)),
			float32(rng.Float64()*(float64(area.Height)-diameter)),
		))
		layer.Add(orb)

		field.anims = append(field.anims, driftAnimation(orb, params, rng))
	}

	stacked := make([]fyne.CanvasObject, len(layerBoxes))
	for i, box := range layerBoxes {
		stacked[i] = box
	}
	field.Content = container.NewWithoutLayout(stacked...)

	return field
}

// driftAnimation builds the repeating elliptical drift for one orb. The
// sampled delay is negated into a phase shift so the cycle appears to
// have begun before the page did.
func driftAnimation(orb *canvas.Image, params motion.OrbParams, rng *rand.Rand) *fyne.Animation {
	base := orb.Position()
	radius := orbDriftRadius * (0.6 + rng.Float64()*0.8)
	startOffset := params.StartOffset()

	anim := fyne.NewAnimation(time.Duration(params.Duration*float64(time.Second)), func(p float32) {
		elapsed := float64(p)*params.Duration - startOffset
		phase := math.Mod(elapsed, params.Duration) / params.Duration
		angle := phase * 2 * math.Pi

		orb.Move(fyne.NewPos(
			base.X+float32(radius*math.Cos(angle)),
			base.Y+float32(radius*math.Sin(angle)*0.6),
		))
	})
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Curve = fyne.AnimationLinear

	return anim
}

// Start begins every orb's drift animation. One-shot setup; calling
// Start again while running is a no-op.
func (f *OrbField) Start() {
	if f.running || len(f.anims) == 0 {
		return
	}
	for _, anim := range f.anims {
		anim.Start()
	}
	f.running = true
	log.Printf("[UI] Orb field started with %d orbs", len(f.anims))
}

// Stop halts the drift animations. Idempotent.
func (f *OrbField) Stop() {
	if !f.running {
		return
	}
	for _, anim := range f.anims {
		anim.Stop()
	}
	f.running = false
}

// OrbCount returns how many orbs were spawned.
func (f *OrbField) OrbCount() int {
	return len(f.anims)
}
