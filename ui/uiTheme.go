package ui

import (
	"image/color"
)

// Theme constants define the visual appearance of the launch page.
// By centralizing these values, we ensure consistency across all UI
// components and make it easy to retune the look of the whole page.

// Color palette for the application
var (
	// GradientStartColor is the deep indigo at the top of the night-sky gradient
	GradientStartColor = color.RGBA{R: 24, G: 20, B: 58, A: 255}

	// GradientEndColor is the near-black at the bottom of the gradient
	GradientEndColor = color.RGBA{R: 8, G: 6, B: 24, A: 255}

	// AccentColor is the glow purple used for highlights and primary actions
	AccentColor = color.RGBA{R: 148, G: 130, B: 255, A: 255}

	// CardBackgroundColor is the translucent panel color floated over the gradient
	CardBackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 18}

	// PanelBackgroundColor is the near-opaque backing of the navigation
	// panel, dark enough to read over any part of the gradient
	PanelBackgroundColor = color.NRGBA{R: 18, G: 15, B: 44, A: 245}

	// TextColorLight is used for text on the dark background
	TextColorLight = color.White

	// MutedTextColor is used for secondary copy
	MutedTextColor = color.RGBA{R: 185, G: 182, B: 210, A: 255}

	// OrbTints are cycled through when generating the background orbs
	OrbTints = []color.NRGBA{
		{R: 148, G: 130, B: 255, A: 150},
		{R: 96, G: 165, B: 250, A: 130},
		{R: 244, G: 114, B: 182, A: 120},
	}
)

// Text size constants for consistent typography
const (
	// TitleTextSize is used for the product wordmark
	TitleTextSize = 48

	// SubtitleTextSize is used for the tagline below the wordmark
	SubtitleTextSize = 16

	// FooterTextSize is used for footer text
	FooterTextSize = 14

	// DigitTextSize is used for the countdown digit displays
	DigitTextSize = 40

	// DigitLabelTextSize is used for the small captions under the digits
	DigitLabelTextSize = 12
)

// Layout constants
const (
	// GradientAngle defines the angle of the background gradient in degrees
	GradientAngle = 45

	// CardMinWidth is the minimum width for card components
	CardMinWidth = 100

	// CardMinHeight is the minimum height for card components
	CardMinHeight = 100

	// DefaultWindowWidth is the initial width of the application window
	DefaultWindowWidth = 1200

	// DefaultWindowHeight is the initial height of the application window
	DefaultWindowHeight = 800
)
