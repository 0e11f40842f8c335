package models

// NavLink represents one destination in the navigation panel.
// The ID is used internally to track the current page, while Title is
// what the user sees on the panel link.
type NavLink struct {
	ID    string `json:"id"`    // Internal page identifier (e.g., "home")
	Title string `json:"title"` // User-facing link text (e.g., "Home")
}

// LandingConfig represents the root structure of the landing.json
// configuration file. It carries everything the launch page needs that
// is data rather than code: the countdown target, the navigation links,
// how many decorative orbs to spawn and which depth layers they drift on,
// and where (if anywhere) the subscribe form should POST.
type LandingConfig struct {
	// CountdownTarget is the launch moment as an RFC 3339 timestamp string.
	// An unparseable value disables the countdown rather than erroring.
	CountdownTarget string `json:"countdown_target"`

	// SubscribeEndpoint is the URL the subscribe form posts to.
	// Empty means the built-in mock subscriber is used instead.
	SubscribeEndpoint string `json:"subscribe_endpoint"`

	// OrbCount is how many glow orbs are scattered across the background
	OrbCount int `json:"orb_count"`

	// ParallaxDepths lists the depth coefficient of each orb layer.
	// Values are expected in the 0.02-0.10 range; out-of-range or
	// missing values fall back to the default depth.
	ParallaxDepths []float64 `json:"parallax_depths"`

	// NavLinks are the pages reachable from the navigation panel
	NavLinks []NavLink `json:"nav_links"`
}

// SubscribeResult is the outcome of a subscription attempt as reported
// by the remote endpoint (or the mock standing in for it).
type SubscribeResult struct {
	OK      bool   `json:"ok"`      // Whether the subscription was accepted
	Message string `json:"message"` // Human-readable message to surface
}
