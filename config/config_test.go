package config

import (
	"strings"
	"testing"
)

func TestDecodeLandingConfig(t *testing.T) {
	input := `{
		"countdown_target": "2027-03-01T12:00:00Z",
		"subscribe_endpoint": "https://example.com/subscribe",
		"orb_count": 4,
		"parallax_depths": [0.03, 0.07],
		"nav_links": [{"id": "home", "title": "Home"}]
	}`

	cfg, err := DecodeLandingConfig(strings.NewReader(input))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if cfg.CountdownTarget != "2027-03-01T12:00:00Z" {
		t.Errorf("countdown target: got %q", cfg.CountdownTarget)
	}
	if cfg.SubscribeEndpoint != "https://example.com/subscribe" {
		t.Errorf("subscribe endpoint: got %q", cfg.SubscribeEndpoint)
	}
	if cfg.OrbCount != 4 {
		t.Errorf("orb count: got %d, want 4", cfg.OrbCount)
	}
	if len(cfg.ParallaxDepths) != 2 || cfg.ParallaxDepths[0] != 0.03 {
		t.Errorf("parallax depths: got %v", cfg.ParallaxDepths)
	}
	if len(cfg.NavLinks) != 1 || cfg.NavLinks[0].ID != "home" {
		t.Errorf("nav links: got %v", cfg.NavLinks)
	}
}

func TestDecodeLandingConfigDefaults(t *testing.T) {
	// A partial file keeps defaults for everything it omits
	cfg, err := DecodeLandingConfig(strings.NewReader(`{"orb_count": 2}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	defaults := DefaultLandingConfig()
	if cfg.OrbCount != 2 {
		t.Errorf("orb count: got %d, want 2", cfg.OrbCount)
	}
	if cfg.CountdownTarget != defaults.CountdownTarget {
		t.Errorf("countdown target not defaulted: got %q", cfg.CountdownTarget)
	}
	if len(cfg.NavLinks) != len(defaults.NavLinks) {
		t.Errorf("nav links not defaulted: got %v", cfg.NavLinks)
	}
}

func TestDecodeLandingConfigSanitizes(t *testing.T) {
	cfg, err := DecodeLandingConfig(strings.NewReader(`{"orb_count": -3, "parallax_depths": []}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if cfg.OrbCount != 0 {
		t.Errorf("negative orb count not clamped: got %d", cfg.OrbCount)
	}
	if len(cfg.ParallaxDepths) == 0 {
		t.Errorf("empty depth list not defaulted")
	}
}

func TestDecodeLandingConfigInvalidJSON(t *testing.T) {
	if _, err := DecodeLandingConfig(strings.NewReader("{nope")); err == nil {
		t.Fatal("invalid JSON should error")
	}
}

func TestExpandPath(t *testing.T) {
	got, err := ExpandPath("/tmp/literal")
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if got != "/tmp/literal" {
		t.Errorf("absolute path changed: got %q", got)
	}

	home, err := ExpandPath("~/something")
	if err != nil {
		t.Fatalf("expand failed: %v", err)
	}
	if strings.HasPrefix(home, "~") {
		t.Errorf("tilde not expanded: got %q", home)
	}
	if !strings.HasSuffix(home, "/something") {
		t.Errorf("suffix lost: got %q", home)
	}
}
