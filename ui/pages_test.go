package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"aurora/models"
)

func TestPageViewSwapsOnNavigation(t *testing.T) {
	test.NewApp()

	state := NewAuroraAppState(test.NewWindow(widget.NewLabel("page")), models.LandingConfig{})
	home := widget.NewLabel("home page")
	v := NewPageView(state, home)

	if v.Container.Objects[0] != home {
		t.Fatal("initial page is not home")
	}

	state.SetPage("features")
	if v.Container.Objects[0] == home {
		t.Fatal("page did not swap on navigation")
	}

	state.SetPage("home")
	if v.Container.Objects[0] != home {
		t.Fatal("did not return to home")
	}
}

func TestPageViewUnknownPageFallsBackToHome(t *testing.T) {
	test.NewApp()

	state := NewAuroraAppState(test.NewWindow(widget.NewLabel("page")), models.LandingConfig{})
	home := widget.NewLabel("home page")
	v := NewPageView(state, home)

	state.SetPage("no-such-page")
	if v.Container.Objects[0] != home {
		t.Fatal("unknown page did not fall back to home")
	}
}

func TestStatePageChangeNotifiesInOrder(t *testing.T) {
	state := NewAuroraAppState(nil, models.LandingConfig{})

	var seen []string
	state.RegisterPageChangedCallback(func(id string) { seen = append(seen, "a:"+id) })
	state.RegisterPageChangedCallback(func(id string) { seen = append(seen, "b:"+id) })

	state.SetPage("features")
	state.SetPage("features") // Same page, no second notification

	if len(seen) != 2 || seen[0] != "a:features" || seen[1] != "b:features" {
		t.Fatalf("callback sequence: got %v", seen)
	}
}
