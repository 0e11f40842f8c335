package main

// Application initialization only. All layout, components and state
// management live in their own packages:
//
// Package structure:
// - models/     : Data structures (NavLink, LandingConfig, SubscribeResult)
// - config/     : Configuration, file logging, build version info
// - validation/ : Pure email validation for the subscribe form
// - motion/     : Animation math (lerp, pointer smoothing, countdown split)
// - sprites/    : Generated glow sprites for the orb field
// - subscribe/  : Subscription call implementations (mock + HTTP)
// - ui/         : App state, theme constants, layout and all components

import (
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"aurora/config"
	"aurora/sprites"
	"aurora/subscribe"
	"aurora/ui"
)

func main() {

	if err := config.InitLogger(); err != nil {
		log.Printf("file logging disabled: %v", err)
	}
	defer config.CloseLogger()

	auroraApp := app.NewWithID("io.auroralabs.launch")

	auroraMetadata := fyne.AppMetadata{
		ID:      "io.auroralabs.launch",
		Name:    "Aurora",
		Version: config.Version,
	}

	app.SetMetadata(auroraMetadata)

	myWindow := auroraApp.NewWindow("aurora")

	// -------------------------
	// Window icon, generated from the same glow the orbs use
	// -------------------------
	if iconBytes, err := sprites.EncodePNG(sprites.Glow(128, color.NRGBA{R: 148, G: 130, B: 255, A: 255})); err == nil {
		myWindow.SetIcon(fyne.NewStaticResource("aurora.png", iconBytes))
	}

	// -------------------------------------------------------------------------
	// MENUS
	// -------------------------------------------------------------------------
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Logs", func() {
			log.Println("[UI] Aurora Logs opened (GUI)")
			ui.ShowLogWindow(auroraApp)
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			log.Println("[UI] About dialog opened")
			ui.ShowAboutDialog(auroraApp)
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, helpMenu)
	myWindow.SetMainMenu(mainMenu)

	// -------------------------------------------------------------------------
	// KEYBOARD SHORTCUTS
	// -------------------------------------------------------------------------
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] User closed application (ctrl + q)")
		auroraApp.Quit()
	})
	myWindow.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyL,
		Modifier: fyne.KeyModifierControl,
	}, func(shortcut fyne.Shortcut) {
		log.Println("[UI] Aurora Logs opened (ctrl + l)")
		ui.ShowLogWindow(auroraApp)
	})

	myWindow.Resize(fyne.NewSize(ui.DefaultWindowWidth, ui.DefaultWindowHeight))

	// Pick the subscriber: a real endpoint if configured, the timer mock
	// otherwise. The form never knows the difference.
	cfg := config.LoadLandingConfig()
	subscribeFn := subscribe.Mock(1200 * time.Millisecond)
	if cfg.SubscribeEndpoint != "" {
		subscribeFn = subscribe.NewHTTPClient(cfg.SubscribeEndpoint).Func()
	}

	// Build the complete page and start its moving parts
	layout := ui.BuildMainLayout(myWindow, cfg, subscribeFn)
	myWindow.SetContent(layout.Content)

	myWindow.SetCloseIntercept(func() {
		log.Println("[UI] User closed application")
		layout.Stop()
		auroraApp.Quit()
	})

	myWindow.ShowAndRun()
}
