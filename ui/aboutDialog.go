package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"golang.design/x/clipboard"

	"aurora/config"
)

const shareLink = "https://aurora.example/launch"

func ShowAboutDialog(auroraApp fyne.App) {
	title := widget.NewLabel("Aurora")
	title.TextStyle = fyne.TextStyle{Bold: true}

	version := widget.NewLabel(
		"Version: " + config.Version +
			"\nCommit: " + config.GitCommit +
			"\nBuilt: " + config.BuildTime,
	)
	version.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(
		"Launch countdown page for the Aurora ambient glow engine.",
	)
	description.Wrapping = fyne.TextWrapWord

	features := widget.NewLabel(
		"On this page:\n" +
			"• Drifting glow orbs with pointer parallax\n" +
			"• Live launch countdown\n" +
			"• Early-access signup\n" +
			"• Cross-platform support",
	)
	features.Wrapping = fyne.TextWrapWord

	copyStatus := widget.NewLabel("")
	copyStatus.Alignment = fyne.TextAlignCenter

	copyButton := widget.NewButton("Copy share link", func() {
		if err := clipboard.Init(); err != nil {
			log.Printf("[UI] Clipboard unavailable: %v", err)
			copyStatus.SetText("Clipboard unavailable on this system")
			return
		}
		clipboard.Write(clipboard.FmtText, []byte(shareLink))
		copyStatus.SetText("Link copied!")
		log.Println("[UI] Share link copied to clipboard")
	})

	var aboutWin fyne.Window
	closeBtn := widget.NewButton("Close", func() {
		aboutWin.Close()
	})

	mainContent := container.NewVBox(
		container.NewCenter(title),
		container.NewCenter(version),
		widget.NewSeparator(),
		description,
		widget.NewSeparator(),
		features,
		container.NewCenter(copyButton),
		copyStatus,
	)

	scroll := container.NewScroll(mainContent)

	bottom := container.NewVBox(
		widget.NewSeparator(),
		container.NewCenter(closeBtn),
	)

	content := container.NewBorder(nil, bottom, nil, nil, scroll)

	aboutWin = auroraApp.NewWindow("About Aurora")
	aboutWin.SetContent(content)
	aboutWin.Resize(fyne.NewSize(400, 440))
	aboutWin.SetFixedSize(true)
	aboutWin.Show()
}
