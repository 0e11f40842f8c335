package ui

import (
	"fmt"
	"log"
	"os/exec"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"aurora/config"
)

const maxLoadedLines = 2000 // Oldest lines are dropped beyond this

// ShowLogWindow opens a window that follows the application log live.
// New lines appear as components write them; search filters the loaded
// lines only.
func ShowLogWindow(auroraApp fyne.App) {
	logPath, err := config.LogFilePath()
	if err != nil {
		log.Printf("[UI] Cannot locate log file: %v", err)
		return
	}

	logWindow := auroraApp.NewWindow("Aurora Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	logLabel := widget.NewLabel("Waiting for log lines...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var loadedLines []string

	updateDisplay := func() {
		logLabel.SetText(strings.Join(loadedLines, "\n"))
	}

	searchButton := widget.NewButton("Search", func() {
		query := strings.ToLower(searchEntry.Text)
		if query == "" {
			return
		}

		var filtered []string
		for _, line := range loadedLines {
			if strings.Contains(strings.ToLower(line), query) {
				filtered = append(filtered, line)
			}
		}

		if len(filtered) == 0 {
			logLabel.SetText(fmt.Sprintf("No results found for: %s", searchEntry.Text))
			return
		}
		logLabel.SetText(strings.Join(filtered, "\n") +
			fmt.Sprintf("\n\n[Found %d matches in loaded lines]", len(filtered)))
	})

	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		updateDisplay()
	})

	configDir, _ := config.ConfigDir()
	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(configDir, logWindow)
	})

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, openDirButton),
		searchEntry)

	scroll := container.NewScroll(logLabel)

	content := container.NewBorder(
		searchBox,
		nil, nil, nil,
		scroll,
	)
	logWindow.SetContent(content)
	logWindow.Show()

	// Follow the file; Poll avoids inotify exhaustion on some systems
	t, err := tail.TailFile(logPath, tail.Config{
		Follow: true,
		ReOpen: true,
		Poll:   true,
	})
	if err != nil {
		logLabel.SetText(fmt.Sprintf("Failed to follow log file: %v", err))
		return
	}

	go func() {
		for line := range t.Lines {
			if line.Err != nil {
				continue
			}
			text := line.Text
			fyne.Do(func() {
				loadedLines = append(loadedLines, text)
				if len(loadedLines) > maxLoadedLines {
					loadedLines = loadedLines[len(loadedLines)-maxLoadedLines:]
				}
				updateDisplay()
				scroll.ScrollToBottom()
			})
		}
	}()

	logWindow.SetOnClosed(func() {
		if err := t.Stop(); err != nil {
			log.Printf("[UI] Stopping log tail: %v", err)
		}
	})
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	if err := cmd.Start(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %v", err), parent)
	}
}
