package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	maxLogSize  = 10 * 1024 * 1024 // 10MB
	maxLogFiles = 3                // Keep 3 backup files
	logFileName = "aurora.log"
)

var logFile *os.File

// InitLogger routes the standard logger to both stderr and the rotating
// log file under the config directory. Call once at application startup,
// before any component logs.
func InitLogger() error {
	configDir, err := verifyConfigDirectory()
	if err != nil {
		return err
	}

	logPath := filepath.Join(configDir, logFileName)

	// Rotate before opening if the previous run left a large file behind
	if info, err := os.Stat(logPath); err == nil && info.Size() >= maxLogSize {
		if err := rotateLogs(logPath); err != nil {
			return fmt.Errorf("failed to rotate logs: %w", err)
		}
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = file
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	log.Printf("[Config] Logger initialized, file: %s", logPath)
	return nil
}

// CloseLogger detaches the file sink and closes it.
func CloseLogger() {
	if logFile != nil {
		log.SetOutput(os.Stderr)
		logFile.Close()
		logFile = nil
	}
}

// LogFilePath returns the location of the active log file so the log
// window can follow it.
func LogFilePath() (string, error) {
	configDir, err := verifyConfigDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, logFileName), nil
}

// rotateLogs shifts aurora.log -> aurora.log.1 -> aurora.log.2 ...
// dropping the oldest backup.
func rotateLogs(logPath string) error {
	oldest := fmt.Sprintf("%s.%d", logPath, maxLogFiles)
	if _, err := os.Stat(oldest); err == nil {
		if err := os.Remove(oldest); err != nil {
			return err
		}
	}

	for i := maxLogFiles - 1; i >= 1; i-- {
		from := fmt.Sprintf("%s.%d", logPath, i)
		to := fmt.Sprintf("%s.%d", logPath, i+1)
		if _, err := os.Stat(from); err == nil {
			if err := os.Rename(from, to); err != nil {
				return err
			}
		}
	}

	return os.Rename(logPath, logPath+".1")
}
