package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// SessionLog records statistics for one viewing session.
type SessionLog struct {
	Timestamp   time.Time `json:"timestamp"`
	Name        string    `json:"name,omitempty"`
	Seconds     float64   `json:"seconds"`
	Frames      int       `json:"frames"`
	MeanFrameMS float64   `json:"mean_frame_ms"`
	Walked      float64   `json:"distance_walked"`
	Turns       int       `json:"turns"`
	Bumps       int       `json:"bumps"`
	Reloads     int       `json:"reloads"`
}

// saveSessionLog appends the session as a single JSON line to sessions.jsonl.
// Errors are logged but never crash the viewer.
func saveSessionLog(sl SessionLog, logger *slog.Logger) {
	dir, err := sessionLogDir()
	if err != nil {
		logger.Warn("session log: cannot determine data dir", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("session log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "sessions.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("session log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(sl)
	if err != nil {
		logger.Warn("session log: cannot marshal JSON", "error", err)
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}

// sessionLogDir returns the directory where session logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/termcaster,
// defaulting to ~/.local/share/termcaster.
func sessionLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "termcaster"), nil
}
