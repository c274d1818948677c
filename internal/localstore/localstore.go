// Package localstore is the per-device journey store: one JSON document
// at a fixed path. Reads fail open — missing file, bad JSON, or a
// document without stages all load as "no saved progress". Writes are
// best effort; a device that can't persist should never crash the app.
package localstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/firsthome/firsthome/internal/journey"
)

const fileName = "journey.json"

// File stores the persisted journey as a single JSON file.
type File struct {
	path   string
	logger *slog.Logger
}

// New returns a store writing to dir/journey.json.
func New(dir string, logger *slog.Logger) *File {
	return &File{path: filepath.Join(dir, fileName), logger: logger}
}

// DefaultDir returns the per-user data directory for the tracker.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "firsthome"), nil
}

// Load reads the saved journey. Any failure — no file, unreadable file,
// malformed JSON, or a document lacking stages — returns nil.
func (f *File) Load() *journey.PersistedJourney {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil
	}
	var p journey.PersistedJourney
	if err := json.Unmarshal(raw, &p); err != nil {
		f.logger.Debug("local journey unreadable, starting fresh", "path", f.path, "error", err)
		return nil
	}
	if p.Stages == nil {
		return nil
	}
	return &p
}

// Save writes the journey. Failures are swallowed: there is no retry and
// no user-visible error for a failed local save.
func (f *File) Save(p journey.PersistedJourney) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		f.logger.Debug("local journey save failed", "path", f.path, "error", err)
		return
	}
	if err := os.WriteFile(f.path, raw, 0o644); err != nil {
		f.logger.Debug("local journey save failed", "path", f.path, "error", err)
	}
}

// Clear removes the saved journey, used when an account is deleted.
func (f *File) Clear() {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		f.logger.Debug("local journey clear failed", "path", f.path, "error", err)
	}
}
