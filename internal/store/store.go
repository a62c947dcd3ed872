// Package store persists the task collection snapshot to a JSON
// savefile with atomic writes and file locking.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/valdemar/taskman/internal/manager"
)

const (
	dataDir  = ".taskman"
	dataFile = "tasks.json"
)

// DefaultPath returns the default savefile location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, dataDir, dataFile), nil
}

// Load reads a snapshot from path. A missing or empty savefile is not
// an error: it reports found=false so the caller can start fresh.
func Load(path string) (manager.Snapshot, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return manager.Snapshot{}, false, nil
		}
		return manager.Snapshot{}, false, fmt.Errorf("read savefile: %w", err)
	}
	if len(data) == 0 {
		return manager.Snapshot{}, false, nil
	}

	var snap manager.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return manager.Snapshot{}, false, fmt.Errorf("parse savefile: %w", err)
	}
	return snap, true, nil
}

// Save writes the snapshot to path. The parent directory is created as
// needed, a lock file guards against a second taskman process writing
// concurrently, and the write itself is temp file + rename so a crash
// never leaves a half-written savefile behind.
func Save(path string, snap manager.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock savefile: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	tmpPath := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temp savefile: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp savefile: %w", err)
	}
	return nil
}
