// Package snapshotstore persists stats snapshots as JSON. It is the
// synchronizer's only view of an analysis run: the on-disk record, never
// the in-memory pipeline that produced it.
package snapshotstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"docaudit/internal/domain/entity"
)

// Load reads and parses a snapshot file. An absent or unparsable file is
// an error; the caller treats it as fatal for the whole run.
func Load(path string) (*entity.StatsSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var snapshot entity.StatsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &snapshot, nil
}

// Save writes a snapshot, creating parent directories as needed.
func Save(path string, snapshot *entity.StatsSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating snapshot directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
