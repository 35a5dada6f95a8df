// Package project persists engine input snapshots and application
// configuration as JSON files under the user's saponify directory. The
// snapshot shape is versioned: adding fields must never break an old
// file, and loading fills defaults for anything missing.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/latherlab/saponify/internal/model"
)

// SnapshotVersion is the current on-disk snapshot format version.
const SnapshotVersion = 1

// Snapshot wraps a recipe with versioning metadata for persistence.
type Snapshot struct {
	Version int          `json:"version"`
	SavedAt string       `json:"saved_at"`
	Recipe  model.Recipe `json:"recipe"`
}

// DefaultConfigDir returns the directory for all saponify data,
// ~/.saponify on every platform.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".saponify")
}

// DefaultRecipesDir returns the directory recipes are saved under.
func DefaultRecipesDir() string {
	return filepath.Join(DefaultConfigDir(), "recipes")
}

// SaveRecipe writes a versioned snapshot of the recipe to path,
// creating parent directories as needed.
func SaveRecipe(path string, r model.Recipe) error {
	snap := Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Recipe:  r,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recipe snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create recipe directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write recipe snapshot: %w", err)
	}
	return nil
}

// LoadRecipe reads a snapshot from path. Snapshots from newer format
// versions are rejected; older or unversioned snapshots load with
// defaults applied for missing fields, so the shape stays stable as
// fields are added.
func LoadRecipe(path string) (model.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("read recipe snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return model.Recipe{}, fmt.Errorf("parse recipe snapshot: %w", err)
	}
	if snap.Version > SnapshotVersion {
		return model.Recipe{}, fmt.Errorf("recipe snapshot version %d is newer than supported version %d", snap.Version, SnapshotVersion)
	}
	applyRecipeDefaults(&snap.Recipe)
	return snap.Recipe, nil
}

// LoadRecipeOrNew behaves like LoadRecipe but returns a fresh recipe
// when the file does not exist.
func LoadRecipeOrNew(path string) (model.Recipe, error) {
	r, err := LoadRecipe(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return model.NewRecipe(), nil
	}
	return r, err
}

// applyRecipeDefaults fills zero-values left by old snapshots so a
// loaded recipe is always computable.
func applyRecipeDefaults(r *model.Recipe) {
	if r.Oils == nil {
		r.Oils = []model.OilEntry{}
	}
	if r.Name == "" {
		r.Name = "Untitled"
	}
	if r.Lye.Type == "" {
		r.Lye = model.DefaultLyeConfig()
	}
	if r.Water.Method == "" {
		r.Water = model.DefaultWaterConfig()
	}
	if r.DisplayUnit == "" {
		r.DisplayUnit = model.UnitGram
	}
	for i := range r.Oils {
		if r.Oils[i].LastEdited == "" {
			r.Oils[i].LastEdited = model.FieldWeight
		}
	}
}
