package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// BackupData is the top-level structure for import/export of all
// application data: the app config plus every saved recipe snapshot.
type BackupData struct {
	Version   string     `json:"version"`
	CreatedAt string     `json:"created_at"`
	Config    AppConfig  `json:"config"`
	Recipes   []Snapshot `json:"recipes"`
}

// ExportAllData exports the config and the given recipe snapshots to a
// single JSON file at the specified path.
func ExportAllData(exportPath string, config AppConfig, recipes []Snapshot) error {
	backup := BackupData{
		Version:   "1.0.0",
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Recipes:   recipes,
	}
	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup data: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(exportPath), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(exportPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained
// data. The caller is responsible for applying the imported config and
// re-saving the recipes.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Config.RecentRecipes == nil {
		backup.Config.RecentRecipes = []string{}
	}
	for i := range backup.Recipes {
		applyRecipeDefaults(&backup.Recipes[i].Recipe)
	}
	return backup, nil
}
