package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/latherlab/saponify/internal/model"
)

func TestBackupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")

	cfg := DefaultAppConfig()
	cfg.DefaultSuperfatPct = 7
	snaps := []Snapshot{{
		Version: SnapshotVersion,
		SavedAt: time.Now().UTC().Format(time.RFC3339),
		Recipe:  sampleRecipe(),
	}}

	if err := ExportAllData(path, cfg, snaps); err != nil {
		t.Fatal(err)
	}
	got, err := ImportAllData(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", got.Version)
	}
	if got.Config.DefaultSuperfatPct != 7 {
		t.Errorf("DefaultSuperfatPct = %v, want 7", got.Config.DefaultSuperfatPct)
	}
	if len(got.Recipes) != 1 || got.Recipes[0].Recipe.Name != "Castile" {
		t.Errorf("recipes = %+v", got.Recipes)
	}
}

func TestImportAllDataMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"config": {}, "recipes": []}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportAllData(path); err == nil {
		t.Fatal("backup without a version field accepted")
	}
}

func TestImportAllDataAppliesRecipeDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.json")
	data := []byte(`{"version": "1.0.0", "config": {}, "recipes": [{"version": 1, "recipe": {}}]}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportAllData(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Config.RecentRecipes == nil {
		t.Error("RecentRecipes must be repaired to an empty slice")
	}
	r := got.Recipes[0].Recipe
	if r.Name != "Untitled" || r.Lye.Type != model.LyeNaOH || r.Oils == nil {
		t.Errorf("defaults not applied: %+v", r)
	}
}
