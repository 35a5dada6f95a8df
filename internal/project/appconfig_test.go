package project

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/latherlab/saponify/internal/model"
)

func TestLoadAppConfigMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLyeType != model.LyeNaOH {
		t.Errorf("DefaultLyeType = %q, want naoh", cfg.DefaultLyeType)
	}
	if cfg.DefaultSuperfatPct != 5 {
		t.Errorf("DefaultSuperfatPct = %v, want 5", cfg.DefaultSuperfatPct)
	}
	if cfg.RecentRecipes == nil {
		t.Error("RecentRecipes must never be nil")
	}
}

func TestSaveLoadAppConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.json")
	cfg := DefaultAppConfig()
	cfg.DefaultLyeType = model.LyeKOH
	cfg.DisplayUnit = model.UnitOunce
	cfg.PolicyPath = "/tmp/policy.yaml"
	cfg.AddRecentRecipe("a.json")

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := LoadAppConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.DefaultLyeType != model.LyeKOH || got.DisplayUnit != model.UnitOunce {
		t.Errorf("config = %+v", got)
	}
	if got.PolicyPath != "/tmp/policy.yaml" {
		t.Errorf("PolicyPath = %q", got.PolicyPath)
	}
	if len(got.RecentRecipes) != 1 || got.RecentRecipes[0] != "a.json" {
		t.Errorf("RecentRecipes = %v", got.RecentRecipes)
	}
}

func TestLoadAppConfigIgnoresUnknownFields(t *testing.T) {
	// Config files written by earlier builds may carry fields that have
	// since been retired (e.g. auto_save_interval); they must load fine.
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"default_lye_type":"koh","auto_save_interval":5}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLyeType != model.LyeKOH {
		t.Errorf("DefaultLyeType = %q, want koh", cfg.DefaultLyeType)
	}
}

func TestAddRecentRecipeDedupesAndTrims(t *testing.T) {
	cfg := DefaultAppConfig()
	for i := 0; i < 12; i++ {
		cfg.AddRecentRecipe(fmt.Sprintf("recipe-%d.json", i))
	}
	if len(cfg.RecentRecipes) != maxRecentRecipes {
		t.Fatalf("len = %d, want %d", len(cfg.RecentRecipes), maxRecentRecipes)
	}
	if cfg.RecentRecipes[0] != "recipe-11.json" {
		t.Errorf("head = %q, want recipe-11.json", cfg.RecentRecipes[0])
	}

	// Re-adding moves to the front without duplicating.
	cfg.AddRecentRecipe("recipe-5.json")
	if cfg.RecentRecipes[0] != "recipe-5.json" {
		t.Errorf("head = %q, want recipe-5.json", cfg.RecentRecipes[0])
	}
	seen := map[string]bool{}
	for _, p := range cfg.RecentRecipes {
		if seen[p] {
			t.Errorf("duplicate entry %q", p)
		}
		seen[p] = true
	}
}

func TestApplyToRecipe(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultLyeType = model.LyeKOH90
	cfg.DefaultSuperfatPct = 8
	cfg.DefaultWaterMethod = model.WaterLyeRatio
	cfg.DisplayUnit = model.UnitPound

	r := model.NewRecipe()
	cfg.ApplyToRecipe(&r)

	if r.Lye.Type != model.LyeKOH90 || r.Lye.SuperfatPct != 8 {
		t.Errorf("lye = %+v", r.Lye)
	}
	if r.Water.Method != model.WaterLyeRatio {
		t.Errorf("water method = %q", r.Water.Method)
	}
	if r.DisplayUnit != model.UnitPound {
		t.Errorf("display unit = %q", r.DisplayUnit)
	}
}
