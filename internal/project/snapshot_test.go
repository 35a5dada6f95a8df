package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/latherlab/saponify/internal/model"
)

func sampleRecipe() model.Recipe {
	r := model.NewRecipe()
	r.Name = "Castile"
	r.Target.ExplicitG = 500
	r.Oils = []model.OilEntry{{
		ID: "olive", Name: "Olive Oil", WeightG: 500, Percent: 100,
		SAPKoh: 190, LastEdited: model.FieldWeight,
	}}
	return r
}

func TestSaveLoadRecipeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes", "castile.json")
	if err := SaveRecipe(path, sampleRecipe()); err != nil {
		t.Fatal(err)
	}

	got, err := LoadRecipe(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Castile" {
		t.Errorf("Name = %q, want Castile", got.Name)
	}
	if len(got.Oils) != 1 || got.Oils[0].SAPKoh != 190 {
		t.Errorf("oils = %+v", got.Oils)
	}
	if got.Target.ExplicitG != 500 {
		t.Errorf("target = %v, want 500", got.Target.ExplicitG)
	}
	if got.Lye.Type != model.LyeNaOH || got.Lye.SuperfatPct != 5 {
		t.Errorf("lye = %+v", got.Lye)
	}
}

func TestLoadRecipeRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	data := []byte(`{"version": 99, "recipe": {"name": "From The Future"}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadRecipe(path); err == nil {
		t.Fatal("newer snapshot version accepted")
	}
}

func TestLoadRecipeFillsDefaults(t *testing.T) {
	// An old snapshot with most fields absent loads computable.
	path := filepath.Join(t.TempDir(), "old.json")
	data := []byte(`{"version": 1, "recipe": {"oils": [{"id": "a", "name": "Olive Oil", "weight_g": 100}]}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadRecipe(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Untitled" {
		t.Errorf("Name = %q, want Untitled", r.Name)
	}
	if r.Lye.Type != model.LyeNaOH {
		t.Errorf("Lye.Type = %q, want naoh", r.Lye.Type)
	}
	if r.Water.Method != model.WaterPercentOfOils {
		t.Errorf("Water.Method = %q, want percent-of-oils", r.Water.Method)
	}
	if r.DisplayUnit != model.UnitGram {
		t.Errorf("DisplayUnit = %q, want g", r.DisplayUnit)
	}
	if r.Oils[0].LastEdited != model.FieldWeight {
		t.Errorf("LastEdited = %q, want weight", r.Oils[0].LastEdited)
	}
}

func TestLoadRecipeOrNew(t *testing.T) {
	r, err := LoadRecipeOrNew(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Untitled" || r.ID == "" {
		t.Errorf("fresh recipe = %+v", r)
	}
}

func TestLoadRecipeMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecipe(path); err == nil {
		t.Fatal("malformed snapshot accepted")
	}
}
