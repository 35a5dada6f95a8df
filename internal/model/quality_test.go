package model

import (
	"strings"
	"testing"

	"github.com/latherlab/saponify/internal/policy"
)

func profiledOil(id string, w float64, acids map[string]float64) OilEntry {
	return OilEntry{ID: id, Name: id, WeightG: w, FattyAcids: acids, LastEdited: FieldWeight}
}

func TestScoreNoProfiles(t *testing.T) {
	oils := []OilEntry{{ID: "a", WeightG: 500, SAPKoh: 190}}
	rep := Score(oils)

	if rep.HasData {
		t.Error("HasData true with zero profile coverage")
	}
	if rep.Indices != nil || rep.Acids != nil {
		t.Error("indices must be absent, never zero, without data")
	}
}

func TestScoreIndexFormulas(t *testing.T) {
	oils := []OilEntry{profiledOil("a", 100, map[string]float64{
		AcidLauric:     10,
		AcidMyristic:   5,
		AcidPalmitic:   20,
		AcidStearic:    10,
		AcidOleic:      40,
		AcidLinoleic:   5,
		AcidLinolenic:  2,
		AcidRicinoleic: 5,
	})}
	rep := Score(oils)

	if !rep.HasData {
		t.Fatal("HasData false with a full profile")
	}
	want := map[QualityIndex]float64{
		Hardness:     45, // lauric + myristic + palmitic + stearic
		Cleansing:    15, // lauric + myristic
		Conditioning: 52, // oleic + linoleic + linolenic + ricinoleic
		Bubbly:       20, // lauric + myristic + ricinoleic
		Creamy:       35, // palmitic + stearic + ricinoleic
	}
	for idx, w := range want {
		if !approx(rep.Indices[idx], w) {
			t.Errorf("%s = %v, want %v", idx, rep.Indices[idx], w)
		}
	}
}

func TestScoreCoveredWeightBase(t *testing.T) {
	// Half the blend has a profile. Acid percentages use the covered
	// weight as base, so the profiled oil's 50% lauric stays 50%, not 25%.
	oils := []OilEntry{
		profiledOil("a", 500, map[string]float64{AcidLauric: 50, AcidOleic: 50}),
		{ID: "b", WeightG: 500, LastEdited: FieldWeight},
	}
	rep := Score(oils)

	if !approx(rep.CoveragePct, 50) {
		t.Errorf("CoveragePct = %v, want 50", rep.CoveragePct)
	}
	if !approx(rep.Acids[AcidLauric], 50) {
		t.Errorf("lauric = %v, want 50", rep.Acids[AcidLauric])
	}
	if !approx(rep.Indices[Cleansing], 50) {
		t.Errorf("cleansing = %v, want 50", rep.Indices[Cleansing])
	}
}

func TestScoreBlendWeighting(t *testing.T) {
	oils := []OilEntry{
		profiledOil("a", 750, map[string]float64{AcidOleic: 80}),
		profiledOil("b", 250, map[string]float64{AcidOleic: 40}),
	}
	rep := Score(oils)

	// 0.75*80 + 0.25*40 = 70
	if !approx(rep.Acids[AcidOleic], 70) {
		t.Errorf("oleic = %v, want 70", rep.Acids[AcidOleic])
	}
}

func TestScoreIodine(t *testing.T) {
	oils := []OilEntry{
		{ID: "a", WeightG: 600, IodineValue: 80, LastEdited: FieldWeight},
		{ID: "b", WeightG: 200, IodineValue: 10, LastEdited: FieldWeight},
		{ID: "c", WeightG: 200, LastEdited: FieldWeight}, // unknown iodine
	}
	rep := Score(oils)

	if !rep.HasIodine {
		t.Fatal("HasIodine false")
	}
	// Weighted over known oils only: (600*80 + 200*10) / 800 = 62.5
	if !approx(rep.IodineValue, 62.5) {
		t.Errorf("IodineValue = %v, want 62.5", rep.IodineValue)
	}
	if !approx(rep.IodineCoveragePct, 80) {
		t.Errorf("IodineCoveragePct = %v, want 80", rep.IodineCoveragePct)
	}
}

func TestScoreINSDerived(t *testing.T) {
	oils := []OilEntry{{ID: "a", WeightG: 500, SAPKoh: 190, IodineValue: 80, LastEdited: FieldWeight}}
	rep := Score(oils)

	if !rep.HasINS {
		t.Fatal("HasINS false with SAP and iodine known")
	}
	if !approx(rep.INS, 110) {
		t.Errorf("INS = %v, want 110 (190 - 80)", rep.INS)
	}
}

func TestScoreINSSuppliedFigureWins(t *testing.T) {
	oils := []OilEntry{{ID: "a", WeightG: 500, SAPKoh: 190, IodineValue: 80, INSValue: 105, LastEdited: FieldWeight}}
	rep := Score(oils)

	if !approx(rep.INS, 105) {
		t.Errorf("INS = %v, want the supplied 105", rep.INS)
	}
}

func TestScoreINSAbsentWithoutIodine(t *testing.T) {
	oils := []OilEntry{{ID: "a", WeightG: 500, SAPKoh: 190, LastEdited: FieldWeight}}
	rep := Score(oils)

	if rep.HasINS {
		t.Error("INS reported without iodine data")
	}
}

func TestOilIndexScores(t *testing.T) {
	o := profiledOil("a", 100, map[string]float64{AcidLauric: 48, AcidMyristic: 19, AcidOleic: 8})
	scores := OilIndexScores(o)

	if !approx(scores[Cleansing], 0.67) {
		t.Errorf("cleansing score = %v, want 0.67", scores[Cleansing])
	}
	if !approx(scores[Conditioning], 0.08) {
		t.Errorf("conditioning score = %v, want 0.08", scores[Conditioning])
	}
}

func TestQualityWarnings(t *testing.T) {
	pol := policy.Default()

	t.Run("low coverage", func(t *testing.T) {
		oils := []OilEntry{
			profiledOil("a", 300, map[string]float64{AcidPalmitic: 45}),
			{ID: "b", WeightG: 700, LastEdited: FieldWeight},
		}
		warnings := QualityWarnings(Score(oils), oils, pol)
		if !containsSubstring(warnings, "covers only") {
			t.Errorf("missing low-coverage warning in %v", warnings)
		}
	})

	t.Run("high iodine", func(t *testing.T) {
		oils := []OilEntry{
			profiledOil("a", 500, map[string]float64{AcidOleic: 30, AcidLinoleic: 60}),
			profiledOil("b", 500, map[string]float64{AcidPalmitic: 45, AcidStearic: 5}),
		}
		oils[0].IodineValue = 133
		oils[1].IodineValue = 53
		warnings := QualityWarnings(Score(oils), oils, pol)
		if !containsSubstring(warnings, "iodine") {
			t.Errorf("missing iodine warning in %v", warnings)
		}
	})

	t.Run("single oil", func(t *testing.T) {
		oils := []OilEntry{profiledOil("a", 500, map[string]float64{AcidOleic: 70, AcidPalmitic: 14})}
		warnings := QualityWarnings(Score(oils), oils, pol)
		if !containsSubstring(warnings, "single-oil") {
			t.Errorf("missing single-oil warning in %v", warnings)
		}
	})

	t.Run("dominant oil", func(t *testing.T) {
		oils := []OilEntry{
			profiledOil("a", 950, map[string]float64{AcidOleic: 70, AcidPalmitic: 14}),
			profiledOil("b", 50, map[string]float64{AcidLauric: 48, AcidPalmitic: 9}),
		}
		warnings := QualityWarnings(Score(oils), oils, pol)
		if !containsSubstring(warnings, "consider blending") {
			t.Errorf("missing dominant-oil warning in %v", warnings)
		}
	})

	t.Run("balanced blend is quiet", func(t *testing.T) {
		oils := []OilEntry{
			profiledOil("a", 600, map[string]float64{AcidOleic: 40, AcidPalmitic: 25, AcidStearic: 15}),
			profiledOil("b", 400, map[string]float64{AcidLauric: 30, AcidMyristic: 10, AcidPalmitic: 10, AcidOleic: 20}),
		}
		oils[0].IodineValue = 60
		oils[1].IodineValue = 15
		warnings := QualityWarnings(Score(oils), oils, pol)
		if len(warnings) != 0 {
			t.Errorf("unexpected warnings: %v", warnings)
		}
	})
}

func TestAcidNamesSorted(t *testing.T) {
	oils := []OilEntry{profiledOil("a", 100, map[string]float64{
		AcidStearic: 5, AcidLauric: 48, AcidOleic: 8,
	})}
	names := Score(oils).AcidNames()
	want := []string{AcidLauric, AcidOleic, AcidStearic}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func containsSubstring(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
