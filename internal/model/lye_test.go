package model

import (
	"errors"
	"math"
	"testing"
)

func TestCalcLyeSingleOil(t *testing.T) {
	// 500 g of an oil with SAP 190 mg KOH/g at 5% superfat, full purity:
	// pure 95 g, after superfat 90.25 g, adjusted unchanged.
	oils := []OilEntry{{ID: "olive", WeightG: 500, SAPKoh: 190}}
	res, err := CalcLye(oils, DefaultLyeConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !approx(res.PureG, 95) {
		t.Errorf("PureG = %v, want 95", res.PureG)
	}
	if !approx(res.AfterSuperfatG, 90.25) {
		t.Errorf("AfterSuperfatG = %v, want 90.25", res.AfterSuperfatG)
	}
	if !approx(res.AdjustedG, 90.25) {
		t.Errorf("AdjustedG = %v, want 90.25", res.AdjustedG)
	}
	if res.SAPFallback {
		t.Error("fallback flagged with full SAP coverage")
	}
}

func TestCalcLyePurityAdjustment(t *testing.T) {
	oils := []OilEntry{{ID: "a", WeightG: 100, SAPKoh: 200}}
	cfg := LyeConfig{Type: LyeNaOH, PurityPct: 95, SuperfatPct: 0}
	res, err := CalcLye(oils, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(res.PureG, 20) {
		t.Errorf("PureG = %v, want 20", res.PureG)
	}
	if !approx(res.AdjustedG, 20/0.95) {
		t.Errorf("AdjustedG = %v, want %v", res.AdjustedG, 20/0.95)
	}
}

func TestCalcLyeKOH90DefaultsPurity(t *testing.T) {
	oils := []OilEntry{{ID: "a", WeightG: 100, SAPKoh: 190}}

	// With no purity entered, koh90 implies 90%.
	res, err := CalcLye(oils, LyeConfig{Type: LyeKOH90, SuperfatPct: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !approx(res.AdjustedG, 19/0.9) {
		t.Errorf("AdjustedG = %v, want %v", res.AdjustedG, 19/0.9)
	}

	// An explicit purity overrides the type default.
	res, err = CalcLye(oils, LyeConfig{Type: LyeKOH90, PurityPct: 100, SuperfatPct: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !approx(res.AdjustedG, 19) {
		t.Errorf("AdjustedG with explicit purity = %v, want 19", res.AdjustedG)
	}
}

func TestCalcLyeSAPFallback(t *testing.T) {
	// One oil with SAP 190, one without: the unknown oil borrows the
	// weighted average (190) and the result is flagged.
	oils := []OilEntry{
		{ID: "a", WeightG: 50, SAPKoh: 190},
		{ID: "b", WeightG: 50},
	}
	res, err := CalcLye(oils, LyeConfig{Type: LyeNaOH, PurityPct: 100, SuperfatPct: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !res.SAPFallback {
		t.Error("fallback not flagged")
	}
	if !approx(res.SAPAvgKoh, 190) {
		t.Errorf("SAPAvgKoh = %v, want 190", res.SAPAvgKoh)
	}
	if !approx(res.PureG, 19) {
		t.Errorf("PureG = %v, want 19", res.PureG)
	}
}

func TestCalcLyeWeightedAverage(t *testing.T) {
	oils := []OilEntry{
		{ID: "a", WeightG: 300, SAPKoh: 190},
		{ID: "b", WeightG: 100, SAPKoh: 250},
	}
	res, err := CalcLye(oils, LyeConfig{Type: LyeNaOH, PurityPct: 100, SuperfatPct: 0})
	if err != nil {
		t.Fatal(err)
	}
	want := (300*190 + 100*250) / 400.0
	if !approx(res.SAPAvgKoh, want) {
		t.Errorf("SAPAvgKoh = %v, want %v", res.SAPAvgKoh, want)
	}
}

func TestCalcLyeNoSAPData(t *testing.T) {
	oils := []OilEntry{{ID: "a", WeightG: 100}, {ID: "b", WeightG: 50}}
	_, err := CalcLye(oils, DefaultLyeConfig())
	if !errors.Is(err, ErrNoSAPData) {
		t.Errorf("err = %v, want ErrNoSAPData", err)
	}
}

func TestCalcWaterMethods(t *testing.T) {
	tests := []struct {
		name string
		cfg  WaterConfig
		want float64
	}{
		{"percent of oils", WaterConfig{Method: WaterPercentOfOils, PercentOfOils: 38}, 380},
		{"lye concentration", WaterConfig{Method: WaterConcentration, ConcentrationPct: 25}, 300},
		{"water lye ratio", WaterConfig{Method: WaterLyeRatio, Ratio: 2}, 200},
		{"zero concentration", WaterConfig{Method: WaterConcentration}, 0},
		{"unknown method falls back to percent", WaterConfig{Method: "bogus", PercentOfOils: 10}, 100},
	}
	for _, tt := range tests {
		if got := CalcWater(100, 1000, tt.cfg); !approx(got, tt.want) {
			t.Errorf("%s: CalcWater = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCalcWaterRatioConcentrationCrossover(t *testing.T) {
	// A water:lye ratio of r and a lye concentration of 100/(1+r) percent
	// describe the same solution, so both methods agree.
	const lye = 87.5
	for _, ratio := range []float64{1, 1.5, 2, 3} {
		byRatio := CalcWater(lye, 1000, WaterConfig{Method: WaterLyeRatio, Ratio: ratio})
		conc := 100 / (1 + ratio)
		byConc := CalcWater(lye, 1000, WaterConfig{Method: WaterConcentration, ConcentrationPct: conc})
		if math.Abs(byRatio-byConc) > 1e-6 {
			t.Errorf("ratio %v: %v by ratio vs %v by concentration", ratio, byRatio, byConc)
		}
	}
}

func TestBatchYield(t *testing.T) {
	if got := BatchYield(500, 90.25, 190, 15); !approx(got, 795.25) {
		t.Errorf("BatchYield = %v, want 795.25", got)
	}
}

func TestEffectivePurityPct(t *testing.T) {
	tests := []struct {
		cfg  LyeConfig
		want float64
	}{
		{LyeConfig{Type: LyeNaOH, PurityPct: 97}, 97},
		{LyeConfig{Type: LyeNaOH}, 100},
		{LyeConfig{Type: LyeKOH}, 100},
		{LyeConfig{Type: LyeKOH90}, 90},
		{LyeConfig{Type: LyeKOH90, PurityPct: 85}, 85},
	}
	for _, tt := range tests {
		if got := tt.cfg.EffectivePurityPct(); got != tt.want {
			t.Errorf("EffectivePurityPct(%+v) = %v, want %v", tt.cfg, got, tt.want)
		}
	}
}
