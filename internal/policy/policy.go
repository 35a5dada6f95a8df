// Package policy holds the engine's advisory thresholds and heuristic
// tuning as data rather than code: quality bands, warning thresholds,
// the citric-acid lye factors and the nudge parameters. Defaults are
// built in; a YAML file can override any subset.
package policy

// Band is an inclusive ideal range for one quality index.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Tables is the complete policy set consumed by the engine.
type Tables struct {
	// QualityBands maps index name to its ideal range, used for
	// display shading and the hardness advisory.
	QualityBands map[string]Band `yaml:"quality_bands"`

	// IodineMax is the iodine value above which the softness and
	// rancidity advisory fires.
	IodineMax float64 `yaml:"iodine_max"`

	// DominantOilPct is the single-oil share above which a blending
	// advisory fires.
	DominantOilPct float64 `yaml:"dominant_oil_pct"`

	// LowCoveragePct marks fatty-acid coverage below which quality
	// scores are called approximate.
	LowCoveragePct float64 `yaml:"low_coverage_pct"`

	// CitricLyeFactors maps lye chemistry ("naoh", "koh") to grams of
	// extra lye consumed per gram of citric acid.
	CitricLyeFactors map[string]float64 `yaml:"citric_lye_factors"`

	// Nudge heuristic tuning: overall strength and the per-oil factor
	// clamp band.
	NudgeStrength  float64 `yaml:"nudge_strength"`
	NudgeFactorMin float64 `yaml:"nudge_factor_min"`
	NudgeFactorMax float64 `yaml:"nudge_factor_max"`

	// Presets maps preset name to per-index targets for the nudge.
	Presets map[string]map[string]float64 `yaml:"presets"`

	// Focus targets used when a single index is pushed "low" or "high".
	FocusLowTarget  float64 `yaml:"focus_low_target"`
	FocusHighTarget float64 `yaml:"focus_high_target"`
}

// Default returns the built-in policy tables.
func Default() *Tables {
	return &Tables{
		QualityBands: map[string]Band{
			"hardness":     {Min: 29, Max: 54},
			"cleansing":    {Min: 12, Max: 22},
			"conditioning": {Min: 44, Max: 69},
			"bubbly":       {Min: 14, Max: 46},
			"creamy":       {Min: 16, Max: 48},
		},
		IodineMax:      70,
		DominantOilPct: 90,
		LowCoveragePct: 80,
		CitricLyeFactors: map[string]float64{
			"naoh": 0.624,
			"koh":  0.71,
		},
		NudgeStrength:  0.8,
		NudgeFactorMin: 0.2,
		NudgeFactorMax: 1.8,
		Presets: map[string]map[string]float64{
			"balanced": {"hardness": 41, "cleansing": 17, "conditioning": 56, "bubbly": 30, "creamy": 32},
			"bubbly":   {"bubbly": 46, "cleansing": 22},
			"gentle":   {"conditioning": 69, "cleansing": 12},
			"hard":     {"hardness": 54, "creamy": 48},
		},
		FocusLowTarget:  25,
		FocusHighTarget: 75,
	}
}

// CitricFactor returns the lye factor for a chemistry key, falling back
// to NaOH for anything unrecognized.
func (t *Tables) CitricFactor(lyeKey string) float64 {
	if f, ok := t.CitricLyeFactors[lyeKey]; ok {
		return f
	}
	return t.CitricLyeFactors["naoh"]
}
