package model

import "github.com/latherlab/saponify/internal/policy"

// AdditiveResult holds the resolved additive weights. ExtraLyeG is the
// lye consumed stoichiometrically by citric acid; it is additive to the
// lye from CalcLye, not a substitute, and is surfaced separately so
// display and export can explain the adjustment.
type AdditiveResult struct {
	FragranceG float64 `json:"fragrance_g"`
	LactateG   float64 `json:"lactate_g"`
	SugarG     float64 `json:"sugar_g"`
	SaltG      float64 `json:"salt_g"`
	CitricG    float64 `json:"citric_g"`
	TotalG     float64 `json:"total_g"`
	ExtraLyeG  float64 `json:"extra_lye_g"`
}

// reconcileAdditive syncs one additive's dual-entry pair against the
// total oil weight. Additives do not compete for a shared budget, so
// there is no capacity cap.
func reconcileAdditive(spec *AdditiveSpec, totalOilG float64) {
	if spec.LastEdited == FieldWeight {
		spec.Percent = safeShare(spec.WeightG, totalOilG)
		return
	}
	spec.WeightG = totalOilG * spec.Percent / 100
}

// CalcAdditives reconciles every additive's percent/weight pair and
// derives the citric-acid lye compensation. The config is mutated in
// place (dual-entry sync) and the call is idempotent.
func CalcAdditives(totalOilG float64, cfg *AdditiveConfig, lyeType LyeType, pol *policy.Tables) AdditiveResult {
	specs := []*AdditiveSpec{&cfg.Fragrance, &cfg.Lactate, &cfg.Sugar, &cfg.Salt, &cfg.Citric}
	for _, s := range specs {
		reconcileAdditive(s, totalOilG)
	}

	res := AdditiveResult{
		FragranceG: cfg.Fragrance.WeightG,
		LactateG:   cfg.Lactate.WeightG,
		SugarG:     cfg.Sugar.WeightG,
		SaltG:      cfg.Salt.WeightG,
		CitricG:    cfg.Citric.WeightG,
	}
	res.TotalG = res.FragranceG + res.LactateG + res.SugarG + res.SaltG + res.CitricG
	res.ExtraLyeG = res.CitricG * pol.CitricFactor(lyeType.Key())
	return res
}
