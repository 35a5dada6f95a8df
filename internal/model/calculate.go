package model

import (
	"errors"
	"fmt"

	"github.com/latherlab/saponify/internal/policy"
)

// OilWeight is one resolved ledger row in a calculation result.
type OilWeight struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	WeightG float64 `json:"weight_g"`
	Percent float64 `json:"percent"`
}

// Result is the full output of one engine invocation. It is produced
// fresh every time; caching a "last known good" result is the caller's
// business. CannotComputeLye flags a data-insufficiency condition: the
// lye, water and yield figures are zero and the caller must block the
// dependent action rather than display them.
type Result struct {
	TotalOilG        float64        `json:"total_oil_g"`
	Oils             []OilWeight    `json:"oils"`
	Lye              LyeResult      `json:"lye"`
	LyeWithCitricG   float64        `json:"lye_with_citric_g"`
	WaterG           float64        `json:"water_g"`
	BatchYieldG      float64        `json:"batch_yield_g"`
	Quality          QualityReport  `json:"quality"`
	Additives        AdditiveResult `json:"additives"`
	Warnings         []string       `json:"warnings,omitempty"`
	CannotComputeLye bool           `json:"cannot_compute_lye"`
}

// Calculate runs the whole engine over a recipe: lye and water demand,
// additive weights (with citric lye compensation), fatty-acid quality
// scores and batch yield. It is side-effect-free apart from the
// additive dual-entry sync, idempotent, and safe to re-invoke on every
// edit. Fatal sub-computation conditions surface as result flags, not
// errors.
func Calculate(r *Recipe, pol *policy.Tables) Result {
	res := Result{TotalOilG: r.TotalOilWeight()}

	res.Oils = make([]OilWeight, len(r.Oils))
	for i, o := range r.Oils {
		res.Oils[i] = OilWeight{ID: o.ID, Name: o.Name, WeightG: o.WeightG, Percent: o.Percent}
	}

	res.Quality = Score(r.Oils)
	res.Warnings = append(res.Warnings, QualityWarnings(res.Quality, r.Oils, pol)...)
	if !res.Quality.HasData && res.TotalOilG > 0 {
		res.Warnings = append(res.Warnings, "no fatty-acid data for any oil: quality scores unavailable")
	}

	res.Additives = CalcAdditives(res.TotalOilG, &r.Additives, r.Lye.Type, pol)

	lye, err := CalcLye(r.Oils, r.Lye)
	if err != nil {
		if errors.Is(err, ErrNoSAPData) && res.TotalOilG > 0 {
			res.CannotComputeLye = true
			res.Warnings = append(res.Warnings, "cannot compute lye: no oil has a known SAP value")
		}
		return res
	}
	res.Lye = lye
	if lye.SAPFallback {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("some oils have no SAP value; the blend average %.0f mg KOH/g was substituted", lye.SAPAvgKoh))
	}

	res.LyeWithCitricG = lye.AdjustedG + res.Additives.ExtraLyeG
	if res.Additives.ExtraLyeG > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("citric acid consumes an extra %.2f g of lye (* included in the adjusted total)", res.Additives.ExtraLyeG))
	}

	res.WaterG = CalcWater(lye.AdjustedG, res.TotalOilG, r.Water)
	res.BatchYieldG = BatchYield(res.TotalOilG, res.LyeWithCitricG, res.WaterG, res.Additives.TotalG)
	return res
}
