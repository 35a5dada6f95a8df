package model

import "errors"

// ErrNoSAPData is returned when no oil in the ledger carries a SAP
// value. Lye demand cannot be derived, so the computation refuses
// rather than silently using zero.
var ErrNoSAPData = errors.New("no oil has a known SAP value")

// LyeResult holds the derived lye weights. PureG is the stoichiometric
// demand, AfterSuperfatG discounts the superfat, AdjustedG corrects for
// lye purity. SAPAvgKoh is the weighted average SAP (mg KOH/g) over
// oils that have one; SAPFallback is set when that average was
// substituted for oils with unknown SAP.
type LyeResult struct {
	PureG          float64 `json:"pure_g"`
	AfterSuperfatG float64 `json:"after_superfat_g"`
	AdjustedG      float64 `json:"adjusted_g"`
	SAPAvgKoh      float64 `json:"sap_avg_koh"`
	SAPFallback    bool    `json:"sap_fallback"`
}

// CalcLye derives the lye requirement from the ledger's SAP values.
// Per oil, pure lye is weight x SAP/1000 (SAP is mg base per gram of
// fat). Oils with unknown SAP borrow the weighted average of the known
// ones; if no oil has a known SAP the calculation refuses with
// ErrNoSAPData.
func CalcLye(oils []OilEntry, cfg LyeConfig) (LyeResult, error) {
	var knownWeight, knownLye float64
	for _, o := range oils {
		if o.SAPKoh > 0 && o.WeightG > 0 {
			knownWeight += o.WeightG
			knownLye += o.WeightG * o.SAPKoh
		}
	}
	if knownWeight <= 0 {
		return LyeResult{}, ErrNoSAPData
	}

	res := LyeResult{SAPAvgKoh: knownLye / knownWeight}
	for _, o := range oils {
		if o.WeightG <= 0 {
			continue
		}
		sap := o.SAPKoh
		if sap <= 0 {
			sap = res.SAPAvgKoh
			res.SAPFallback = true
		}
		res.PureG += o.WeightG * sap / 1000
	}

	res.AfterSuperfatG = res.PureG * (1 - cfg.SuperfatPct/100)
	purity := cfg.EffectivePurityPct()
	if purity <= 0 {
		purity = 100
	}
	res.AdjustedG = res.AfterSuperfatG / (purity / 100)
	return res, nil
}

// CalcWater derives the water weight from the active method. The three
// methods are mutually exclusive; parameters for inactive methods are
// held but ignored.
func CalcWater(lyeAdjustedG, totalOilG float64, cfg WaterConfig) float64 {
	switch cfg.Method {
	case WaterConcentration:
		// lye / (lye + water) = pct/100  =>  water = lye * (100/pct - 1)
		if cfg.ConcentrationPct <= 0 {
			return 0
		}
		return lyeAdjustedG * (100/cfg.ConcentrationPct - 1)
	case WaterLyeRatio:
		return lyeAdjustedG * cfg.Ratio
	default:
		return totalOilG * cfg.PercentOfOils / 100
	}
}

// BatchYield is the finished batch weight: oils, adjusted lye, water
// and every additive.
func BatchYield(totalOilG, lyeAdjustedG, waterG, additivesG float64) float64 {
	return totalOilG + lyeAdjustedG + waterG + additivesG
}
