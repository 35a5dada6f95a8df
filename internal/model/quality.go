package model

import (
	"fmt"
	"sort"

	"github.com/latherlab/saponify/internal/policy"
)

// Fatty-acid names recognized by the quality index formulas. Profiles
// may carry other acids; they contribute to the composition readout but
// not to any index.
const (
	AcidLauric     = "lauric"
	AcidMyristic   = "myristic"
	AcidPalmitic   = "palmitic"
	AcidStearic    = "stearic"
	AcidOleic      = "oleic"
	AcidLinoleic   = "linoleic"
	AcidLinolenic  = "linolenic"
	AcidRicinoleic = "ricinoleic"
)

// indexAcids maps each quality index to the acids it sums.
var indexAcids = map[QualityIndex][]string{
	Hardness:     {AcidLauric, AcidMyristic, AcidPalmitic, AcidStearic},
	Cleansing:    {AcidLauric, AcidMyristic},
	Conditioning: {AcidOleic, AcidLinoleic, AcidLinolenic, AcidRicinoleic},
	Bubbly:       {AcidLauric, AcidMyristic, AcidRicinoleic},
	Creamy:       {AcidPalmitic, AcidStearic, AcidRicinoleic},
}

// QualityReport is the scorer's output. HasData is false when no oil
// carries a fatty-acid profile, in which case Acids and Indices are nil
// ("no data", never 0). Iodine and INS have their own coverage because
// iodine values can be known for a different subset of oils.
type QualityReport struct {
	Acids             map[string]float64       `json:"acids,omitempty"`
	Indices           map[QualityIndex]float64 `json:"indices,omitempty"`
	HasData           bool                     `json:"has_data"`
	CoveragePct       float64                  `json:"coverage_pct"`
	IodineValue       float64                  `json:"iodine_value"`
	HasIodine         bool                     `json:"has_iodine"`
	IodineCoveragePct float64                  `json:"iodine_coverage_pct"`
	INS               float64                  `json:"ins"`
	HasINS            bool                     `json:"has_ins"`
	SAPAvgKoh         float64                  `json:"sap_avg_koh"`
}

// Score computes the blend's fatty-acid composition, quality indices,
// iodine value and INS under partial-coverage semantics: each figure is
// averaged over the weight of oils that actually carry the underlying
// datum, and the coverage percentage is reported so callers can mark
// low-confidence results.
func Score(oils []OilEntry) QualityReport {
	var rep QualityReport
	var totalWeight, coveredWeight float64
	acidTotals := make(map[string]float64)

	for _, o := range oils {
		if o.WeightG <= 0 {
			continue
		}
		totalWeight += o.WeightG
		if !o.HasProfile() {
			continue
		}
		coveredWeight += o.WeightG
		for acid, pct := range o.FattyAcids {
			acidTotals[acid] += o.WeightG * pct / 100
		}
	}

	if coveredWeight > 0 {
		rep.HasData = true
		rep.CoveragePct = safeShare(coveredWeight, totalWeight)
		rep.Acids = make(map[string]float64, len(acidTotals))
		for acid, grams := range acidTotals {
			// Percentage base is the covered weight, not the full total:
			// oils without a profile are excluded rather than diluting.
			rep.Acids[acid] = grams / coveredWeight * 100
		}
		rep.Indices = make(map[QualityIndex]float64, len(indexAcids))
		for idx, acids := range indexAcids {
			var sum float64
			for _, a := range acids {
				sum += rep.Acids[a]
			}
			rep.Indices[idx] = sum
		}
	}

	// Iodine: weighted average over oils with a known iodine value.
	var iodineWeight, iodineSum float64
	for _, o := range oils {
		if o.WeightG > 0 && o.IodineValue > 0 {
			iodineWeight += o.WeightG
			iodineSum += o.WeightG * o.IodineValue
		}
	}
	if iodineWeight > 0 {
		rep.HasIodine = true
		rep.IodineValue = iodineSum / iodineWeight
		rep.IodineCoveragePct = safeShare(iodineWeight, totalWeight)
	}

	// SAP average over oils with a known SAP, reused for INS.
	var sapWeight, sapSum float64
	for _, o := range oils {
		if o.WeightG > 0 && o.SAPKoh > 0 {
			sapWeight += o.WeightG
			sapSum += o.WeightG * o.SAPKoh
		}
	}
	if sapWeight > 0 {
		rep.SAPAvgKoh = sapSum / sapWeight
	}

	// INS: a supplied per-oil figure wins; otherwise SAP average minus
	// iodine, both needed.
	var insWeight, insSum float64
	for _, o := range oils {
		if o.WeightG > 0 && o.INSValue > 0 {
			insWeight += o.WeightG
			insSum += o.WeightG * o.INSValue
		}
	}
	switch {
	case insWeight > 0:
		rep.HasINS = true
		rep.INS = insSum / insWeight
	case sapWeight > 0 && iodineWeight > 0:
		rep.HasINS = true
		rep.INS = rep.SAPAvgKoh - rep.IodineValue
	}

	return rep
}

// OilIndexScores computes the quality index contributions of a single
// oil's own profile, normalized to a 0-1 range. The nudge heuristic
// uses these as per-oil adjustment directions.
func OilIndexScores(o OilEntry) map[QualityIndex]float64 {
	scores := make(map[QualityIndex]float64, len(indexAcids))
	for idx, acids := range indexAcids {
		var sum float64
		for _, a := range acids {
			sum += o.FattyAcids[a]
		}
		scores[idx] = sum / 100
	}
	return scores
}

// QualityWarnings derives the advisory strings for a scored blend from
// the policy thresholds. Advisories are human-readable and never fatal.
func QualityWarnings(rep QualityReport, oils []OilEntry, pol *policy.Tables) []string {
	var warnings []string

	if rep.HasData && rep.CoveragePct < pol.LowCoveragePct {
		warnings = append(warnings,
			fmt.Sprintf("fatty-acid data covers only %.0f%% of the blend; quality scores are approximate", rep.CoveragePct))
	}

	if rep.HasIodine && rep.IodineValue > pol.IodineMax {
		warnings = append(warnings,
			fmt.Sprintf("iodine value %.0f exceeds %.0f: expect a softer bar with a higher rancidity risk", rep.IodineValue, pol.IodineMax))
	}

	if rep.HasData {
		if band, ok := pol.QualityBands[string(Hardness)]; ok {
			if h := rep.Indices[Hardness]; h < band.Min {
				warnings = append(warnings,
					fmt.Sprintf("hardness %.0f is below the ideal %g-%g band: the bar may be soft", h, band.Min, band.Max))
			}
		}
	}

	// Blending advisories: a single oil, or one oil dominating the blend.
	var total float64
	for _, o := range oils {
		total += o.WeightG
	}
	nonZero := 0
	for _, o := range oils {
		if o.WeightG > 0 {
			nonZero++
		}
	}
	if nonZero == 1 && total > 0 {
		warnings = append(warnings, "single-oil recipe: consider blending oils to balance qualities")
	} else if total > 0 {
		for _, o := range oils {
			if safeShare(o.WeightG, total) > pol.DominantOilPct {
				warnings = append(warnings,
					fmt.Sprintf("%s makes up over %.0f%% of the blend: consider blending", o.Name, pol.DominantOilPct))
				break
			}
		}
	}

	return warnings
}

// AcidNames returns the composition's acid names sorted for stable
// display and export ordering.
func (rep QualityReport) AcidNames() []string {
	names := make([]string, 0, len(rep.Acids))
	for a := range rep.Acids {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}
