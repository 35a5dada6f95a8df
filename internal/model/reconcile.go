package model

import "fmt"

// capEpsilonG is the slack allowed before the capacity cap engages.
const capEpsilonG = 0.01

// EditEvent names the row and field the user touched last. Passing it
// explicitly keeps Reconcile a function of (ledger, edit) instead of
// ambient UI state.
type EditEvent struct {
	OilID string
	Field Field
}

// ReconcileReport describes what reconciliation did. Constraint
// violations are corrected deterministically and surfaced here as
// advisories, never as errors.
type ReconcileReport struct {
	Capped      bool
	CappedOilID string
	Advisories  []string
}

// Reconcile brings every row's weight and percent back into agreement
// with the target total and the most recent edit. The edited field on
// the edited row is authoritative; every other row follows its own
// last-edited field. With no target the ledger free-floats: percents
// normalize against their own sum, or derive from weight shares when no
// percents were entered.
//
// Reconcile mutates the recipe in place (the ledger is caller-owned)
// and is idempotent: a second pass with the same edit is a no-op.
func Reconcile(r *Recipe, edit EditEvent) ReconcileReport {
	var report ReconcileReport

	if ed := r.FindOilByID(edit.OilID); ed != nil && edit.Field != "" {
		ed.LastEdited = edit.Field
	}

	target := r.Target.Grams()
	if target <= 0 {
		reconcileUnconstrained(r)
		return report
	}

	for i := range r.Oils {
		o := &r.Oils[i]
		if o.LastEdited == FieldPercent {
			o.WeightG = target * o.Percent / 100
		} else {
			o.Percent = safeShare(o.WeightG, target)
		}
	}

	// Capacity cap: shrink only the last-edited row. Reducing any other
	// row would make the correction ambiguous.
	total := r.TotalOilWeight()
	if total > target+capEpsilonG {
		ed := r.FindOilByID(edit.OilID)
		if ed != nil {
			others := total - ed.WeightG
			newW := target - others
			if newW < 0 {
				newW = 0
			}
			ed.WeightG = newW
			ed.Percent = safeShare(newW, target)
			ed.LastEdited = FieldWeight
			report.Capped = true
			report.CappedOilID = ed.ID
			report.Advisories = append(report.Advisories,
				fmt.Sprintf("%s reduced to %.2f g to stay within the %.2f g oil target", ed.Name, newW, target))
		} else {
			report.Advisories = append(report.Advisories,
				fmt.Sprintf("total oil weight %.2f g exceeds the %.2f g target; edit a row to re-balance", total, target))
		}
	}

	return report
}

// reconcileUnconstrained handles a zero target: percents normalize
// against their own sum, or derive from weight shares. Weights are
// never rewritten because there is no budget to spread them over.
func reconcileUnconstrained(r *Recipe) {
	var pctSum float64
	for _, o := range r.Oils {
		pctSum += o.Percent
	}
	if pctSum > 0 {
		for i := range r.Oils {
			r.Oils[i].Percent = r.Oils[i].Percent / pctSum * 100
		}
		return
	}
	weightSum := r.TotalOilWeight()
	if weightSum <= 0 {
		return // nothing entered at all: all-zero ledger is valid
	}
	for i := range r.Oils {
		r.Oils[i].Percent = safeShare(r.Oils[i].WeightG, weightSum)
	}
}

// Normalize rescales every row's percent so percents sum to exactly
// 100, preserving relative ratios, and re-derives weights when a target
// exists. A ledger with no percents at all is left untouched.
func Normalize(r *Recipe) {
	var pctSum float64
	for _, o := range r.Oils {
		pctSum += o.Percent
	}
	if pctSum <= 0 {
		return
	}
	target := r.Target.Grams()
	scale := 100 / pctSum
	for i := range r.Oils {
		o := &r.Oils[i]
		o.Percent *= scale
		if target > 0 {
			o.WeightG = target * o.Percent / 100
			o.LastEdited = FieldPercent
		}
	}
}

func safeShare(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
