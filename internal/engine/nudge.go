// Package engine implements the quality-target nudge heuristic: a
// single-pass, bounded reweighting of the oil ledger toward a set of
// target quality indices. It is deliberately not a converging
// optimizer; the result is advisory and the caller re-displays the
// indices and lets the user repeat or reject it.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/latherlab/saponify/internal/model"
	"github.com/latherlab/saponify/internal/policy"
)

// ErrNoProfileData is returned when no oil in the blend carries a
// fatty-acid profile: with nothing to steer by, no nudge is possible.
var ErrNoProfileData = errors.New("no oil has fatty-acid data to nudge by")

// ErrNoTargets is returned when the target map is empty.
var ErrNoTargets = errors.New("no quality targets given")

// Proposal is the heuristic's advisory output. Weights maps oil ID to
// the proposed weight; Factors records the raw per-oil adjustment for
// display. Before/After hold the quality reports of the original and
// proposed blends so the caller can show the movement.
type Proposal struct {
	Weights map[string]float64
	Factors map[string]float64
	Before  model.QualityReport
	After   model.QualityReport
}

// Nudge computes a bounded single-step reweighting of the given oils
// toward the targets. Per target index the normalized error
// (target-current)/100 is clamped to [-1, 1]; each profiled oil scales
// by 1 + strength * sum(error * its own index score), clamped to the
// policy factor band; finally all weights rescale uniformly so the
// blend total is unchanged. Oils without a profile keep their weight.
func Nudge(oils []model.OilEntry, targets model.QualityTarget, pol *policy.Tables) (Proposal, error) {
	if len(targets) == 0 {
		return Proposal{}, ErrNoTargets
	}

	before := model.Score(oils)
	if !before.HasData {
		return Proposal{}, ErrNoProfileData
	}

	deltas := make(map[model.QualityIndex]float64, len(targets))
	for idx, target := range targets {
		deltas[idx] = clamp((target-before.Indices[idx])/100, -1, 1)
	}

	prop := Proposal{
		Weights: make(map[string]float64, len(oils)),
		Factors: make(map[string]float64, len(oils)),
		Before:  before,
	}

	var originalTotal, adjustedTotal float64
	adjusted := model.CloneOils(oils)
	for i := range adjusted {
		o := &adjusted[i]
		originalTotal += o.WeightG
		if !o.HasProfile() {
			adjustedTotal += o.WeightG
			continue
		}
		scores := model.OilIndexScores(*o)
		var drive float64
		for idx, d := range deltas {
			drive += d * scores[idx]
		}
		factor := clamp(1+pol.NudgeStrength*drive, pol.NudgeFactorMin, pol.NudgeFactorMax)
		prop.Factors[o.ID] = factor
		o.WeightG *= factor
		adjustedTotal += o.WeightG
	}

	// Preserve the blend total exactly; only the mix shifts.
	if adjustedTotal > 0 && originalTotal > 0 {
		rescale := originalTotal / adjustedTotal
		for i := range adjusted {
			adjusted[i].WeightG *= rescale
		}
	}

	for _, o := range adjusted {
		prop.Weights[o.ID] = o.WeightG
	}
	prop.After = model.Score(adjusted)
	return prop, nil
}

// ResolveTargets turns a named preset and/or per-index focus flags
// ("low" or "high") into a target map. Focus flags override preset
// values for their index. An unknown preset or index name is an error
// so a typo never silently nudges toward nothing.
func ResolveTargets(preset string, focus map[model.QualityIndex]string, pol *policy.Tables) (model.QualityTarget, error) {
	targets := model.QualityTarget{}

	if preset != "" {
		values, ok := pol.Presets[strings.ToLower(preset)]
		if !ok {
			return nil, fmt.Errorf("unknown quality preset %q", preset)
		}
		for name, v := range values {
			targets[model.QualityIndex(name)] = v
		}
	}

	for idx, dir := range focus {
		if !knownIndex(idx) {
			return nil, fmt.Errorf("unknown quality index %q", idx)
		}
		switch strings.ToLower(dir) {
		case "low":
			targets[idx] = pol.FocusLowTarget
		case "high":
			targets[idx] = pol.FocusHighTarget
		default:
			return nil, fmt.Errorf("focus for %s must be \"low\" or \"high\", got %q", idx, dir)
		}
	}

	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	return targets, nil
}

func knownIndex(idx model.QualityIndex) bool {
	for _, known := range model.QualityIndices {
		if idx == known {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
