// Package model implements the soap formulation calculation engine:
// the oil ledger with percent/weight reconciliation, lye and water
// requirements, the fatty-acid quality scorer and the additive
// calculator. Every function in this package is a pure computation over
// caller-owned data; the package performs no I/O and keeps no state.
package model

import "github.com/google/uuid"

// Field identifies which of the two dual-entry fields on a row the user
// edited last. That field is authoritative during reconciliation.
type Field string

const (
	FieldWeight  Field = "weight"
	FieldPercent Field = "percent"
)

// LyeType selects the base used for saponification. KOH90 is a display
// shorthand for KOH that defaults purity to 90% unless overridden.
type LyeType string

const (
	LyeNaOH  LyeType = "naoh"
	LyeKOH   LyeType = "koh"
	LyeKOH90 LyeType = "koh90"
)

// Key returns the policy-table key for this lye type (koh90 shares the
// KOH chemistry).
func (t LyeType) Key() string {
	if t == LyeKOH || t == LyeKOH90 {
		return "koh"
	}
	return "naoh"
}

// DefaultPurityPct returns the purity implied by the lye type when the
// user has not entered one.
func (t LyeType) DefaultPurityPct() float64 {
	if t == LyeKOH90 {
		return 90
	}
	return 100
}

// WaterMethod selects which of the three mutually exclusive water
// specifications drives the water weight.
type WaterMethod string

const (
	WaterPercentOfOils WaterMethod = "percent-of-oils"
	WaterConcentration WaterMethod = "lye-concentration"
	WaterLyeRatio      WaterMethod = "water-lye-ratio"
)

// QualityIndex names one of the five 0-100 bar quality scores.
type QualityIndex string

const (
	Hardness     QualityIndex = "hardness"
	Cleansing    QualityIndex = "cleansing"
	Conditioning QualityIndex = "conditioning"
	Bubbly       QualityIndex = "bubbly"
	Creamy       QualityIndex = "creamy"
)

// QualityIndices lists all indices in display order.
var QualityIndices = []QualityIndex{Hardness, Cleansing, Conditioning, Bubbly, Creamy}

// QualityTarget maps index names to desired 0-100 values. An absent
// index is left alone by the nudge heuristic.
type QualityTarget map[QualityIndex]float64

// OilEntry is one row of the oil ledger. WeightG is canonical grams;
// Percent is the share of the target total. SAPKoh, IodineValue and
// INSValue are zero when unknown; FattyAcids maps acid name to percent
// of this oil's own mass and is nil or empty when no profile is known.
type OilEntry struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	WeightG     float64            `json:"weight_g"`
	Percent     float64            `json:"percent"`
	SAPKoh      float64            `json:"sap_koh"`      // mg KOH per g fat
	IodineValue float64            `json:"iodine_value"` // g I2 per 100 g fat
	INSValue    float64            `json:"ins_value,omitempty"`
	FattyAcids  map[string]float64 `json:"fatty_acids,omitempty"`
	LastEdited  Field              `json:"last_edited"`
}

// NewOilEntry creates a ledger row with a generated ID. Weight starts
// as the authoritative field so a freshly added row reconciles cleanly.
func NewOilEntry(name string) OilEntry {
	return OilEntry{
		ID:         uuid.New().String()[:8],
		Name:       name,
		LastEdited: FieldWeight,
	}
}

// HasProfile reports whether the oil carries any fatty-acid data.
func (o OilEntry) HasProfile() bool {
	return len(o.FattyAcids) > 0
}

// TargetTotal is the ledger's total oil weight constraint: an explicit
// weight, or a value derived from mold capacity. Zero means
// unconstrained.
type TargetTotal struct {
	ExplicitG        float64 `json:"explicit_g"`
	MoldCapacityG    float64 `json:"mold_capacity_g"`
	OilPercentOfMold float64 `json:"oil_percent_of_mold"`
}

// Grams resolves the target to canonical grams. The explicit weight
// wins over the mold derivation when both are set.
func (t TargetTotal) Grams() float64 {
	if t.ExplicitG > 0 {
		return t.ExplicitG
	}
	if t.MoldCapacityG > 0 && t.OilPercentOfMold > 0 {
		return t.MoldCapacityG * t.OilPercentOfMold / 100
	}
	return 0
}

// LyeConfig holds the lye type, purity and superfat settings.
type LyeConfig struct {
	Type        LyeType `json:"type"`
	PurityPct   float64 `json:"purity_pct"`
	SuperfatPct float64 `json:"superfat_pct"`
}

// DefaultLyeConfig returns NaOH at full purity with 5% superfat.
func DefaultLyeConfig() LyeConfig {
	return LyeConfig{Type: LyeNaOH, PurityPct: 100, SuperfatPct: 5}
}

// EffectivePurityPct resolves the purity, falling back to the lye
// type's default when the user never entered one.
func (c LyeConfig) EffectivePurityPct() float64 {
	if c.PurityPct > 0 {
		return c.PurityPct
	}
	return c.Type.DefaultPurityPct()
}

// WaterConfig holds all three water-method parameters. Only the active
// method's parameter drives the water weight; switching methods never
// converts the others.
type WaterConfig struct {
	Method           WaterMethod `json:"method"`
	PercentOfOils    float64     `json:"percent_of_oils"`
	ConcentrationPct float64     `json:"concentration_pct"`
	Ratio            float64     `json:"ratio"`
}

// DefaultWaterConfig returns the percent-of-oils method at 38%.
func DefaultWaterConfig() WaterConfig {
	return WaterConfig{
		Method:           WaterPercentOfOils,
		PercentOfOils:    38,
		ConcentrationPct: 33,
		Ratio:            2,
	}
}

// AdditiveSpec is the dual-entry state of one additive: a percent of
// total oil weight and a weight, kept in sync like oil rows but without
// a capacity cap.
type AdditiveSpec struct {
	Percent    float64 `json:"percent"`
	WeightG    float64 `json:"weight_g"`
	LastEdited Field   `json:"last_edited"`
}

// AdditiveConfig holds the five supported additives.
type AdditiveConfig struct {
	Fragrance AdditiveSpec `json:"fragrance"`
	Lactate   AdditiveSpec `json:"lactate"`
	Sugar     AdditiveSpec `json:"sugar"`
	Salt      AdditiveSpec `json:"salt"`
	Citric    AdditiveSpec `json:"citric"`
}

// Recipe is the full engine input snapshot: the oil ledger plus every
// configuration block. It is owned by the caller (a UI session, the
// CLI, or a test) and never shared across concurrent calculations.
type Recipe struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Oils        []OilEntry     `json:"oils"`
	Target      TargetTotal    `json:"target"`
	Lye         LyeConfig      `json:"lye"`
	Water       WaterConfig    `json:"water"`
	Additives   AdditiveConfig `json:"additives"`
	Targets     QualityTarget  `json:"targets,omitempty"`
	DisplayUnit Unit           `json:"display_unit"`
}

// NewRecipe creates an empty recipe with default configuration.
func NewRecipe() Recipe {
	return Recipe{
		ID:          uuid.New().String()[:8],
		Name:        "Untitled",
		Oils:        []OilEntry{},
		Lye:         DefaultLyeConfig(),
		Water:       DefaultWaterConfig(),
		DisplayUnit: UnitGram,
	}
}

// TotalOilWeight returns the sum of the ledger's row weights in grams.
func (r *Recipe) TotalOilWeight() float64 {
	var total float64
	for _, o := range r.Oils {
		total += o.WeightG
	}
	return total
}

// FindOilByID returns a pointer to the row with the given ID, or nil.
func (r *Recipe) FindOilByID(id string) *OilEntry {
	for i := range r.Oils {
		if r.Oils[i].ID == id {
			return &r.Oils[i]
		}
	}
	return nil
}

// AddOil appends a row to the ledger.
func (r *Recipe) AddOil(o OilEntry) {
	r.Oils = append(r.Oils, o)
}

// RemoveOil deletes the row with the given ID and returns it so the
// caller can keep it for one-step undo.
func (r *Recipe) RemoveOil(id string) (OilEntry, bool) {
	for i := range r.Oils {
		if r.Oils[i].ID == id {
			removed := r.Oils[i]
			r.Oils = append(r.Oils[:i], r.Oils[i+1:]...)
			return removed, true
		}
	}
	return OilEntry{}, false
}

// CloneOils returns a deep copy of the ledger rows, including the
// fatty-acid maps, for snapshots and proposals.
func CloneOils(oils []OilEntry) []OilEntry {
	out := make([]OilEntry, len(oils))
	for i, o := range oils {
		out[i] = o
		if o.FattyAcids != nil {
			fa := make(map[string]float64, len(o.FattyAcids))
			for k, v := range o.FattyAcids {
				fa[k] = v
			}
			out[i].FattyAcids = fa
		}
	}
	return out
}
