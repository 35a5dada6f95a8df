package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML policy file and layers it over the defaults.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy file: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("policy file %s: %w", path, err)
	}
	return t, nil
}

// Parse unmarshals YAML policy overrides over the defaults, so a file
// only needs to state what it changes.
func Parse(data []byte) (*Tables, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects tables the engine cannot run on.
func (t *Tables) Validate() error {
	if t.NudgeStrength <= 0 {
		return fmt.Errorf("nudge_strength must be positive, got %g", t.NudgeStrength)
	}
	if t.NudgeFactorMin <= 0 || t.NudgeFactorMin >= t.NudgeFactorMax {
		return fmt.Errorf("nudge factor clamp [%g, %g] is not a valid band", t.NudgeFactorMin, t.NudgeFactorMax)
	}
	for name, band := range t.QualityBands {
		if band.Min > band.Max {
			return fmt.Errorf("quality band %s: min %g exceeds max %g", name, band.Min, band.Max)
		}
	}
	for key, f := range t.CitricLyeFactors {
		if f < 0 {
			return fmt.Errorf("citric lye factor %s is negative: %g", key, f)
		}
	}
	return nil
}
