package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/latherlab/saponify/internal/model"
)

// maxRecentRecipes bounds the recent-recipes list.
const maxRecentRecipes = 10

// AppConfig holds application-wide preferences and the defaults applied
// to new recipes.
type AppConfig struct {
	DefaultLyeType     model.LyeType     `json:"default_lye_type"`
	DefaultSuperfatPct float64           `json:"default_superfat_pct"`
	DefaultPurityPct   float64           `json:"default_purity_pct"`
	DefaultWaterMethod model.WaterMethod `json:"default_water_method"`
	DefaultWaterPct    float64           `json:"default_water_pct"`
	DisplayUnit        model.Unit        `json:"display_unit"`

	RecentRecipes []string `json:"recent_recipes"`
	CatalogPath   string   `json:"catalog_path"`
	PolicyPath    string   `json:"policy_path"`
}

// DefaultAppConfig returns an AppConfig matching the engine defaults.
func DefaultAppConfig() AppConfig {
	lye := model.DefaultLyeConfig()
	water := model.DefaultWaterConfig()
	return AppConfig{
		DefaultLyeType:     lye.Type,
		DefaultSuperfatPct: lye.SuperfatPct,
		DefaultPurityPct:   lye.PurityPct,
		DefaultWaterMethod: water.Method,
		DefaultWaterPct:    water.PercentOfOils,
		DisplayUnit:        model.UnitGram,
		RecentRecipes:      []string{},
		CatalogPath:        filepath.Join(DefaultConfigDir(), "catalog.db"),
	}
}

// ApplyToRecipe copies the configured defaults into a recipe, used when
// creating a new recipe so it inherits the user's saved preferences.
func (c AppConfig) ApplyToRecipe(r *model.Recipe) {
	r.Lye.Type = c.DefaultLyeType
	r.Lye.SuperfatPct = c.DefaultSuperfatPct
	r.Lye.PurityPct = c.DefaultPurityPct
	r.Water.Method = c.DefaultWaterMethod
	r.Water.PercentOfOils = c.DefaultWaterPct
	r.DisplayUnit = c.DisplayUnit
}

// AddRecentRecipe pushes a path onto the front of the recent list,
// de-duplicating and trimming to the maximum depth.
func (c *AppConfig) AddRecentRecipe(path string) {
	recent := []string{path}
	for _, p := range c.RecentRecipes {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentRecipes {
		recent = recent[:maxRecentRecipes]
	}
	c.RecentRecipes = recent
}

// DefaultConfigPath returns the default path for the app config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON,
// creating missing parent directories automatically.
func SaveAppConfig(path string, config AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path. A missing file
// returns the defaults with no error.
func LoadAppConfig(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultAppConfig(), nil
		}
		return AppConfig{}, err
	}
	var config AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return AppConfig{}, err
	}
	if config.RecentRecipes == nil {
		config.RecentRecipes = []string{}
	}
	if config.DisplayUnit == "" {
		config.DisplayUnit = model.UnitGram
	}
	return config, nil
}
