// Package config provides configuration loading and validation for the
// analysis engine. All scoring policy constants (weights, density bands,
// length thresholds) live here so they can be tuned without touching the
// algorithms.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Weights distributes the final score across the four sub-scores.
// The four values must sum to exactly 100.
type Weights struct {
	KeywordMatch int `json:"keywordMatch"`
	Completeness int `json:"completeness"`
	Formatting   int `json:"formatting"`
	Density      int `json:"density"`
}

// Sum returns the total of the four weights.
func (w Weights) Sum() int {
	return w.KeywordMatch + w.Completeness + w.Formatting + w.Density
}

// IsZero reports whether no weight has been set.
func (w Weights) IsZero() bool {
	return w == Weights{}
}

// Config represents the engine configuration. It can be loaded from a JSON
// file, overridden per request, and merged with defaults.
type Config struct {
	// Score aggregation
	Weights Weights `json:"weights"`

	// Input limits
	MaxDocumentChars int `json:"maxDocumentChars,omitempty"` // Hard per-document character ceiling

	// Keyword density policy band (keyword occurrences / resume tokens).
	// Below Low scores poorly (under-emphasis), within [Low, High] scores
	// 100, above High scores poorly (stuffing). Target is the midpoint
	// quoted in suggestions.
	DensityBandLow    float64 `json:"densityBandLow,omitempty"`
	DensityBandTarget float64 `json:"densityBandTarget,omitempty"`
	DensityBandHigh   float64 `json:"densityBandHigh,omitempty"`

	// Formatting rules
	MinWordCount          int     `json:"minWordCount,omitempty"`          // Below this the resume is "too short"
	MaxWordCount          int     `json:"maxWordCount,omitempty"`          // Above this the resume is "too long"
	PenaltyPerWarning     int     `json:"penaltyPerWarning,omitempty"`     // Formatting sub-score deduction per warning
	MinBulletsPer100Words float64 `json:"minBulletsPer100Words,omitempty"` // Structured-detail floor
	MaxLayoutMarkers      int     `json:"maxLayoutMarkers,omitempty"`      // Tab/pipe/whitespace-run tolerance
}

// Default returns the engine's default configuration.
func Default() Config {
	return Config{
		Weights: Weights{
			KeywordMatch: 50,
			Completeness: 25,
			Formatting:   15,
			Density:      10,
		},
		MaxDocumentChars:      50000,
		DensityBandLow:        0.01,
		DensityBandTarget:     0.045,
		DensityBandHigh:       0.12,
		MinWordCount:          120,
		MaxWordCount:          1200,
		PenaltyPerWarning:     20,
		MinBulletsPer100Words: 1.5,
		MaxLayoutMarkers:      10,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. The weight-sum
// and band-monotonicity rules are the load-bearing invariants: scores are
// undefined if either is violated.
func (c *Config) Validate() error {
	if sum := c.Weights.Sum(); sum != 100 {
		return fmt.Errorf("config error: weights must sum to 100, got %d", sum)
	}
	if c.Weights.KeywordMatch < 0 || c.Weights.Completeness < 0 ||
		c.Weights.Formatting < 0 || c.Weights.Density < 0 {
		return fmt.Errorf("config error: weights must be non-negative")
	}

	if c.MaxDocumentChars <= 0 {
		return fmt.Errorf("config error: 'maxDocumentChars' must be positive")
	}

	if c.DensityBandLow <= 0 {
		return fmt.Errorf("config error: 'densityBandLow' must be positive")
	}
	if c.DensityBandLow > c.DensityBandTarget || c.DensityBandTarget > c.DensityBandHigh {
		return fmt.Errorf("config error: density bands must satisfy low <= target <= high (got %g, %g, %g)",
			c.DensityBandLow, c.DensityBandTarget, c.DensityBandHigh)
	}

	if c.MinWordCount < 0 {
		return fmt.Errorf("config error: 'minWordCount' must be non-negative")
	}
	if c.MinWordCount >= c.MaxWordCount {
		return fmt.Errorf("config error: 'minWordCount' must be below 'maxWordCount'")
	}
	if c.PenaltyPerWarning < 0 || c.PenaltyPerWarning > 100 {
		return fmt.Errorf("config error: 'penaltyPerWarning' must be in [0, 100]")
	}
	if c.MinBulletsPer100Words < 0 {
		return fmt.Errorf("config error: 'minBulletsPer100Words' must be non-negative")
	}
	if c.MaxLayoutMarkers < 0 {
		return fmt.Errorf("config error: 'maxLayoutMarkers' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used both for config files (file values over engine defaults)
// and per-request overrides (request values over engine config).
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Weights.IsZero() {
		result.Weights = defaults.Weights
	}

	if result.MaxDocumentChars == 0 {
		result.MaxDocumentChars = defaults.MaxDocumentChars
	}

	if result.DensityBandLow == 0 {
		result.DensityBandLow = defaults.DensityBandLow
	}
	if result.DensityBandTarget == 0 {
		result.DensityBandTarget = defaults.DensityBandTarget
	}
	if result.DensityBandHigh == 0 {
		result.DensityBandHigh = defaults.DensityBandHigh
	}

	if result.MinWordCount == 0 {
		result.MinWordCount = defaults.MinWordCount
	}
	if result.MaxWordCount == 0 {
		result.MaxWordCount = defaults.MaxWordCount
	}
	if result.PenaltyPerWarning == 0 {
		result.PenaltyPerWarning = defaults.PenaltyPerWarning
	}
	if result.MinBulletsPer100Words == 0 {
		result.MinBulletsPer100Words = defaults.MinBulletsPer100Words
	}
	if result.MaxLayoutMarkers == 0 {
		result.MaxLayoutMarkers = defaults.MaxLayoutMarkers
	}

	return result
}
