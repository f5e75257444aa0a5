package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 100, cfg.Weights.Sum())
}

func TestLoadConfig(t *testing.T) {
	t.Run("Valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"weights": {"keywordMatch": 40, "completeness": 30, "formatting": 20, "density": 10},
			"minWordCount": 100
		}`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 40, cfg.Weights.KeywordMatch)
		assert.Equal(t, 100, cfg.MinWordCount)
		assert.Zero(t, cfg.MaxWordCount, "unset fields stay zero until merged")
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config JSON")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "Default is valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "Weights not summing to 100",
			mutate:  func(c *Config) { c.Weights.Density = 11 },
			wantErr: "weights must sum to 100",
		},
		{
			name: "Negative weight",
			mutate: func(c *Config) {
				c.Weights = Weights{KeywordMatch: 120, Completeness: -20, Formatting: 0, Density: 0}
			},
			wantErr: "non-negative",
		},
		{
			name:    "Zero document limit",
			mutate:  func(c *Config) { c.MaxDocumentChars = 0 },
			wantErr: "maxDocumentChars",
		},
		{
			name:    "Zero density band low",
			mutate:  func(c *Config) { c.DensityBandLow = 0 },
			wantErr: "densityBandLow",
		},
		{
			name:    "Inverted density bands",
			mutate:  func(c *Config) { c.DensityBandHigh = 0.005 },
			wantErr: "low <= target <= high",
		},
		{
			name:    "Min word count above max",
			mutate:  func(c *Config) { c.MinWordCount = 2000 },
			wantErr: "minWordCount",
		},
		{
			name:    "Penalty above 100",
			mutate:  func(c *Config) { c.PenaltyPerWarning = 150 },
			wantErr: "penaltyPerWarning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Default()

	t.Run("Empty config takes all defaults", func(t *testing.T) {
		empty := &Config{}
		merged := empty.MergeWithDefaults(defaults)
		assert.Equal(t, defaults, merged)
	})

	t.Run("Set fields win", func(t *testing.T) {
		partial := &Config{
			Weights:      Weights{KeywordMatch: 70, Completeness: 10, Formatting: 10, Density: 10},
			MinWordCount: 80,
		}
		merged := partial.MergeWithDefaults(defaults)

		assert.Equal(t, 70, merged.Weights.KeywordMatch)
		assert.Equal(t, 80, merged.MinWordCount)
		assert.Equal(t, defaults.MaxWordCount, merged.MaxWordCount)
		assert.Equal(t, defaults.DensityBandHigh, merged.DensityBandHigh)
	})

	t.Run("Weights merge as a unit", func(t *testing.T) {
		// A partially set weight block is kept as-is so Validate can reject
		// it; silently topping it up would mask the mistake.
		partial := &Config{Weights: Weights{KeywordMatch: 50}}
		merged := partial.MergeWithDefaults(defaults)

		assert.Equal(t, Weights{KeywordMatch: 50}, merged.Weights)
		assert.Error(t, merged.Validate())
	})
}
