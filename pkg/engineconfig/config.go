/*
Package engineconfig manages TOML configuration for the suggestion
engine.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct file
access for runtime changes.
*/
package engineconfig

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire engine configuration.
type Config struct {
	Relevance RelevanceConfig `toml:"relevance"`
	Query     QueryConfig     `toml:"query"`
	NGram     NGramConfig     `toml:"ngram"`
	Japanese  JapaneseConfig  `toml:"japanese"`
}

// RelevanceConfig holds the default relevance weights applied to every
// query unless overridden per-call.
type RelevanceConfig struct {
	StrWeight   float64 `toml:"str_weight"`
	FreqWeight  float64 `toml:"freq_weight"`
	TotalWeight float64 `toml:"total_weight"`
}

// QueryConfig holds limits and thresholds shared by every suggestion
// query and the extensions' default options.
type QueryConfig struct {
	DefaultLimit       int `toml:"default_limit"`
	ExtensionLimit     int `toml:"extension_limit"`
	ExtensionThreshold int `toml:"extension_threshold"`
	LongestPrefixSteps int `toml:"longest_prefix_steps"`
	LongestPrefixMinLen int `toml:"longest_prefix_min_len"`
	MaxPhoneticDist    int `toml:"max_phonetic_dist"`
}

// NGramConfig holds the n-gram vector-space index's tuning knobs.
type NGramConfig struct {
	N               int     `toml:"n"`
	Threshold       int     `toml:"threshold"`
	SimThreshold    float64 `toml:"sim_threshold"`
	QueryWeight     float64 `toml:"query_weight"`
	TermLimit       int     `toml:"term_limit"`
}

// JapaneseConfig holds Japanese-index-specific tuning knobs.
type JapaneseConfig struct {
	KanjiAlignFreqWeight float64 `toml:"kanji_align_freq_weight"`
	MaxKanaDist          int     `toml:"max_kana_dist"`
}

// DefaultConfig returns a Config with the engine's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Relevance: RelevanceConfig{
			StrWeight:   1,
			FreqWeight:  1,
			TotalWeight: 1,
		},
		Query: QueryConfig{
			DefaultLimit:        10,
			ExtensionLimit:      30,
			ExtensionThreshold:  5,
			LongestPrefixSteps:  3,
			LongestPrefixMinLen: 1,
			MaxPhoneticDist:     8,
		},
		NGram: NGramConfig{
			N:            3,
			Threshold:    10,
			SimThreshold: 0.45,
			QueryWeight:  0.6,
			TermLimit:    2000,
		},
		Japanese: JapaneseConfig{
			KanjiAlignFreqWeight: 0.01,
			MaxKanaDist:          8,
		},
	}
}

// InitConfig loads config from configPath, creating a default file
// there if one doesn't exist yet.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default engine config at %s", configPath)
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load engine config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads a Config from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		log.Errorf("failed to decode engine config: %v", err)
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes cfg to a TOML file at configPath.
func SaveConfig(cfg *Config, configPath string) error {
	file, err := os.Create(configPath)
	if err != nil {
		log.Errorf("failed to create engine config file: %v", err)
		return err
	}
	defer file.Close()
	return toml.NewEncoder(file).Encode(cfg)
}
