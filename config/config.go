package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/c360/ptil/ptilerr"
)

// Supported serialization format names, mirrored from package serialize's
// Format constants to keep config free of a dependency on it.
const (
	FormatVerbose = "verbose"
	FormatCompact = "compact"
	FormatUltra   = "ultra"
)

// Supported encoder.TrainingConfig layout names, mirrored from package
// encoder to keep config free of a dependency on it. These are a distinct
// enumeration from the Format* constants above: Format* picks how one CSC
// is rendered, Layout* picks how the rendered CSC is combined with the
// original text for a training example.
const (
	LayoutStandard = "standard"
	LayoutCSCOnly  = "csc_only"
	LayoutMixed    = "mixed"
)

// LanguageConfig describes which Analyzer backs a supported language.
type LanguageConfig struct {
	// ParserModel names the Analyzer implementation for the language.
	// Validate only checks that it is non-empty; encoder.New does not read
	// it and builds a lingua.RuleParser unless WithAnalyzer supplies a
	// different Analyzer.
	ParserModel string `json:"parser_model" yaml:"parser_model"`
	// PoolSize is the number of pooled Analyzer instances to keep when the
	// backend is not safe for concurrent use. Zero means "not pooled".
	PoolSize int `json:"pool_size" yaml:"pool_size"`
}

// TrainingDefaults seeds encoder.TrainingConfig when a caller does not
// supply its own.
type TrainingDefaults struct {
	FormatType      string  `json:"format_type" yaml:"format_type"`
	CSCWeight       float64 `json:"csc_weight" yaml:"csc_weight"`
	OriginalWeight  float64 `json:"original_weight" yaml:"original_weight"`
	Separator       string  `json:"separator" yaml:"separator"`
	IncludeBrackets bool    `json:"include_brackets" yaml:"include_brackets"`
}

// Config is the complete encoder configuration.
type Config struct {
	Languages       map[string]LanguageConfig `json:"languages" yaml:"languages"`
	DefaultLanguage string                    `json:"default_language" yaml:"default_language"`
	DefaultFormat   string                    `json:"default_format" yaml:"default_format"`
	Training        TrainingDefaults          `json:"training" yaml:"training"`
}

// Default returns the built-in configuration: rule-based parsing for the
// five languages the markers tables cover, verbose serialization, and the
// same training defaults as encoder.DefaultTrainingConfig (CSCWeight 1,
// OriginalWeight 1, space separator, brackets included).
func Default() *Config {
	return &Config{
		Languages: map[string]LanguageConfig{
			"en": {ParserModel: "rule", PoolSize: 0},
			"es": {ParserModel: "rule", PoolSize: 0},
			"fr": {ParserModel: "rule", PoolSize: 0},
			"de": {ParserModel: "rule", PoolSize: 0},
			"it": {ParserModel: "rule", PoolSize: 0},
		},
		DefaultLanguage: "en",
		DefaultFormat:   FormatVerbose,
		Training: TrainingDefaults{
			FormatType:      LayoutStandard,
			CSCWeight:       1.0,
			OriginalWeight:  1.0,
			Separator:       " ",
			IncludeBrackets: true,
		},
	}
}

// Load reads a YAML configuration file and validates it. An empty path
// returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ptilerr.WrapInvalid(err, "config", "Load", fmt.Sprintf("read %s", path))
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ptilerr.WrapInvalid(err, "config", "Load", fmt.Sprintf("parse %s", path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c == nil {
		return ptilerr.WrapInvalid(fmt.Errorf("nil config"), "Config", "Validate", "config is nil")
	}
	if len(c.Languages) == 0 {
		return ptilerr.WrapInvalid(fmt.Errorf("no languages configured"), "Config", "Validate", "languages map is empty")
	}
	if _, ok := c.Languages[c.DefaultLanguage]; !ok {
		return ptilerr.WrapInvalid(
			fmt.Errorf("default language %q not present in languages map", c.DefaultLanguage),
			"Config", "Validate", "check default language")
	}
	switch c.DefaultFormat {
	case FormatVerbose, FormatCompact, FormatUltra:
	default:
		return ptilerr.WrapInvalid(
			fmt.Errorf("unknown default format %q", c.DefaultFormat),
			"Config", "Validate", "check default format")
	}
	for lang, lc := range c.Languages {
		if lc.ParserModel == "" {
			return ptilerr.WrapInvalid(
				fmt.Errorf("language %q has no parser_model", lang),
				"Config", "Validate", "check parser model")
		}
		if lc.PoolSize < 0 {
			return ptilerr.WrapInvalid(
				fmt.Errorf("language %q has negative pool_size", lang),
				"Config", "Validate", "check pool size")
		}
	}
	if c.Training.CSCWeight < 0 || c.Training.OriginalWeight < 0 {
		return ptilerr.WrapInvalid(
			fmt.Errorf("training weights must be non-negative"),
			"Config", "Validate", "check training weights")
	}
	switch c.Training.FormatType {
	case LayoutStandard, LayoutCSCOnly, LayoutMixed:
	default:
		return ptilerr.WrapInvalid(
			fmt.Errorf("unknown training format_type %q", c.Training.FormatType),
			"Config", "Validate", "check training format_type")
	}
	return nil
}

// Clone returns a deep copy of the configuration via a JSON round trip,
// matching the copy semantics SafeConfig relies on for Get/Update.
func (c *Config) Clone() *Config {
	if c == nil {
		return Default()
	}

	data, err := json.Marshal(c)
	if err != nil {
		copied := *c
		return &copied
	}

	var clone Config
	if err := json.Unmarshal(data, &clone); err != nil {
		copied := *c
		return &copied
	}

	return &clone
}

// SafeConfig provides thread-safe access to a Config that may be swapped at
// runtime.
type SafeConfig struct {
	mu     sync.RWMutex
	config *Config
}

// NewSafeConfig wraps cfg for concurrent access. A nil cfg is replaced with
// Default().
func NewSafeConfig(cfg *Config) *SafeConfig {
	if cfg == nil {
		cfg = Default()
	}
	return &SafeConfig{config: cfg}
}

// Get returns a deep copy of the current configuration.
func (sc *SafeConfig) Get() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config.Clone()
}

// Update validates cfg and, on success, atomically swaps it in.
func (sc *SafeConfig) Update(cfg *Config) error {
	if cfg == nil {
		return ptilerr.WrapInvalid(fmt.Errorf("nil config"), "SafeConfig", "Update", "config must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = cfg
	return nil
}
