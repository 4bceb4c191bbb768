// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pii-mask/internal/paths"
)

// Defaults mirrored by the CLI flags
const (
	DefaultLanguage  = "ja"
	DefaultModelName = "ja_core_news_trf"
	DefaultThreshold = 0.5
	DefaultOperator  = "replace"
)

// NLP provider names
const (
	ProviderNone    = "none"
	ProviderFile    = "file"
	ProviderSidecar = "sidecar"
)

// Operators lists the anonymization operators the masker understands
var Operators = []string{"replace", "redact", "mask", "hash", "keep"}

// ErrInvalidConfig marks a configuration that failed validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the masking configuration
type Config struct {
	// NLP engine settings
	Language       string  `yaml:"language"`
	ModelName      string  `yaml:"model_name"`
	ScoreThreshold float64 `yaml:"score_threshold"`

	// Entity types to detect; empty means every supported type
	EntityTypes []string `yaml:"entity_types"`

	// Operator per entity type, and the one used for everything else
	Operators       map[string]OperatorConfig `yaml:"operators"`
	DefaultOperator OperatorConfig            `yaml:"default_operator"`

	Context ContextConfig `yaml:"context"`
	NLP     NLPConfig     `yaml:"nlp"`
}

// ContextConfig controls the context word score enhancement
type ContextConfig struct {
	Enabled             bool    `yaml:"enabled"`
	SimilarityFactor    float64 `yaml:"similarity_factor"`
	MinScoreWithContext float64 `yaml:"min_score_with_context"`
	Window              int     `yaml:"window"`
}

// NLPConfig selects where NLP artifacts come from
type NLPConfig struct {
	Provider      string        `yaml:"provider"`
	URL           string        `yaml:"url"`
	ArtifactsFile string        `yaml:"artifacts_file"`
	Timeout       time.Duration `yaml:"timeout"`

	// Sidecar retries after the first attempt
	Retries int `yaml:"retries"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Language:        DefaultLanguage,
		ModelName:       DefaultModelName,
		ScoreThreshold:  DefaultThreshold,
		Operators:       make(map[string]OperatorConfig),
		DefaultOperator: OperatorConfig{Operator: DefaultOperator},
		Context: ContextConfig{
			Enabled:             true,
			SimilarityFactor:    0.35,
			MinScoreWithContext: 0.4,
			Window:              20,
		},
		NLP: NLPConfig{
			Provider: ProviderNone,
			Timeout:  10 * time.Second,
			Retries:  2,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}

	if config.Operators == nil {
		config.Operators = make(map[string]OperatorConfig)
	}
	if config.DefaultOperator.Operator == "" {
		config.DefaultOperator.Operator = DefaultOperator
	}

	if err := ValidateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// LoadConfigOrDefault loads configFile, or the first config found on the
// search path, falling back to defaults on any error
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Default()
	}
	return cfg
}

// FindConfigFile returns the first existing config file, or "" when none is found
func FindConfigFile() string {
	for _, name := range []string{"pii-mask.yaml", "pii-mask.yml", ".pii-mask.yaml", ".pii-mask.yml"} {
		if fileExists(name) {
			return name
		}
	}

	if standard := paths.GetConfigFile(); fileExists(standard) {
		return standard
	}
	return ""
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ApplyEnv overrides cfg from PII_* environment variables. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over it.
func ApplyEnv(cfg *Config) error {
	_ = godotenv.Load()

	if v := os.Getenv("PII_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("PII_MODEL_NAME"); v != "" {
		cfg.ModelName = v
	}
	if v := os.Getenv("PII_SCORE_THRESHOLD"); v != "" {
		threshold, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Mark(errors.Wrapf(err, "PII_SCORE_THRESHOLD %q", v), ErrInvalidConfig)
		}
		cfg.ScoreThreshold = threshold
	}
	if v := os.Getenv("PII_ENTITY_TYPES"); v != "" {
		cfg.EntityTypes = SplitList(v)
	}
	if v := os.Getenv("PII_NER_URL"); v != "" {
		cfg.NLP.Provider = ProviderSidecar
		cfg.NLP.URL = v
	}

	return ValidateConfig(cfg)
}

// SplitList splits a comma-separated list, dropping empty items
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ValidateConfig checks value ranges and names
func ValidateConfig(config *Config) error {
	if config == nil {
		return errors.Mark(errors.New("configuration cannot be nil"), ErrInvalidConfig)
	}

	if config.ScoreThreshold < 0 || config.ScoreThreshold > 1 {
		return errors.Mark(errors.Newf("score_threshold %v outside [0, 1]", config.ScoreThreshold), ErrInvalidConfig)
	}
	if config.Language == "" {
		return errors.Mark(errors.New("language must not be empty"), ErrInvalidConfig)
	}

	for entity, op := range config.Operators {
		if err := validateOperator(op); err != nil {
			return errors.Wrapf(err, "operator for %s", entity)
		}
	}
	if err := validateOperator(config.DefaultOperator); err != nil {
		return errors.Wrap(err, "default_operator")
	}

	if config.Context.SimilarityFactor < 0 || config.Context.MinScoreWithContext < 0 || config.Context.MinScoreWithContext > 1 {
		return errors.Mark(errors.New("context scores must lie in [0, 1]"), ErrInvalidConfig)
	}
	if config.Context.Window < 0 {
		return errors.Mark(errors.Newf("context window %d is negative", config.Context.Window), ErrInvalidConfig)
	}

	return validateNLP(config.NLP)
}

func validateOperator(op OperatorConfig) error {
	if !slices.Contains(Operators, op.Operator) {
		return errors.WithHintf(
			errors.Mark(errors.Newf("unknown operator %q", op.Operator), ErrInvalidConfig),
			"supported operators: %s", strings.Join(Operators, ", "),
		)
	}
	return nil
}

func validateNLP(nlp NLPConfig) error {
	switch nlp.Provider {
	case "", ProviderNone:
	case ProviderFile:
		if nlp.ArtifactsFile == "" {
			return errors.Mark(errors.New("nlp provider file requires artifacts_file"), ErrInvalidConfig)
		}
	case ProviderSidecar:
		if nlp.URL == "" {
			return errors.Mark(errors.New("nlp provider sidecar requires url"), ErrInvalidConfig)
		}
	default:
		return errors.WithHint(
			errors.Mark(errors.Newf("unknown nlp provider %q", nlp.Provider), ErrInvalidConfig),
			"use none, file or sidecar",
		)
	}
	if nlp.Retries < 0 {
		return errors.Mark(errors.Newf("nlp retries %d is negative", nlp.Retries), ErrInvalidConfig)
	}
	if nlp.Timeout < 0 {
		return errors.Mark(errors.Newf("nlp timeout %s is negative", nlp.Timeout), ErrInvalidConfig)
	}
	return nil
}
