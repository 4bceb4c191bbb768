// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pii-mask.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "ja", cfg.Language)
	assert.Equal(t, "ja_core_news_trf", cfg.ModelName)
	assert.Equal(t, 0.5, cfg.ScoreThreshold)
	assert.Empty(t, cfg.EntityTypes)
	assert.Equal(t, "replace", cfg.DefaultOperator.Operator)
	assert.True(t, cfg.Context.Enabled)
	assert.Equal(t, 20, cfg.Context.Window)
	assert.Equal(t, ProviderNone, cfg.NLP.Provider)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
language: ja
score_threshold: 0.7
entity_types: [PERSON, PHONE_NUMBER]
operators:
  PERSON:
    operator: replace
    params:
      new_value: 名無しさん
  PHONE_NUMBER:
    operator: mask
    params: {masking_char: "*", chars_to_mask: 8, from_end: false}
  EMAIL_ADDRESS: redact
default_operator:
  operator: hash
context:
  enabled: false
nlp:
  provider: sidecar
  url: http://localhost:8001
  timeout: 3s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.7, cfg.ScoreThreshold)
	assert.Equal(t, []string{"PERSON", "PHONE_NUMBER"}, cfg.EntityTypes)
	assert.Equal(t, "hash", cfg.DefaultOperator.Operator)
	assert.False(t, cfg.Context.Enabled)
	assert.Equal(t, 0.35, cfg.Context.SimilarityFactor, "unset keys keep their defaults")
	assert.Equal(t, ProviderSidecar, cfg.NLP.Provider)
	assert.Equal(t, 3*time.Second, cfg.NLP.Timeout)

	person := cfg.Operators["PERSON"]
	value, err := person.StringParam("new_value", "")
	require.NoError(t, err)
	assert.Equal(t, "名無しさん", value)

	phone := cfg.Operators["PHONE_NUMBER"]
	assert.Equal(t, "mask", phone.Operator)
	n, err := phone.IntParam("chars_to_mask", 0)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	fromEnd, err := phone.BoolParam("from_end", true)
	require.NoError(t, err)
	assert.False(t, fromEnd)

	assert.Equal(t, OperatorConfig{Operator: "redact"}, cfg.Operators["EMAIL_ADDRESS"])
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"threshold too high", "score_threshold: 1.5\n"},
		{"unknown operator", "operators:\n  PERSON: scramble\n"},
		{"unknown default operator", "default_operator: {operator: shuffle}\n"},
		{"unknown provider", "nlp: {provider: cloud}\n"},
		{"sidecar without url", "nlp: {provider: sidecar}\n"},
		{"file without path", "nlp: {provider: file}\n"},
		{"negative window", "context: {window: -1}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadConfig_UnknownOperatorHint(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "operators:\n  PERSON: scramble\n"))
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "supported operators")
}

func TestLoadConfig_BadFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "language: [unclosed\n"))
	assert.Error(t, err)
}

func TestLoadConfigOrDefault(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/path/pii-mask.yaml")
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultLanguage, cfg.Language)

	cfg = LoadConfigOrDefault(writeConfig(t, "score_threshold: 0.9\n"))
	assert.Equal(t, 0.9, cfg.ScoreThreshold)
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PII_MASK_CONFIG_DIR", t.TempDir())

	assert.Equal(t, "", FindConfigFile())

	require.NoError(t, os.WriteFile(".pii-mask.yaml", []byte("language: ja\n"), 0600))
	assert.Equal(t, ".pii-mask.yaml", FindConfigFile())

	require.NoError(t, os.WriteFile("pii-mask.yaml", []byte("language: ja\n"), 0600))
	assert.Equal(t, "pii-mask.yaml", FindConfigFile())
}

func TestApplyEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PII_LANGUAGE", "en")
	t.Setenv("PII_MODEL_NAME", "en_core_web_sm")
	t.Setenv("PII_SCORE_THRESHOLD", "0.65")
	t.Setenv("PII_ENTITY_TYPES", "PERSON, EMAIL_ADDRESS,,")
	t.Setenv("PII_NER_URL", "http://ner:8001")

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "en_core_web_sm", cfg.ModelName)
	assert.Equal(t, 0.65, cfg.ScoreThreshold)
	assert.Equal(t, []string{"PERSON", "EMAIL_ADDRESS"}, cfg.EntityTypes)
	assert.Equal(t, ProviderSidecar, cfg.NLP.Provider)
	assert.Equal(t, "http://ner:8001", cfg.NLP.URL)
}

func TestApplyEnv_DotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PII_LANGUAGE", "ja")
	require.NoError(t, os.WriteFile(".env", []byte("PII_LANGUAGE=en\nPII_SCORE_THRESHOLD=0.8\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("PII_SCORE_THRESHOLD") })

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg))

	assert.Equal(t, "ja", cfg.Language, "the process environment wins over .env")
	assert.Equal(t, 0.8, cfg.ScoreThreshold)
}

func TestApplyEnv_InvalidThreshold(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("PII_SCORE_THRESHOLD", "high")
	err := ApplyEnv(Default())
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	t.Setenv("PII_SCORE_THRESHOLD", "2")
	err = ApplyEnv(Default())
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestOperatorConfig_Params(t *testing.T) {
	op := OperatorConfig{Operator: "mask", Params: map[string]any{
		"masking_char":  "#",
		"chars_to_mask": float64(4),
		"fraction":      1.5,
		"from_end":      "yes",
	}}

	c, err := op.StringParam("masking_char", "*")
	require.NoError(t, err)
	assert.Equal(t, "#", c)

	n, err := op.IntParam("chars_to_mask", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = op.IntParam("fraction", 0)
	assert.Error(t, err)

	_, err = op.BoolParam("from_end", false)
	assert.Error(t, err)

	d, err := op.StringParam("missing", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", d)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , "))
	assert.Equal(t, []string{"A", "B"}, SplitList("A, B"))
}
