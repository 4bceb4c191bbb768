// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pattern

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-mask/internal/detector"
)

var testDefaults = Defaults{
	Name:   "TestRecognizer",
	Entity: "TEST",
	Patterns: []detector.PatternDef{
		{Name: "low", Expr: `ab+`, Score: 0.3},
		{Name: "high", Expr: `ab\b`, Score: 0.6},
	},
	Context: []string{"x", "", "x", "y"},
}

func TestNew_Defaults(t *testing.T) {
	r, err := New(testDefaults)
	require.NoError(t, err)

	assert.Equal(t, "TestRecognizer", r.Name())
	assert.Equal(t, detector.RecognizerConfig{
		SupportedEntity:   "TEST",
		SupportedLanguage: DefaultLanguage,
		ContextWords:      []string{"x", "y"},
	}, r.Config())
	assert.Len(t, r.Patterns(), 2)
}

func TestNew_Options(t *testing.T) {
	r, err := New(testDefaults,
		WithPatterns(detector.PatternDef{Name: "c", Expr: `c`, Score: 0.5}),
		WithContext("z"),
		WithLanguage("en"),
		WithEntity("OTHER"),
	)
	require.NoError(t, err)

	cfg := r.Config()
	assert.Equal(t, "OTHER", cfg.SupportedEntity)
	assert.Equal(t, "en", cfg.SupportedLanguage)
	assert.Equal(t, []string{"z"}, cfg.ContextWords)
	require.Len(t, r.Patterns(), 1)
	assert.Equal(t, "c", r.Patterns()[0].Name)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(testDefaults, WithPatterns(detector.PatternDef{Name: "bad", Expr: `(`, Score: 0.5}))
	assert.True(t, errors.Is(err, detector.ErrInvalidPattern))

	_, err = New(testDefaults, WithPatterns())
	assert.True(t, errors.Is(err, detector.ErrInvalidPattern))

	_, err = New(testDefaults, WithEntity(""))
	assert.Error(t, err)
}

func TestAnalyze(t *testing.T) {
	r, err := New(testDefaults)
	require.NoError(t, err)

	results, err := r.Analyze("ab abb", nil, nil)
	require.NoError(t, err)

	// "ab" is found by both patterns and reported once with the higher
	// score; "abb" only matches the first pattern
	require.Len(t, results, 2)
	assert.Equal(t, detector.Result{
		EntityType: "TEST", Start: 0, End: 2, Score: 0.6,
		Source: detector.SourcePattern, Text: "ab", Recognizer: "TestRecognizer",
	}, results[0])
	assert.Equal(t, 3, results[1].Start)
	assert.Equal(t, 6, results[1].End)
	assert.Equal(t, 0.3, results[1].Score)
}

func TestAnalyze_OverlappingSpansAreKept(t *testing.T) {
	r, err := New(testDefaults, WithPatterns(
		detector.PatternDef{Name: "long", Expr: `abc`, Score: 0.5},
		detector.PatternDef{Name: "short", Expr: `bc`, Score: 0.5},
	))
	require.NoError(t, err)

	results, err := r.Analyze("abc", nil, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestAnalyze_CapabilityFilter(t *testing.T) {
	r, err := New(testDefaults)
	require.NoError(t, err)

	results, err := r.Analyze("ab", []string{"SOMETHING_ELSE"}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = r.Analyze("ab", []string{"SOMETHING_ELSE", "TEST"}, nil)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = r.Analyze("nothing here", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
