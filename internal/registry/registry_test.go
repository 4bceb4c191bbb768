// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/email"
	"pii-mask/internal/recognizers/pattern"
	"pii-mask/internal/recognizers/phone"
)

type failingRecognizer struct{}

func (failingRecognizer) Name() string { return "Failing" }

func (failingRecognizer) Config() detector.RecognizerConfig {
	return detector.RecognizerConfig{SupportedEntity: "FAIL", SupportedLanguage: "ja"}
}

func (failingRecognizer) Analyze(string, []string, *detector.Artifacts) ([]detector.Result, error) {
	return nil, errors.New("boom")
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	english, err := phone.New(pattern.WithLanguage("en"))
	require.NoError(t, err)

	r, err := New(phone.MustNew(), email.MustNew(), english)
	require.NoError(t, err)
	return r
}

func TestRegister_Nil(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	err = r.Register(nil)
	assert.True(t, errors.Is(err, ErrNilRecognizer))
	assert.Empty(t, r.Recognizers())
}

func TestAnalyzeAll_RegistrationOrder(t *testing.T) {
	r := newTestRegistry(t)
	text := "taro@example.com 090-1234-5678"

	results, err := r.AnalyzeAll(text, nil, nil, "ja")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, detector.EntityPhone, results[0].EntityType)
	assert.Equal(t, detector.EntityEmail, results[1].EntityType)
}

func TestAnalyzeAll_Filters(t *testing.T) {
	r := newTestRegistry(t)
	text := "taro@example.com 090-1234-5678"

	results, err := r.AnalyzeAll(text, []string{detector.EntityEmail}, nil, "ja")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "taro@example.com", results[0].Text)

	results, err = r.AnalyzeAll(text, nil, nil, "en")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, detector.EntityPhone, results[0].EntityType)

	results, err = r.AnalyzeAll(text, nil, nil, "fr")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAnalyzeAll_PropagatesErrors(t *testing.T) {
	r, err := New(failingRecognizer{})
	require.NoError(t, err)

	_, err = r.AnalyzeAll("text", nil, nil, "ja")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recognizer Failing")
}

func TestSupportedEntities(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, []string{detector.EntityPhone, detector.EntityEmail}, r.SupportedEntities("ja"))
	assert.Equal(t, []string{detector.EntityPhone}, r.SupportedEntities("en"))
	assert.Empty(t, r.SupportedEntities("fr"))
}

func TestLookup(t *testing.T) {
	r := newTestRegistry(t)

	rec, ok := r.Lookup(email.Name)
	require.True(t, ok)
	assert.Equal(t, detector.EntityEmail, rec.Config().SupportedEntity)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}
