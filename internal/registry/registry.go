// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package registry holds the recognizers available to the analyzer and
// dispatches text to the ones that apply.
package registry

import (
	"github.com/cockroachdb/errors"

	"pii-mask/internal/detector"
)

// ErrNilRecognizer is returned when registering a nil recognizer
var ErrNilRecognizer = errors.New("nil recognizer")

// Registry keeps recognizers in registration order
type Registry struct {
	recognizers []detector.Recognizer
}

// New creates a registry holding the given recognizers
func New(recognizers ...detector.Recognizer) (*Registry, error) {
	r := &Registry{}
	for _, rec := range recognizers {
		if err := r.Register(rec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends a recognizer
func (r *Registry) Register(rec detector.Recognizer) error {
	if rec == nil {
		return ErrNilRecognizer
	}
	r.recognizers = append(r.recognizers, rec)
	return nil
}

// Recognizers returns the registered recognizers in registration order
func (r *Registry) Recognizers() []detector.Recognizer {
	out := make([]detector.Recognizer, len(r.recognizers))
	copy(out, r.recognizers)
	return out
}

// Applicable returns the recognizers that support language and one of the
// requested entities
func (r *Registry) Applicable(entities []string, language string) []detector.Recognizer {
	var out []detector.Recognizer
	for _, rec := range r.recognizers {
		cfg := rec.Config()
		if cfg.SupportedLanguage != language || !detector.Requested(entities, cfg.SupportedEntity) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// AnalyzeAll runs every applicable recognizer and concatenates their results
// in registration order. Results of different recognizers are not resolved
// against each other.
func (r *Registry) AnalyzeAll(text string, entities []string, artifacts *detector.Artifacts, language string) ([]detector.Result, error) {
	var results []detector.Result
	for _, rec := range r.Applicable(entities, language) {
		found, err := rec.Analyze(text, entities, artifacts)
		if err != nil {
			return nil, errors.Wrapf(err, "recognizer %s", rec.Name())
		}
		results = append(results, found...)
	}
	return results, nil
}

// SupportedEntities lists the entity types available for language, in
// registration order without duplicates
func (r *Registry) SupportedEntities(language string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, rec := range r.recognizers {
		cfg := rec.Config()
		if cfg.SupportedLanguage != language || seen[cfg.SupportedEntity] {
			continue
		}
		seen[cfg.SupportedEntity] = true
		out = append(out, cfg.SupportedEntity)
	}
	return out
}

// Lookup returns the recognizer registered under name
func (r *Registry) Lookup(name string) (detector.Recognizer, bool) {
	for _, rec := range r.recognizers {
		if rec.Name() == name {
			return rec, true
		}
	}
	return nil, false
}
