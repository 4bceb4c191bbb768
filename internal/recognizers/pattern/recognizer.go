// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pattern provides the regex recognizer shared by the single-entity
// recognizers (phone, email, birth date, My Number).
package pattern

import (
	"github.com/cockroachdb/errors"

	"pii-mask/internal/detector"
)

// DefaultLanguage is the language every built-in recognizer supports
const DefaultLanguage = "ja"

// Defaults describes the standard pattern and context set of a recognizer
type Defaults struct {
	Name     string
	Entity   string
	Patterns []detector.PatternDef
	Context  []string
}

type options struct {
	patterns []detector.PatternDef
	context  []string
	language string
	entity   string
}

// Option overrides one of the defaults at construction time
type Option func(*options)

// WithPatterns replaces the default patterns
func WithPatterns(defs ...detector.PatternDef) Option {
	return func(o *options) {
		o.patterns = defs
	}
}

// WithContext replaces the default context words
func WithContext(words ...string) Option {
	return func(o *options) {
		o.context = words
	}
}

// WithLanguage sets the supported language
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithEntity sets the reported entity type
func WithEntity(entity string) Option {
	return func(o *options) {
		o.entity = entity
	}
}

// Recognizer emits one result per regex match for a single entity type
type Recognizer struct {
	name     string
	config   detector.RecognizerConfig
	patterns []detector.Pattern
}

// New compiles the recognizer. Invalid patterns fail here, never at analysis time.
func New(defaults Defaults, opts ...Option) (*Recognizer, error) {
	o := options{
		patterns: defaults.Patterns,
		context:  defaults.Context,
		language: DefaultLanguage,
		entity:   defaults.Entity,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.entity == "" {
		return nil, errors.Newf("%s: supported entity must not be empty", defaults.Name)
	}
	if len(o.patterns) == 0 {
		return nil, errors.Mark(errors.Newf("%s: no patterns", defaults.Name), detector.ErrInvalidPattern)
	}

	patterns, err := detector.CompilePatterns(o.patterns)
	if err != nil {
		return nil, errors.Wrap(err, defaults.Name)
	}

	return &Recognizer{
		name: defaults.Name,
		config: detector.RecognizerConfig{
			SupportedEntity:   o.entity,
			SupportedLanguage: o.language,
			ContextWords:      uniqueWords(o.context),
		},
		patterns: patterns,
	}, nil
}

// Name returns the recognizer name
func (r *Recognizer) Name() string {
	return r.name
}

// Config returns the recognizer configuration
func (r *Recognizer) Config() detector.RecognizerConfig {
	return r.config
}

// Patterns returns the compiled patterns
func (r *Recognizer) Patterns() []detector.Pattern {
	return r.patterns
}

// Analyze runs every pattern over text. Matches of different patterns are
// kept even when they overlap; only matches sharing the exact same span are
// reported once, with the highest score.
func (r *Recognizer) Analyze(text string, entities []string, _ *detector.Artifacts) ([]detector.Result, error) {
	if !detector.Requested(entities, r.config.SupportedEntity) {
		return nil, nil
	}

	t := detector.NewText(text)

	type span struct{ start, end int }
	seen := make(map[span]int)
	var results []detector.Result

	for _, p := range r.patterns {
		for m := range p.Matches(t) {
			key := span{m.Start, m.End}
			if i, ok := seen[key]; ok {
				if m.Score > results[i].Score {
					results[i].Score = m.Score
				}
				continue
			}
			seen[key] = len(results)
			results = append(results, detector.NewResult(t, r.config.SupportedEntity, m.Start, m.End, m.Score, detector.SourcePattern, r.name))
		}
	}

	return results, nil
}

// uniqueWords drops duplicate and empty context words, keeping order
func uniqueWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
