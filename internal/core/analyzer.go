// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"pii-mask/internal/config"
	"pii-mask/internal/detector"
	"pii-mask/internal/nlp"
	"pii-mask/internal/observability"
	"pii-mask/internal/registry"
)

// ErrUnsupportedEntity is returned when a requested entity type has no
// recognizer for the analyzer's language
var ErrUnsupportedEntity = errors.New("unsupported entity type")

// ContextEnhancer raises the score of pattern results that have one of their
// recognizer's context words shortly before them
type ContextEnhancer struct {
	// Added to the score when context is found
	Factor float64

	// Lower bound of an enhanced score
	MinScore float64

	// Characters before the span to search
	Window int
}

// NewContextEnhancer creates an enhancer from configuration; nil when disabled
func NewContextEnhancer(cfg config.ContextConfig) *ContextEnhancer {
	if !cfg.Enabled {
		return nil
	}
	return &ContextEnhancer{
		Factor:   cfg.SimilarityFactor,
		MinScore: cfg.MinScoreWithContext,
		Window:   cfg.Window,
	}
}

// Enhance returns the score of r after context enhancement
func (e *ContextEnhancer) Enhance(t *detector.Text, r detector.Result, words []string) float64 {
	if e == nil || r.Source != detector.SourcePattern || len(words) == 0 {
		return r.Score
	}
	scorer := detector.NewContextScorer(words, e.Window, 0).WithWindow(e.Window, 0)
	if !scorer.Near(t, r.Start, r.End) {
		return r.Score
	}
	return min(1, max(r.Score+e.Factor, e.MinScore))
}

// Analyzer runs the registry over a text with NLP artifacts, context
// enhancement and the score threshold applied
type Analyzer struct {
	registry  *registry.Registry
	provider  nlp.Provider
	language  string
	threshold float64
	enhancer  *ContextEnhancer
	observer  *observability.StandardObserver
}

// AnalyzerOption configures an Analyzer
type AnalyzerOption func(*Analyzer)

// WithProvider sets the NLP artifacts provider
func WithProvider(p nlp.Provider) AnalyzerOption {
	return func(a *Analyzer) {
		if p != nil {
			a.provider = p
		}
	}
}

// WithThreshold sets the minimum score of reported results
func WithThreshold(threshold float64) AnalyzerOption {
	return func(a *Analyzer) {
		a.threshold = threshold
	}
}

// WithContextEnhancer sets the context enhancer; nil disables enhancement
func WithContextEnhancer(e *ContextEnhancer) AnalyzerOption {
	return func(a *Analyzer) {
		a.enhancer = e
	}
}

// WithObserver sets the observer used for timings
func WithObserver(o *observability.StandardObserver) AnalyzerOption {
	return func(a *Analyzer) {
		if o != nil {
			a.observer = o
		}
	}
}

// NewAnalyzer creates an analyzer over reg for language. Without options
// it uses no NLP artifacts, the default threshold and default context
// enhancement.
func NewAnalyzer(reg *registry.Registry, language string, opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{
		registry:  reg,
		provider:  nlp.NopProvider{},
		language:  language,
		threshold: config.DefaultThreshold,
		enhancer:  NewContextEnhancer(config.Default().Context),
		observer:  observability.NewNopObserver(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewAnalyzerFromConfig builds the standard registry and an analyzer for cfg
func NewAnalyzerFromConfig(cfg *config.Config, provider nlp.Provider, observer *observability.StandardObserver) (*Analyzer, error) {
	reg, err := BuildRegistry(cfg.Language)
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(reg, cfg.Language,
		WithProvider(provider),
		WithThreshold(cfg.ScoreThreshold),
		WithContextEnhancer(NewContextEnhancer(cfg.Context)),
		WithObserver(observer),
	), nil
}

// Language returns the analysis language
func (a *Analyzer) Language() string {
	return a.language
}

// Registry returns the recognizer registry
func (a *Analyzer) Registry() *registry.Registry {
	return a.registry
}

// Analyze detects PII in text. An empty entities list requests every
// supported type. Results are ordered by start, end and entity type.
func (a *Analyzer) Analyze(ctx context.Context, text string, entities []string) ([]detector.Result, error) {
	finish := a.observer.StartTiming("analyzer", "analyze", a.language)

	if err := a.checkEntities(entities); err != nil {
		finish(false, nil)
		return nil, err
	}

	artifacts, err := a.provider.Process(ctx, text, a.language)
	if err != nil {
		finish(false, nil)
		return nil, errors.Wrap(err, "failed to obtain NLP artifacts")
	}

	candidates, err := a.registry.AnalyzeAll(text, entities, artifacts, a.language)
	if err != nil {
		finish(false, nil)
		return nil, err
	}

	t := detector.NewText(text)
	enhanced := make([]detector.Result, len(candidates))
	for i, r := range candidates {
		r.Score = a.enhancer.Enhance(t, r, a.contextWords(r.Recognizer))
		enhanced[i] = r
	}

	results := make([]detector.Result, 0, len(enhanced))
	for _, r := range RemoveDuplicates(enhanced) {
		if r.Score >= a.threshold {
			results = append(results, r)
		}
	}

	slices.SortStableFunc(results, func(x, y detector.Result) int {
		if c := cmp.Compare(x.Start, y.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(x.End, y.End); c != 0 {
			return c
		}
		return cmp.Compare(x.EntityType, y.EntityType)
	})

	if d := a.observer.DebugObserver; d != nil {
		d.LogMetric("analyzer", "candidates", len(candidates))
		d.LogMetric("analyzer", "results", len(results))
	}
	finish(true, map[string]any{
		"candidates": len(candidates),
		"results":    len(results),
		"artifacts":  artifacts != nil,
	})
	return results, nil
}

// RemoveDuplicates drops zero-score results and results of an entity type
// that are equal to or contained in a higher priority result of the same
// type. Priority is score descending, then start ascending, then length
// descending. Results of different types never shadow each other.
func RemoveDuplicates(results []detector.Result) []detector.Result {
	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(x, y detector.Result) int {
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(x.Start, y.Start); c != 0 {
			return c
		}
		return cmp.Compare(y.Len(), x.Len())
	})

	kept := make([]detector.Result, 0, len(sorted))
	for _, r := range sorted {
		if r.Score == 0 {
			continue
		}
		contained := slices.ContainsFunc(kept, func(k detector.Result) bool {
			return k.EntityType == r.EntityType && k.Start <= r.Start && r.End <= k.End
		})
		if !contained {
			kept = append(kept, r)
		}
	}
	return kept
}

func (a *Analyzer) checkEntities(entities []string) error {
	supported := a.registry.SupportedEntities(a.language)
	for _, e := range entities {
		if !slices.Contains(supported, e) {
			return errors.WithHintf(
				errors.Wrapf(ErrUnsupportedEntity, "%s (language %s)", e, a.language),
				"supported entity types: %s", strings.Join(supported, ", "),
			)
		}
	}
	return nil
}

func (a *Analyzer) contextWords(recognizer string) []string {
	rec, ok := a.registry.Lookup(recognizer)
	if !ok {
		return nil
	}
	return rec.Config().ContextWords
}

// ParseEntities splits a comma-separated entity list. Empty input yields nil.
func ParseEntities(s string) []string {
	return config.SplitList(s)
}
