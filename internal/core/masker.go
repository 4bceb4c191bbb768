// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"

	"pii-mask/internal/config"
	"pii-mask/internal/detector"
	"pii-mask/internal/nlp"
	"pii-mask/internal/observability"
	"pii-mask/internal/redactors"
)

// Masker detects PII and rewrites it with the configured operators
type Masker struct {
	analyzer        *Analyzer
	anonymizer      *redactors.Anonymizer
	operators       map[string]config.OperatorConfig
	defaultOperator config.OperatorConfig
}

// NewMasker creates a masker for cfg
func NewMasker(cfg *config.Config, provider nlp.Provider, observer *observability.StandardObserver) (*Masker, error) {
	analyzer, err := NewAnalyzerFromConfig(cfg, provider, observer)
	if err != nil {
		return nil, err
	}
	return &Masker{
		analyzer:        analyzer,
		anonymizer:      redactors.NewAnonymizer(),
		operators:       cfg.Operators,
		defaultOperator: cfg.DefaultOperator,
	}, nil
}

// Analyzer returns the underlying analyzer
func (m *Masker) Analyzer() *Analyzer {
	return m.analyzer
}

// DetectPII returns the PII found in text
func (m *Masker) DetectPII(ctx context.Context, text string, entities []string) ([]detector.Result, error) {
	return m.analyzer.Analyze(ctx, text, entities)
}

// Anonymize detects PII and returns the rewritten text with the applied
// items. A nil operators map uses the configured operators.
func (m *Masker) Anonymize(ctx context.Context, text string, entities []string, operators map[string]config.OperatorConfig) (*redactors.Result, error) {
	results, err := m.analyzer.Analyze(ctx, text, entities)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &redactors.Result{Text: text}, nil
	}
	if operators == nil {
		operators = m.operators
	}
	return m.anonymizer.Anonymize(text, results, operators, m.defaultOperator)
}

// AnonymizeText is Anonymize returning only the text
func (m *Masker) AnonymizeText(ctx context.Context, text string, entities []string, operators map[string]config.OperatorConfig) (string, error) {
	out, err := m.Anonymize(ctx, text, entities, operators)
	if err != nil {
		return "", err
	}
	return out.Text, nil
}
