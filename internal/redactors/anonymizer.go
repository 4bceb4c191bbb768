// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"pii-mask/internal/config"
	"pii-mask/internal/detector"
)

// Item describes one rewritten span. Start and End are character offsets
// into the anonymized text.
type Item struct {
	EntityType string `json:"entity_type" yaml:"entity_type"`
	Start      int    `json:"start" yaml:"start"`
	End        int    `json:"end" yaml:"end"`
	Operator   string `json:"operator" yaml:"operator"`
	Text       string `json:"text" yaml:"text"`
}

// Result is the anonymized text and the spans that were rewritten
type Result struct {
	Text  string `json:"text" yaml:"text"`
	Items []Item `json:"items" yaml:"items"`
}

// Anonymizer rewrites recognized spans using per-entity operators
type Anonymizer struct {
	strategies map[string]Strategy
}

// NewAnonymizer creates an anonymizer with the built-in strategies
func NewAnonymizer() *Anonymizer {
	a := &Anonymizer{strategies: make(map[string]Strategy)}
	for _, s := range DefaultStrategies() {
		a.Register(s)
	}
	return a
}

// Register adds or replaces a strategy under its name
func (a *Anonymizer) Register(s Strategy) {
	a.strategies[s.Name()] = s
}

// Strategy returns the strategy registered for an operator name
func (a *Anonymizer) Strategy(operator string) (Strategy, error) {
	s, ok := a.strategies[operator]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOperator, "%q", operator)
	}
	return s, nil
}

// Anonymize rewrites every result in text. The operator for an entity type
// comes from operators, falling back to def.
func (a *Anonymizer) Anonymize(text string, results []detector.Result, operators map[string]config.OperatorConfig, def config.OperatorConfig) (*Result, error) {
	t := detector.NewText(text)
	for _, r := range results {
		if r.Start < 0 || r.End < r.Start || r.End > t.Len() {
			return nil, errors.Mark(
				errors.Newf("%s span [%d, %d) outside text of length %d", r.EntityType, r.Start, r.End, t.Len()),
				ErrInvalidSpan,
			)
		}
	}

	var b strings.Builder
	b.Grow(len(text))

	out := &Result{}
	cursor, pos := 0, 0
	for _, r := range ResolveConflicts(results) {
		op, ok := operators[r.EntityType]
		if !ok {
			op = def
		}
		if op.Operator == "" {
			op.Operator = config.DefaultOperator
		}

		s, err := a.Strategy(op.Operator)
		if err != nil {
			return nil, err
		}
		replacement, err := s.Redact(t.Slice(r.Start, r.End), r.EntityType, op)
		if err != nil {
			return nil, &OperatorError{Operator: op.Operator, EntityType: r.EntityType, Start: r.Start, End: r.End, Cause: err}
		}

		b.WriteString(t.Slice(cursor, r.Start))
		pos += r.Start - cursor

		b.WriteString(replacement)
		end := pos + utf8.RuneCountInString(replacement)
		out.Items = append(out.Items, Item{
			EntityType: r.EntityType,
			Start:      pos,
			End:        end,
			Operator:   op.Operator,
			Text:       replacement,
		})

		pos = end
		cursor = r.End
	}
	b.WriteString(t.From(cursor))

	out.Text = b.String()
	return out, nil
}
