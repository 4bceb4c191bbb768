// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
)

// ContextScorer raises a score to a fixed boosted value when one of its
// context words appears near a span
type ContextScorer struct {
	// Words that increase confidence
	Words []string

	// Number of characters before and after the span to consider
	Before int
	After  int

	// Immediate requires a word to start exactly at the span end
	Immediate bool

	// Boosted is returned when a word is found
	Boosted float64
}

// NewContextScorer creates a scorer with a symmetric character window
func NewContextScorer(words []string, window int, boosted float64) ContextScorer {
	return ContextScorer{
		Words:   words,
		Before:  window,
		After:   window,
		Boosted: boosted,
	}
}

// NewSuffixScorer creates a scorer that only looks at what directly follows a span
func NewSuffixScorer(words []string, boosted float64) ContextScorer {
	return ContextScorer{
		Words:     words,
		Immediate: true,
		Boosted:   boosted,
	}
}

// WithWindow returns a copy using the given before/after window
func (cs ContextScorer) WithWindow(before, after int) ContextScorer {
	cs.Before = before
	cs.After = after
	return cs
}

// Near reports whether a context word occurs around [start, end).
// The span itself is not searched.
func (cs ContextScorer) Near(t *Text, start, end int) bool {
	if cs.Immediate {
		for _, w := range cs.Words {
			if t.HasPrefixAt(end, w) {
				return true
			}
		}
		return false
	}

	before := t.Slice(max(0, start-cs.Before), start)
	after := t.Slice(end, min(t.Len(), end+cs.After))
	for _, w := range cs.Words {
		if strings.Contains(before, w) || strings.Contains(after, w) {
			return true
		}
	}
	return false
}

// Score returns Boosted when a context word is near the span, base otherwise
func (cs ContextScorer) Score(t *Text, start, end int, base float64) float64 {
	if cs.Near(t, start, end) {
		return cs.Boosted
	}
	return base
}
