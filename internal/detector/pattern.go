// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"iter"
	"regexp"

	"github.com/cockroachdb/errors"
)

// Pattern is a named, compiled regular expression with a base confidence score
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
	Score float64
}

// PatternDef is the uncompiled form of a Pattern
type PatternDef struct {
	Name  string
	Expr  string
	Score float64
}

// Match is one occurrence of a pattern, in character offsets
type Match struct {
	Start   int
	End     int
	Pattern string
	Score   float64
}

// NewPattern compiles expr. Errors are marked with ErrInvalidPattern.
func NewPattern(name, expr string, score float64) (Pattern, error) {
	if score < 0 || score > 1 {
		return Pattern{}, errors.Mark(
			errors.Newf("pattern %q: score %v outside [0, 1]", name, score),
			ErrInvalidPattern,
		)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, errors.Mark(errors.Wrapf(err, "pattern %q", name), ErrInvalidPattern)
	}
	return Pattern{Name: name, Regex: re, Score: score}, nil
}

// CompilePatterns compiles every definition and fails on the first bad one
func CompilePatterns(defs []PatternDef) ([]Pattern, error) {
	patterns := make([]Pattern, 0, len(defs))
	for _, def := range defs {
		p, err := NewPattern(def.Name, def.Expr, def.Score)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// MustCompilePatterns is CompilePatterns for built-in definitions
func MustCompilePatterns(defs []PatternDef) []Pattern {
	patterns, err := CompilePatterns(defs)
	if err != nil {
		panic(err)
	}
	return patterns
}

// Matches yields every non-overlapping match of the pattern in t.
// The sequence is recomputed each time it is ranged over.
func (p Pattern) Matches(t *Text) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for _, loc := range p.Regex.FindAllStringIndex(t.String(), -1) {
			m := Match{
				Start:   t.RuneOffset(loc[0]),
				End:     t.RuneOffset(loc[1]),
				Pattern: p.Name,
				Score:   p.Score,
			}
			if !yield(m) {
				return
			}
		}
	}
}
