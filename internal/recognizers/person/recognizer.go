// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package person

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/dlclark/regexp2"

	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/pattern"
)

// Name identifies the recognizer in results and registries
const Name = "JapanesePersonRecognizer"

const (
	nlpScore       = 0.85
	patternScore   = 0.75
	honorificScore = 0.85

	minNameLength = 3
	maxNameLength = 8
)

// NamePattern matches 2-4 Han characters followed by 1-3 more, not embedded
// in a longer run of Han or kana. It needs lookaround, which RE2 lacks.
const NamePattern = `(?<![ぁ-んァ-ン一-龯々])[一-龯々]{2,4}\s*[一-龯々]{1,3}(?![ぁ-んァ-ン一-龯々])`

// Honorifics directly after a name shape raise its score
var Honorifics = []string{"さん", "氏", "君", "様", "殿", "先生", "教授", "博士"}

// Exclusions are words that never occur inside a person name
var Exclusions = []string{
	"電話", "電話番号", "携帯", "メール", "メールアドレス",
	"住所", "郵便番号", "会社", "学校", "大学", "病院",
	"銀行", "支店", "本店", "本社",
	"です", "ます", "ました", "ください",
	"なし", "あり",
}

type options struct {
	language   string
	expr       string
	exclusions []string
	honorifics []string
}

// Option overrides one of the defaults at construction time
type Option func(*options)

// WithLanguage sets the supported language
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithNamePattern replaces the name-shape expression
func WithNamePattern(expr string) Option {
	return func(o *options) {
		o.expr = expr
	}
}

// WithExclusions replaces the exclusion word list
func WithExclusions(words ...string) Option {
	return func(o *options) {
		o.exclusions = words
	}
}

// WithHonorifics replaces the honorific suffix list
func WithHonorifics(words ...string) Option {
	return func(o *options) {
		o.honorifics = words
	}
}

// Recognizer merges NLP PERSON entities with a Han name-shape pattern.
// Both sources pass the same validity filter and are not deduplicated
// against each other.
type Recognizer struct {
	config     detector.RecognizerConfig
	name       *regexp2.Regexp
	exclusions []string
	honorifics detector.ContextScorer
}

// New creates a person recognizer
func New(opts ...Option) (*Recognizer, error) {
	o := options{
		language:   pattern.DefaultLanguage,
		expr:       NamePattern,
		exclusions: Exclusions,
		honorifics: Honorifics,
	}
	for _, opt := range opts {
		opt(&o)
	}

	re, err := regexp2.Compile(o.expr, regexp2.None)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s: name pattern", Name), detector.ErrInvalidPattern)
	}

	return &Recognizer{
		config: detector.RecognizerConfig{
			SupportedEntity:   detector.EntityPerson,
			SupportedLanguage: o.language,
		},
		name:       re,
		exclusions: o.exclusions,
		honorifics: detector.NewSuffixScorer(o.honorifics, honorificScore),
	}, nil
}

// MustNew creates a person recognizer with the built-in settings
func MustNew() *Recognizer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the recognizer name
func (r *Recognizer) Name() string {
	return Name
}

// Config returns the recognizer configuration
func (r *Recognizer) Config() detector.RecognizerConfig {
	return r.config
}

// Analyze returns validated NLP PERSON entities followed by name-shape matches
func (r *Recognizer) Analyze(text string, entities []string, artifacts *detector.Artifacts) ([]detector.Result, error) {
	if !detector.Requested(entities, detector.EntityPerson) {
		return nil, nil
	}

	t := detector.NewText(text)
	var results []detector.Result

	for _, a := range artifacts.WithLabel(detector.LabelPerson) {
		if err := a.Check(t.Len()); err != nil {
			return nil, errors.Wrap(err, Name)
		}
		if r.IsValidPersonName(t.Slice(a.Start, a.End)) {
			results = append(results, detector.NewResult(t, detector.EntityPerson, a.Start, a.End, nlpScore, detector.SourceNLPModel, Name))
		}
	}

	m, err := r.name.FindStringMatch(text)
	for ; m != nil && err == nil; m, err = r.name.FindNextMatch(m) {
		// regexp2 reports rune offsets
		start, end := m.Index, m.Index+m.Length
		span := m.String()
		n := utf8.RuneCountInString(span)
		if n < minNameLength || n > maxNameLength || !r.IsValidPersonName(span) {
			continue
		}
		score := r.honorifics.Score(t, start, end, patternScore)
		results = append(results, detector.NewResult(t, detector.EntityPerson, start, end, score, detector.SourceContextPattern, Name))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: name pattern", Name)
	}

	return results, nil
}

// IsValidPersonName rejects text containing an exclusion word or shorter
// than three characters once trimmed
func (r *Recognizer) IsValidPersonName(s string) bool {
	return isValidName(s, r.exclusions)
}

// IsValidPersonName applies the built-in exclusion list
func IsValidPersonName(s string) bool {
	return isValidName(s, Exclusions)
}

func isValidName(s string, exclusions []string) bool {
	for _, w := range exclusions {
		if strings.Contains(s, w) {
			return false
		}
	}
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= minNameLength
}
