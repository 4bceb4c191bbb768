// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/pattern"
)

// Name identifies the recognizer in results and registries
const Name = "JapaneseAddressRecognizer"

const (
	contextScore   = 0.9
	proximateScore = 0.95
	nlpScore       = 0.75

	// A trigger ending closer than this to a pattern match raises its score
	proximityWindow = 20

	// How far span expansion looks for a prefecture or a lot number
	expansionWindow = 30

	// Context candidates must be longer than this
	minContextLength = 4
)

var (
	// 1-2-3, 十, −5
	trailingNumberRegex = regexp.MustCompile(`[-−0-9０-９一二三四五六七八九十]+`)

	// End of an expanded address
	delimiterRegex = regexp.MustCompile(`[。、.，,；;:\n\r]`)
)

// PatternDefs returns the three address pattern families
func PatternDefs() []detector.PatternDef {
	return []detector.PatternDef{
		{
			Name:  "prefecture_address",
			Expr:  `(?:` + prefectureAlternation() + `)[一-龯々ぁ-んァ-ン0-9０-９a-zA-Z\-－・\s\x{3000}]{2,30}[市区町村郡]`,
			Score: 0.8,
		},
		{
			Name:  "postal_code",
			Expr:  `〒\p{Nd}{3}[-−]?\p{Nd}{4}`,
			Score: 0.8,
		},
		{
			Name:  "block_lot",
			Expr:  `[一-龯々ぁ-んァ-ン0-9０-９]+(?:丁目|番町|条|番地|番|通|町目|条通|の町|横町)(?:[-−0-9０-９一二三四五六七八九十百千]+)?`,
			Score: 0.8,
		},
	}
}

type options struct {
	language string
	triggers []string
	keywords []string
	patterns []detector.PatternDef
}

// Option overrides one of the defaults at construction time
type Option func(*options)

// WithLanguage sets the supported language
func WithLanguage(language string) Option {
	return func(o *options) {
		o.language = language
	}
}

// WithTriggers replaces the address-introducing trigger phrases
func WithTriggers(words ...string) Option {
	return func(o *options) {
		o.triggers = words
	}
}

// WithKeywords replaces the address vocabulary used by the feature test
func WithKeywords(words ...string) Option {
	return func(o *options) {
		o.keywords = words
	}
}

// WithPatterns replaces the pattern families
func WithPatterns(defs ...detector.PatternDef) Option {
	return func(o *options) {
		o.patterns = defs
	}
}

// Recognizer finds Japanese addresses by combining trigger-anchored
// extraction, pattern matching and NLP LOC entities, then resolving overlaps
// among its own candidates.
type Recognizer struct {
	config   detector.RecognizerConfig
	patterns []detector.Pattern
	keywords []string

	// trigger locates trigger phrases, longest first
	trigger *regexp.Regexp

	// stop ends a context candidate at a line break or the next trigger
	stop *regexp.Regexp
}

// span is a trigger occurrence in character offsets
type span struct {
	start, end int
}

// New creates an address recognizer
func New(opts ...Option) (*Recognizer, error) {
	o := options{
		language: pattern.DefaultLanguage,
		triggers: Triggers,
		keywords: Keywords,
		patterns: PatternDefs(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	alternation := triggerAlternation(o.triggers)
	if alternation == "" {
		return nil, errors.Newf("%s: at least one trigger is required", Name)
	}

	patterns, err := detector.CompilePatterns(o.patterns)
	if err != nil {
		return nil, errors.Wrap(err, Name)
	}

	trigger, err := regexp.Compile(alternation)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s: triggers", Name), detector.ErrInvalidPattern)
	}

	return &Recognizer{
		config: detector.RecognizerConfig{
			SupportedEntity:   detector.EntityAddress,
			SupportedLanguage: o.language,
		},
		patterns: patterns,
		keywords: o.keywords,
		trigger:  trigger,
		stop:     regexp.MustCompile(`[\n\r]|` + alternation),
	}, nil
}

// MustNew creates an address recognizer with the built-in settings
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

// Analyze runs the three strategies and returns their resolved union
func (r *Recognizer) Analyze(text string, entities []string, artifacts *detector.Artifacts) ([]detector.Result, error) {
	if !detector.Requested(entities, detector.EntityAddress) {
		return nil, nil
	}

	t := detector.NewText(text)
	triggers := r.findTriggers(t)

	candidates := r.contextCandidates(t, triggers)
	candidates = append(candidates, r.patternCandidates(t, triggers)...)

	nlp, err := r.nlpCandidates(t, artifacts)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, nlp...)

	return ResolveOverlaps(candidates), nil
}

// HasAddressFeatures applies the recognizer's keyword list
func (r *Recognizer) HasAddressFeatures(s string) bool {
	return hasAddressFeatures(s, r.keywords)
}

// isValidAddress rejects numeric look-alikes and text without any address feature
func (r *Recognizer) isValidAddress(s string) bool {
	return !isNumericShape(s) && r.HasAddressFeatures(s)
}

// findTriggers returns non-overlapping trigger occurrences, left to right
func (r *Recognizer) findTriggers(t *detector.Text) []span {
	var out []span
	for _, loc := range r.trigger.FindAllStringIndex(t.String(), -1) {
		out = append(out, span{t.RuneOffset(loc[0]), t.RuneOffset(loc[1])})
	}
	return out
}

// contextCandidates takes the text after each trigger up to the next line
// break or trigger
func (r *Recognizer) contextCandidates(t *detector.Text, triggers []span) []detector.Result {
	var results []detector.Result
	for _, trig := range triggers {
		rest := t.From(trig.end)
		if loc := r.stop.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]]
		}

		trimmed := strings.TrimSpace(rest)
		length := utf8.RuneCountInString(trimmed)
		if length <= minContextLength || !r.HasAddressFeatures(trimmed) {
			continue
		}

		lead := len(rest) - len(strings.TrimLeftFunc(rest, unicode.IsSpace))
		start := trig.end + utf8.RuneCountInString(rest[:lead])
		results = append(results, detector.NewResult(t, detector.EntityAddress, start, start+length, contextScore, detector.SourceContextPattern, Name))
	}
	return results
}

// patternCandidates matches the pattern families, keeps matches that look
// like addresses, scores by trigger proximity and expands each span
func (r *Recognizer) patternCandidates(t *detector.Text, triggers []span) []detector.Result {
	var results []detector.Result
	for _, p := range r.patterns {
		for m := range p.Matches(t) {
			if !r.isValidAddress(t.Slice(m.Start, m.End)) {
				continue
			}

			score := m.Score
			for _, trig := range triggers {
				if abs(trig.end-m.Start) < proximityWindow {
					score = proximateScore
					break
				}
			}

			start, end := r.expand(t, m.Start, m.End)
			results = append(results, detector.NewResult(t, detector.EntityAddress, start, end, score, detector.SourcePattern, Name))
		}
	}
	return results
}

// nlpCandidates keeps LOC entities that look like addresses
func (r *Recognizer) nlpCandidates(t *detector.Text, artifacts *detector.Artifacts) ([]detector.Result, error) {
	var results []detector.Result
	for _, a := range artifacts.WithLabel(detector.LabelLocation) {
		if err := a.Check(t.Len()); err != nil {
			return nil, errors.Wrap(err, Name)
		}
		if !r.HasAddressFeatures(t.Slice(a.Start, a.End)) {
			continue
		}
		start, end := r.expand(t, a.Start, a.End)
		results = append(results, detector.NewResult(t, detector.EntityAddress, start, end, nlpScore, detector.SourceNLPModel, Name))
	}
	return results, nil
}

// expand pulls the start back to a nearby preceding prefecture and pushes
// the end past a following lot number, up to the next delimiter
func (r *Recognizer) expand(t *detector.Text, start, end int) (int, int) {
	for _, pref := range Prefectures {
		if pos := t.LastIndex(pref, start); pos != -1 && start-pos < expansionWindow {
			start = pos
			break
		}
	}

	post := t.Slice(end, min(t.Len(), end+expansionWindow))
	if loc := trailingNumberRegex.FindStringIndex(post); loc != nil {
		extended := end + utf8.RuneCountInString(post[:loc[1]])
		if d := delimiterRegex.FindStringIndex(post[loc[1]:]); d != nil {
			extended += utf8.RuneCountInString(post[loc[1] : loc[1]+d[0]])
		}
		end = min(t.Len(), extended)
	}

	return start, end
}

// triggerAlternation quotes the triggers and orders them longest first so
// "住所：" wins over "住所" at the same position
func triggerAlternation(triggers []string) string {
	sorted := slices.Clone(triggers)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})
	quoted := make([]string, 0, len(sorted))
	for _, w := range sorted {
		if w != "" {
			quoted = append(quoted, regexp.QuoteMeta(w))
		}
	}
	return strings.Join(quoted, "|")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
