// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Entity types produced by the built-in recognizers
const (
	EntityPerson   = "PERSON"
	EntityPhone    = "PHONE_NUMBER"
	EntityEmail    = "EMAIL_ADDRESS"
	EntityAddress  = "ADDRESS"
	EntityBirth    = "BIRTHDATE"
	EntityMyNumber = "JP_MY_NUMBER"
)

// NLP labels consumed by the hybrid recognizers
const (
	LabelPerson   = "PERSON"
	LabelLocation = "LOC"
)

// Source records which strategy produced a result
type Source string

const (
	SourcePattern        Source = "pattern"
	SourceNLPModel       Source = "nlp_model"
	SourceContextPattern Source = "context_pattern"
)

// Result is a single recognized PII span.
// Start and End are character (rune) offsets into the analysed text and
// Text is always text[Start:End] at creation time.
type Result struct {
	EntityType string  `json:"entity_type" yaml:"entity_type"`
	Start      int     `json:"start" yaml:"start"`
	End        int     `json:"end" yaml:"end"`
	Score      float64 `json:"score" yaml:"score"`
	Source     Source  `json:"source" yaml:"source"`
	Text       string  `json:"text" yaml:"text"`
	Recognizer string  `json:"recognizer,omitempty" yaml:"recognizer,omitempty"`
}

// Len returns the span length in characters
func (r Result) Len() int {
	return r.End - r.Start
}

// Artifact is one entity span produced by the external NLP collaborator
type Artifact struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Artifacts is the read-only output of the NLP collaborator for one text.
// A nil *Artifacts means no NLP results are available.
type Artifacts struct {
	Entities []Artifact `json:"entities"`
}

// WithLabel returns the entities carrying the given label, in order
func (a *Artifacts) WithLabel(label string) []Artifact {
	if a == nil {
		return nil
	}
	var out []Artifact
	for _, e := range a.Entities {
		if e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

// RecognizerConfig is the immutable identity of a recognizer
type RecognizerConfig struct {
	SupportedEntity   string
	SupportedLanguage string
	ContextWords      []string
}

// Recognizer is implemented by every recognizer variant.
// Implementations are immutable after construction and safe for concurrent use.
type Recognizer interface {
	// Name returns a stable identifier such as "JapanesePhoneNumberRecognizer"
	Name() string

	// Config returns the entity, language and context words of the recognizer
	Config() RecognizerConfig

	// Analyze returns the candidate results found in text. An empty entities
	// list requests every entity the recognizer supports.
	Analyze(text string, entities []string, artifacts *Artifacts) ([]Result, error)
}

// Requested reports whether entity is asked for. An empty list asks for all.
func Requested(entities []string, entity string) bool {
	if len(entities) == 0 {
		return true
	}
	for _, e := range entities {
		if e == entity {
			return true
		}
	}
	return false
}

// NewResult builds a result whose Text is taken from t
func NewResult(t *Text, entity string, start, end int, score float64, source Source, recognizer string) Result {
	return Result{
		EntityType: entity,
		Start:      start,
		End:        end,
		Score:      score,
		Source:     source,
		Text:       t.Slice(start, end),
		Recognizer: recognizer,
	}
}
