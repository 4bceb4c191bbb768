// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-mask/internal/detector"
)

func TestRecognizer_ContextCandidateStopsAtNewline(t *testing.T) {
	r := MustNew()
	txt := detector.NewText("住所：東京都千代田区霞が関1-1-1\n次の行")

	triggers := r.findTriggers(txt)
	require.Len(t, triggers, 1, "住所： is a single trigger occurrence")

	got := r.contextCandidates(txt, triggers)
	require.Len(t, got, 1)
	assert.Equal(t, "東京都千代田区霞が関1-1-1", got[0].Text)
	assert.Equal(t, 3, got[0].Start)
	assert.Equal(t, 18, got[0].End)
	assert.Equal(t, 0.9, got[0].Score)
	assert.Equal(t, detector.SourceContextPattern, got[0].Source)
}

func TestRecognizer_ContextAndPatternResolved(t *testing.T) {
	results, err := MustNew().Analyze("住所：東京都千代田区霞が関1-1-1\n次の行", nil, nil)
	require.NoError(t, err)

	// the prefecture match expands to the same span as the context
	// candidate and wins on score
	require.Len(t, results, 1)
	assert.Equal(t, "東京都千代田区霞が関1-1-1", results[0].Text)
	assert.Equal(t, 0.95, results[0].Score)
	assert.Equal(t, detector.SourcePattern, results[0].Source)
}

func TestRecognizer_ContextCandidateSkipsLeadingWhitespace(t *testing.T) {
	r := MustNew()
	text := "自宅は　大阪府大阪市北区梅田"
	txt := detector.NewText(text)

	got := r.contextCandidates(txt, r.findTriggers(txt))
	require.Len(t, got, 1)
	assert.Equal(t, "大阪府大阪市北区梅田", got[0].Text)
	assert.Equal(t, got[0].Text, txt.Slice(got[0].Start, got[0].End))
}

func TestRecognizer_ContextCandidateTooShort(t *testing.T) {
	r := MustNew()
	txt := detector.NewText("住所は港区\n")
	assert.Empty(t, r.contextCandidates(txt, r.findTriggers(txt)))
}

func TestRecognizer_ContextCandidateStopsAtNextTrigger(t *testing.T) {
	r := MustNew()
	txt := detector.NewText("住所：東京都港区1-2-3所在地：大阪府大阪市北区1-1")

	triggers := r.findTriggers(txt)
	require.Len(t, triggers, 2)

	got := r.contextCandidates(txt, triggers)
	require.Len(t, got, 2)
	assert.Equal(t, "東京都港区1-2-3", got[0].Text)
	assert.Equal(t, "大阪府大阪市北区1-1", got[1].Text)
	for _, c := range got {
		assert.Equal(t, c.Text, txt.Slice(c.Start, c.End))
	}
}

func TestRecognizer_PatternMatchNeedsAddressFeatures(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"block lot word", "普通の交通ルールです。"},
		{"bare postal code", "〒100-0001"},
		{"postal code after trigger", "住所:〒100-0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := MustNew().Analyze(tt.text, nil, nil)
			require.NoError(t, err)
			assert.Empty(t, results)
		})
	}
}

func TestRecognizer_PostalCodeWithAddress(t *testing.T) {
	r := MustNew()
	txt := detector.NewText("〒100-0001 東京都千代田区")

	var texts []string
	for _, c := range r.patternCandidates(txt, r.findTriggers(txt)) {
		texts = append(texts, c.Text)
	}
	assert.Contains(t, texts, "東京都千代田区")
	assert.NotContains(t, texts, "〒100-0001")
}

func TestRecognizer_LocationArtifacts(t *testing.T) {
	text := "東京都港区に住んでいます"
	artifacts := &detector.Artifacts{Entities: []detector.Artifact{
		{Label: detector.LabelLocation, Start: 0, End: 5},
		{Label: detector.LabelLocation, Start: 8, End: 10},
		{Label: detector.LabelPerson, Start: 0, End: 3},
	}}

	results, err := MustNew().Analyze(text, nil, artifacts)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "東京都港区", results[0].Text)
	assert.Equal(t, 0.75, results[0].Score)
	assert.Equal(t, detector.SourceNLPModel, results[0].Source)

	_, err = MustNew().Analyze(text, nil, &detector.Artifacts{Entities: []detector.Artifact{
		{Label: detector.LabelLocation, Start: 0, End: 50},
	}})
	assert.True(t, errors.Is(err, detector.ErrInvalidArtifactOffset))
}

func TestRecognizer_ExpandBackToPrefecture(t *testing.T) {
	r := MustNew()
	txt := detector.NewText("東京都の中央区")

	start, end := r.expand(txt, 4, 7)
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)
}

func TestRecognizer_ExpandForwardToDelimiter(t *testing.T) {
	r := MustNew()
	txt := detector.NewText("中央区銀座4-5-6ビル、次")

	start, end := r.expand(txt, 0, 5)
	assert.Equal(t, 0, start)
	assert.Equal(t, "中央区銀座4-5-6ビル", txt.Slice(start, end))
}

func TestIsNumericShape(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"100-0001", true},
		{"1990年1月15日", true},
		{"09012345678", true},
		{"03-1234-5678", true},
		{"〒100-0001", false},
		{"1-2-3", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, isNumericShape(tt.text))
		})
	}
}

func TestHasAddressFeatures(t *testing.T) {
	assert.True(t, HasAddressFeatures("神奈川県"))
	assert.True(t, HasAddressFeatures("サンシャインマンション"))
	assert.True(t, HasAddressFeatures("三条"))
	assert.True(t, HasAddressFeatures("1-2-3"))
	assert.False(t, HasAddressFeatures("こんにちは"))
	assert.False(t, HasAddressFeatures("090-1234"))
}

func TestRecognizer_NotRequested(t *testing.T) {
	results, err := MustNew().Analyze("住所：東京都千代田区霞が関1-1-1", []string{detector.EntityPerson}, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNew_Options(t *testing.T) {
	_, err := New(WithTriggers(""))
	assert.Error(t, err)

	_, err = New(WithPatterns(detector.PatternDef{Name: "bad", Expr: `[`, Score: 0.8}))
	assert.True(t, errors.Is(err, detector.ErrInvalidPattern))

	r, err := New(WithTriggers("お届け先"), WithKeywords("番外地"), WithLanguage("en"))
	require.NoError(t, err)
	assert.Equal(t, "en", r.Config().SupportedLanguage)
	assert.True(t, r.HasAddressFeatures("網走番外地"))
	assert.False(t, r.HasAddressFeatures("団地"))

	txt := detector.NewText("お届け先：網走番外地")
	got := r.contextCandidates(txt, r.findTriggers(txt))
	require.Len(t, got, 1)
	assert.Equal(t, "：網走番外地", got[0].Text)
}
