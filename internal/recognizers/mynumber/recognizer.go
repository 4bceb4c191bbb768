// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package mynumber

import (
	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/pattern"
)

// Name identifies the recognizer in results and registries
const Name = "JapaneseMyNumberRecognizer"

// Defaults holds the 12 digit Individual Number pattern. The score is low on
// purpose: any 12 digit run matches and only context raises confidence.
var Defaults = pattern.Defaults{
	Name:   Name,
	Entity: detector.EntityMyNumber,
	Patterns: []detector.PatternDef{
		{Name: "my_number", Expr: `\p{Nd}{4}[\s\x{3000}-]?\p{Nd}{4}[\s\x{3000}-]?\p{Nd}{4}`, Score: 0.6},
	},
	Context: []string{"マイナンバー", "個人番号", "個人番号カード", "通知カード", "番号", "マイナンバー:", "個人番号:"},
}

// New creates an Individual Number recognizer
func New(opts ...pattern.Option) (*pattern.Recognizer, error) {
	return pattern.New(Defaults, opts...)
}

// MustNew creates an Individual Number recognizer with the built-in pattern
func MustNew() *pattern.Recognizer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}
