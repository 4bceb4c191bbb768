// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/pattern"
)

// Name identifies the recognizer in results and registries
const Name = "JapanesePhoneNumberRecognizer"

// Defaults holds the standard Japanese phone patterns and context words
var Defaults = pattern.Defaults{
	Name:   Name,
	Entity: detector.EntityPhone,
	Patterns: []detector.PatternDef{
		// 090-1234-5678
		{Name: "mobile_phone", Expr: `0[789]0[-\s\x{3000}]?\p{Nd}{4}[-\s\x{3000}]?\p{Nd}{4}`, Score: 0.8},
		// 03-1234-5678
		{Name: "landline_phone", Expr: `0\p{Nd}{1,4}[-\s\x{3000}]?\p{Nd}{1,4}[-\s\x{3000}]?\p{Nd}{4}`, Score: 0.8},
	},
	Context: []string{"電話", "電話番号", "携帯", "携帯電話", "TEL", "Tel", "tel", "連絡先", "通話", "コール"},
}

// New creates a phone number recognizer
func New(opts ...pattern.Option) (*pattern.Recognizer, error) {
	return pattern.New(Defaults, opts...)
}

// MustNew creates a phone number recognizer with the built-in patterns
func MustNew() *pattern.Recognizer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}
