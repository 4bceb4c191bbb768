// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package birthdate

import (
	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/pattern"
)

// Name identifies the recognizer in results and registries
const Name = "BirthDateRecognizer"

// Defaults holds the Western and Japanese era date patterns
var Defaults = pattern.Defaults{
	Name:   Name,
	Entity: detector.EntityBirth,
	Patterns: []detector.PatternDef{
		// 1990年4月1日
		{Name: "western_date", Expr: `\p{Nd}{4}年\p{Nd}{1,2}月\p{Nd}{1,2}日`, Score: 0.7},
		// 1990/4/1
		{Name: "western_date_slash", Expr: `\p{Nd}{4}[/／]\p{Nd}{1,2}[/／]\p{Nd}{1,2}`, Score: 0.7},
		// 1990年生まれ
		{Name: "year_only", Expr: `\p{Nd}{4}年(?:生まれ|生)`, Score: 0.6},
		// 平成2年4月1日
		{Name: "japanese_era_date", Expr: `(?:昭和|平成|大正|明治|令和)\p{Nd}{1,2}年\p{Nd}{1,2}月\p{Nd}{1,2}日`, Score: 0.7},
	},
	Context: []string{"生年月日", "誕生日", "生まれ", "出生", "年齢", "生誕", "生年月日:", "誕生日:"},
}

// New creates a birth date recognizer
func New(opts ...pattern.Option) (*pattern.Recognizer, error) {
	return pattern.New(Defaults, opts...)
}

// MustNew creates a birth date recognizer with the built-in patterns
func MustNew() *pattern.Recognizer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}
