// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"pii-mask/internal/detector"
	"pii-mask/internal/recognizers/pattern"
)

// Name identifies the recognizer in results and registries
const Name = "EmailRecognizer"

// Defaults holds the standard email pattern and context words
var Defaults = pattern.Defaults{
	Name:   Name,
	Entity: detector.EntityEmail,
	Patterns: []detector.PatternDef{
		{Name: "email", Expr: `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`, Score: 0.9},
	},
	Context: []string{"メール", "メールアドレス", "メアド", "email", "Email", "E-mail", "mail", "アドレス"},
}

// New creates an email address recognizer
func New(opts ...pattern.Option) (*pattern.Recognizer, error) {
	return pattern.New(Defaults, opts...)
}

// MustNew creates an email address recognizer with the built-in pattern
func MustNew() *pattern.Recognizer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}
