// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"pii-mask/internal/detector"
	"pii-mask/internal/formatters"
	"pii-mask/internal/formatters/shared"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

func (f *Formatter) Format(results []detector.Result, options formatters.FormatterOptions) (string, error) {
	response := shared.ConvertResults(results, options)

	data, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "error formatting JSON")
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
