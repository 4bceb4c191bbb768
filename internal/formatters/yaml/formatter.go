// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"pii-mask/internal/detector"
	"pii-mask/internal/formatters"
	"pii-mask/internal/formatters/shared"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output with the same structure as JSON"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) Format(results []detector.Result, options formatters.FormatterOptions) (string, error) {
	// Same structure as the JSON formatter
	response := shared.ConvertResults(results, options)

	data, err := yaml.Marshal(response)
	if err != nil {
		return "", errors.Wrap(err, "error formatting YAML")
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
