// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"pii-mask/internal/detector"
	"pii-mask/internal/formatters"
	"pii-mask/internal/formatters/shared"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []detector.Result, options formatters.FormatterOptions) (string, error) {
	headers := []string{"Entity Type", "Start", "End", "Score", "Confidence Level", "Source", "Text"}
	if options.Verbose {
		headers = append(headers, "Recognizer")
	}

	rows := []string{strings.Join(headers, ",")}
	for _, r := range results {
		rows = append(rows, f.createCSVRow(r, options))
	}
	return strings.Join(rows, "\n"), nil
}

// createCSVRow creates a CSV row for a result
func (f *Formatter) createCSVRow(r detector.Result, options formatters.FormatterOptions) string {
	row := []string{
		f.escapeCSVField(r.EntityType),
		fmt.Sprintf("%d", r.Start),
		fmt.Sprintf("%d", r.End),
		fmt.Sprintf("%.2f", r.Score),
		shared.GetConfidenceLevel(r.Score),
		f.escapeCSVField(string(r.Source)),
		f.escapeCSVField(r.Text),
	}
	if options.Verbose {
		row = append(row, f.escapeCSVField(r.Recognizer))
	}
	return strings.Join(row, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.ContainsAny(field, ",\"\n\r") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// sanitizeFormulaInjection prefixes fields a spreadsheet would evaluate as a formula
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	switch field[0] {
	case '=', '+', '-', '@':
		return "'" + field
	}
	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
