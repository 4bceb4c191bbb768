// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"pii-mask/internal/detector"
	"pii-mask/internal/formatters"
	"pii-mask/internal/formatters/shared"
)

// NoResults is printed when nothing was detected
const NoResults = "No PII detected."

// Formatter implements text-based output formatting
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []detector.Result, options formatters.FormatterOptions) (string, error) {
	if len(results) == 0 {
		return NoResults, nil
	}

	colors := newPalette(options.NoColor)

	var builder strings.Builder
	builder.WriteString(colors.header.Sprintf("Detected %d PII entities:", len(results)))
	builder.WriteString("\n")
	for _, r := range results {
		f.appendLine(&builder, r, colors, options)
	}
	return strings.TrimSuffix(builder.String(), "\n"), nil
}

// appendLine writes one result as "Type: X, Text: 'Y', Score: 0.80, Position: s-e"
func (f *Formatter) appendLine(builder *strings.Builder, r detector.Result, colors palette, options formatters.FormatterOptions) {
	levelColor := colors.forLevel(shared.GetConfidenceLevel(r.Score))

	fmt.Fprintf(builder, "Type: %s, Text: '%s', Score: %.2f, Position: %d-%d",
		levelColor.Sprint(r.EntityType),
		strings.ReplaceAll(r.Text, "\n", `\n`),
		r.Score, r.Start, r.End)

	if options.Verbose {
		fmt.Fprintf(builder, ", Source: %s, Recognizer: %s", r.Source, colors.detail.Sprint(r.Recognizer))
	}
	builder.WriteString("\n")
}

type palette struct {
	high, medium, low *color.Color
	header, detail    *color.Color
}

// newPalette builds the colors for one Format call; disabling them does not
// touch the package-wide color.NoColor switch
func newPalette(noColor bool) palette {
	p := palette{
		high:   color.New(color.FgRed),
		medium: color.New(color.FgYellow),
		low:    color.New(color.FgGreen),
		header: color.New(color.FgWhite, color.Bold),
		detail: color.New(color.FgCyan),
	}
	if noColor {
		for _, c := range []*color.Color{p.high, p.medium, p.low, p.header, p.detail} {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) forLevel(level string) *color.Color {
	switch level {
	case "HIGH":
		return p.high
	case "MEDIUM":
		return p.medium
	default:
		return p.low
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
