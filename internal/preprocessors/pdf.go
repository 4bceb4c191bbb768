// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ledongthuc/pdf"
)

// MaxPDFPages bounds the pages read from one document
const MaxPDFPages = 50

// ExtractPDFText returns the text of a PDF document, pages separated by a
// blank line and form field values appended
func ExtractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filepath.Clean(filePath))
	if err != nil {
		return "", errors.Wrap(err, "error opening PDF")
	}
	defer f.Close()

	pageCount := min(r.NumPage(), MaxPDFPages)

	var pages []string
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := extractTextWithProperSpacing(p)
		if err != nil {
			return "", errors.Wrapf(err, "page %d", i)
		}
		if text = cleanTextPreservingStructure(text); text != "" {
			pages = append(pages, text)
		}
	}

	text := strings.Join(pages, "\n\n")
	if form := extractFormData(r); form != "" {
		if text != "" {
			text += "\n\n"
		}
		text += form
	}
	return text, nil
}

// extractFormData lists AcroForm field names and values, one per line
func extractFormData(r *pdf.Reader) string {
	root := r.Trailer().Key("Root")
	if root.IsNull() {
		return ""
	}
	fields := root.Key("AcroForm").Key("Fields")
	if fields.Kind() != pdf.Array {
		return ""
	}

	var lines []string
	for i := 0; i < fields.Len(); i++ {
		name, value := extractFieldNameValue(fields.Index(i))
		if name != "" && value != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", name, value))
		}
	}
	return strings.Join(lines, "\n")
}

// extractFieldNameValue reads T and V, falling back to DV
func extractFieldNameValue(field pdf.Value) (string, string) {
	if field.Kind() != pdf.Dict {
		return "", ""
	}

	var name string
	if t := field.Key("T"); t.Kind() == pdf.String {
		name = t.Text()
	}

	value := fieldText(field.Key("V"))
	if value == "" {
		value = fieldText(field.Key("DV"))
	}
	return name, value
}

func fieldText(v pdf.Value) string {
	switch v.Kind() {
	case pdf.String:
		return v.Text()
	case pdf.Name:
		return v.Name()
	}
	return ""
}

// extractTextWithProperSpacing rebuilds the page row by row, falling back
// to plain text when rows are unavailable
func extractTextWithProperSpacing(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return p.GetPlainText(nil)
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}

	// PDF Y grows upwards
	slices.SortStableFunc(sorted, func(a, b *pdf.Row) int {
		ya, yb := getAverageY(a.Content), getAverageY(b.Content)
		switch {
		case ya > yb:
			return -1
		case ya < yb:
			return 1
		}
		return 0
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		if rowText := reconstructRowText(row.Content); strings.TrimSpace(rowText) != "" {
			buf.WriteString(rowText)
			buf.WriteString("\n")
		}
	}
	return buf.String(), nil
}

func getAverageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, e := range elements {
		total += e.Y
	}
	return total / float64(len(elements))
}

// reconstructRowText joins a row left to right, inserting a space where the
// gap to the next element exceeds a fifth of the font size
func reconstructRowText(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := slices.Clone(elements)
	slices.SortStableFunc(sorted, func(a, b pdf.Text) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})

	var buf bytes.Buffer
	for i, e := range sorted {
		buf.WriteString(e.S)
		if i == len(sorted)-1 {
			break
		}

		fontSize := e.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap := sorted[i+1].X - (e.X + e.W); gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return buf.String()
}

// cleanTextPreservingStructure trims lines, drops empty ones and collapses
// runs of spaces and tabs
func cleanTextPreservingStructure(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.Join(strings.FieldsFunc(line, isHorizontalSpace), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
