// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"pii-mask/internal/detector"
	"pii-mask/internal/formatters"
)

// Response represents the top-level structure for JSON/YAML output
type Response struct {
	Count   int      `json:"count" yaml:"count"`
	Results []Result `json:"results" yaml:"results"`
}

// Result represents a single detection in JSON/YAML format
type Result struct {
	EntityType      string  `json:"entity_type" yaml:"entity_type"`
	Start           int     `json:"start" yaml:"start"`
	End             int     `json:"end" yaml:"end"`
	Score           float64 `json:"score" yaml:"score"`
	ConfidenceLevel string  `json:"confidence_level" yaml:"confidence_level"`
	Source          string  `json:"source" yaml:"source"`
	Text            string  `json:"text" yaml:"text"`
	Recognizer      string  `json:"recognizer,omitempty" yaml:"recognizer,omitempty"`
}

// GetConfidenceLevel buckets a score in [0, 1]
func GetConfidenceLevel(score float64) string {
	switch {
	case score >= 0.9:
		return "HIGH"
	case score >= 0.6:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// ConvertResults builds the JSON/YAML structure. Results is never nil so
// both encoders emit an empty list.
func ConvertResults(results []detector.Result, options formatters.FormatterOptions) Response {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		item := Result{
			EntityType:      r.EntityType,
			Start:           r.Start,
			End:             r.End,
			Score:           r.Score,
			ConfidenceLevel: GetConfidenceLevel(r.Score),
			Source:          string(r.Source),
			Text:            r.Text,
		}
		if options.Verbose {
			item.Recognizer = r.Recognizer
		}
		out = append(out, item)
	}
	return Response{Count: len(out), Results: out}
}
