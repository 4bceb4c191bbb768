// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nlp supplies the entity artifacts consumed by the person and
// address recognizers. Providers never interpret the text themselves; they
// only relay spans computed elsewhere.
package nlp

import (
	"context"
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"pii-mask/internal/detector"
)

// Provider returns the NLP artifacts for a text. A nil result with a nil
// error means no artifacts are available.
type Provider interface {
	Process(ctx context.Context, text, language string) (*detector.Artifacts, error)
}

// NopProvider never returns artifacts
type NopProvider struct{}

// Process implements Provider
func (NopProvider) Process(context.Context, string, string) (*detector.Artifacts, error) {
	return nil, nil
}

// StaticProvider returns the same artifacts for every text
type StaticProvider struct {
	Artifacts *detector.Artifacts
}

// Process implements Provider
func (p StaticProvider) Process(_ context.Context, text, _ string) (*detector.Artifacts, error) {
	if err := Validate(p.Artifacts, text); err != nil {
		return nil, err
	}
	return p.Artifacts, nil
}

// FileProvider reads pre-computed artifacts from a JSON file of the form
// {"entities":[{"label":"PERSON","start":0,"end":4}]}
type FileProvider struct {
	Path string
}

// Process implements Provider
func (p FileProvider) Process(ctx context.Context, text, _ string) (*detector.Artifacts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	artifacts, err := LoadArtifacts(p.Path)
	if err != nil {
		return nil, err
	}
	if err := Validate(artifacts, text); err != nil {
		return nil, errors.Wrapf(err, "artifacts file %s", p.Path)
	}
	return artifacts, nil
}

// LoadArtifacts decodes an artifacts JSON file
func LoadArtifacts(path string) (*detector.Artifacts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read artifacts file %s", path)
	}

	var artifacts detector.Artifacts
	if err := json.Unmarshal(data, &artifacts); err != nil {
		return nil, errors.Wrapf(err, "failed to parse artifacts file %s", path)
	}
	return &artifacts, nil
}

// Validate checks that every artifact fits text, measured in characters
func Validate(artifacts *detector.Artifacts, text string) error {
	return artifacts.Validate(detector.NewText(text).Len())
}
