// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidPattern marks a pattern that failed to compile or carries a
	// score outside [0, 1]. It is only returned at construction time.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidArtifactOffset marks an NLP artifact whose offsets do not fit
	// the analysed text
	ErrInvalidArtifactOffset = errors.New("invalid artifact offset")
)

// Check verifies that the artifact span lies inside a text of textLen characters
func (a Artifact) Check(textLen int) error {
	if a.Start < 0 || a.End < a.Start || a.End > textLen {
		return errors.Mark(
			errors.Newf("artifact %s span [%d, %d) outside text of length %d", a.Label, a.Start, a.End, textLen),
			ErrInvalidArtifactOffset,
		)
	}
	return nil
}

// Validate checks every entity of the artifacts against the text length
func (a *Artifacts) Validate(textLen int) error {
	if a == nil {
		return nil
	}
	for i, e := range a.Entities {
		if err := e.Check(textLen); err != nil {
			return errors.Wrapf(err, "entity %d", i)
		}
	}
	return nil
}
