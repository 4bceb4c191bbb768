// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"pii-mask/internal/config"
)

// ReplaceStrategy replaces the span with new_value, or <ENTITY_TYPE>
type ReplaceStrategy struct{}

// Name implements Strategy
func (ReplaceStrategy) Name() string { return OperatorReplace }

// Redact implements Strategy
func (ReplaceStrategy) Redact(_, entityType string, op config.OperatorConfig) (string, error) {
	value, err := op.StringParam("new_value", "<"+entityType+">")
	if err != nil {
		return "", errors.Mark(err, ErrInvalidOperatorParams)
	}
	return value, nil
}

// RedactStrategy removes the span
type RedactStrategy struct{}

// Name implements Strategy
func (RedactStrategy) Name() string { return OperatorRedact }

// Redact implements Strategy
func (RedactStrategy) Redact(string, string, config.OperatorConfig) (string, error) {
	return "", nil
}

// KeepStrategy leaves the span unchanged
type KeepStrategy struct{}

// Name implements Strategy
func (KeepStrategy) Name() string { return OperatorKeep }

// Redact implements Strategy
func (KeepStrategy) Redact(original, _ string, _ config.OperatorConfig) (string, error) {
	return original, nil
}

// MaskStrategy overwrites chars_to_mask characters with masking_char,
// counting from the start, or from the end when from_end is set.
// chars_to_mask defaults to the whole span.
type MaskStrategy struct{}

// Name implements Strategy
func (MaskStrategy) Name() string { return OperatorMask }

// Redact implements Strategy
func (MaskStrategy) Redact(original, _ string, op config.OperatorConfig) (string, error) {
	length := utf8.RuneCountInString(original)

	char, err := op.StringParam("masking_char", "*")
	if err != nil {
		return "", errors.Mark(err, ErrInvalidOperatorParams)
	}
	if utf8.RuneCountInString(char) != 1 {
		return "", errors.Mark(errors.Newf("masking_char %q must be a single character", char), ErrInvalidOperatorParams)
	}

	n, err := op.IntParam("chars_to_mask", length)
	if err != nil {
		return "", errors.Mark(err, ErrInvalidOperatorParams)
	}
	if n < 0 {
		return "", errors.Mark(errors.Newf("chars_to_mask %d is negative", n), ErrInvalidOperatorParams)
	}
	n = min(n, length)

	fromEnd, err := op.BoolParam("from_end", false)
	if err != nil {
		return "", errors.Mark(err, ErrInvalidOperatorParams)
	}

	runes := []rune(original)
	mask := strings.Repeat(char, n)
	if fromEnd {
		return string(runes[:length-n]) + mask, nil
	}
	return mask + string(runes[n:]), nil
}

// HashStrategy replaces the span with the hex digest of its UTF-8 bytes
type HashStrategy struct{}

// Name implements Strategy
func (HashStrategy) Name() string { return OperatorHash }

// Redact implements Strategy
func (HashStrategy) Redact(original, _ string, op config.OperatorConfig) (string, error) {
	hashType, err := op.StringParam("hash_type", "sha256")
	if err != nil {
		return "", errors.Mark(err, ErrInvalidOperatorParams)
	}

	switch hashType {
	case "sha256":
		sum := sha256.Sum256([]byte(original))
		return hex.EncodeToString(sum[:]), nil
	case "sha512":
		sum := sha512.Sum512([]byte(original))
		return hex.EncodeToString(sum[:]), nil
	}
	return "", errors.Mark(errors.Newf("hash_type %q not supported", hashType), ErrInvalidOperatorParams)
}
