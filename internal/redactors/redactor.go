// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"pii-mask/internal/config"
)

// Operator names
const (
	OperatorReplace = "replace"
	OperatorRedact  = "redact"
	OperatorMask    = "mask"
	OperatorHash    = "hash"
	OperatorKeep    = "keep"
)

// Strategy rewrites the text of one recognized span
type Strategy interface {
	// Name returns the operator name the strategy is registered under
	Name() string

	// Redact returns the replacement for original
	Redact(original, entityType string, op config.OperatorConfig) (string, error)
}

// DefaultStrategies returns one strategy per built-in operator
func DefaultStrategies() []Strategy {
	return []Strategy{
		ReplaceStrategy{},
		RedactStrategy{},
		MaskStrategy{},
		HashStrategy{},
		KeepStrategy{},
	}
}
