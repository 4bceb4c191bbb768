// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrUnknownOperator is returned for an operator name with no strategy
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrInvalidOperatorParams marks operator parameters of the wrong type or range
	ErrInvalidOperatorParams = errors.New("invalid operator parameters")

	// ErrInvalidSpan marks a result whose offsets do not fit the text
	ErrInvalidSpan = errors.New("invalid result span")
)

// OperatorError reports which span an operator failed on
type OperatorError struct {
	// Operator is the operator name, e.g. "mask"
	Operator string

	// EntityType of the span being rewritten
	EntityType string

	// Start and End of the span in the input text
	Start int
	End   int

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (oe *OperatorError) Error() string {
	return fmt.Sprintf("operator %s on %s [%d, %d): %v", oe.Operator, oe.EntityType, oe.Start, oe.End, oe.Cause)
}

// Unwrap returns the underlying error for error unwrapping
func (oe *OperatorError) Unwrap() error {
	return oe.Cause
}
