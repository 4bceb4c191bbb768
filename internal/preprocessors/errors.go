// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocessors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidEncoding marks input that is not valid UTF-8
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")

	// ErrFileTooLarge marks input over the configured size limit
	ErrFileTooLarge = errors.New("input exceeds size limit")
)

// ProcessingError represents an error that occurred while reading an input
type ProcessingError struct {
	FilePath string
	FileType string
	Reason   string
	Err      error
}

// Error implements the error interface
func (pe *ProcessingError) Error() string {
	if pe.Err != nil {
		return fmt.Sprintf("processing failed for %s (%s): %s: %v",
			pe.FilePath, pe.FileType, pe.Reason, pe.Err)
	}
	return fmt.Sprintf("processing failed for %s (%s): %s",
		pe.FilePath, pe.FileType, pe.Reason)
}

// Unwrap returns the underlying error
func (pe *ProcessingError) Unwrap() error {
	return pe.Err
}

// NewProcessingError creates a new processing error
func NewProcessingError(filePath, fileType, reason string, err error) *ProcessingError {
	return &ProcessingError{
		FilePath: filePath,
		FileType: fileType,
		Reason:   reason,
		Err:      err,
	}
}
