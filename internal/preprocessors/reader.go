// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns CLI inputs into the text handed to the
// analyzer.
package preprocessors

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// StdinPath selects standard input
const StdinPath = "-"

// DefaultMaxSize bounds text inputs
const DefaultMaxSize int64 = 50 * 1024 * 1024 // 50MB

// Reader reads text inputs
type Reader struct {
	stdin   io.Reader
	maxSize int64
}

// ReaderOption configures a Reader
type ReaderOption func(*Reader)

// WithStdin replaces standard input
func WithStdin(r io.Reader) ReaderOption {
	return func(rd *Reader) {
		rd.stdin = r
	}
}

// WithMaxSize sets the size limit in bytes; zero or less disables it
func WithMaxSize(n int64) ReaderOption {
	return func(rd *Reader) {
		rd.maxSize = n
	}
}

// NewReader creates a reader over os.Stdin with the default size limit
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{stdin: os.Stdin, maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadText reads path with a default Reader
func ReadText(path string) (string, error) {
	return NewReader().ReadText(path)
}

// ReadText returns the text of path. An empty path or "-" reads standard
// input, a .pdf file is converted to text and anything else must be UTF-8.
func (r *Reader) ReadText(path string) (string, error) {
	if path == "" || path == StdinPath {
		return r.readUTF8("<stdin>", r.stdin)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := ExtractPDFText(path)
		if err != nil {
			return "", NewProcessingError(path, "pdf", "text extraction failed", err)
		}
		return text, nil
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", NewProcessingError(path, "text", "cannot open file", err)
	}
	defer f.Close()

	return r.readUTF8(path, f)
}

func (r *Reader) readUTF8(name string, src io.Reader) (string, error) {
	limited := src
	if r.maxSize > 0 {
		// One extra byte detects oversized input
		limited = io.LimitReader(src, r.maxSize+1)
	}

	data, err := io.ReadAll(limited)
	if err != nil {
		return "", NewProcessingError(name, "text", "read failed", err)
	}
	if r.maxSize > 0 && int64(len(data)) > r.maxSize {
		return "", NewProcessingError(name, "text", "too large",
			errors.Wrapf(ErrFileTooLarge, "limit %d bytes", r.maxSize))
	}
	if !utf8.Valid(data) {
		return "", NewProcessingError(name, "text", "decode failed", ErrInvalidEncoding)
	}
	return string(data), nil
}
