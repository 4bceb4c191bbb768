// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"pii-mask/internal/detector"
)

// ErrUnsupportedFormat is returned by Export for an unregistered format name
var ErrUnsupportedFormat = errors.New("unsupported format")

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	NoColor bool // Whether to disable colored output
	Verbose bool // Whether to include the recognizer of each result
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders the detection results in the formatter's output format
	Format(results []detector.Result, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format (e.g., ".json", ".txt", ".csv")
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Export formats results with the named formatter
func (r *Registry) Export(format string, results []detector.Result, options FormatterOptions) (string, error) {
	formatter, exists := r.Get(format)
	if !exists {
		return "", errors.WithHintf(
			errors.Wrapf(ErrUnsupportedFormat, "%q", format),
			"available formats: %s", strings.Join(r.List(), ", "),
		)
	}
	return formatter.Format(results, options)
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export formats results with a formatter from the default registry
func Export(format string, results []detector.Result, options FormatterOptions) (string, error) {
	return DefaultRegistry.Export(format, results, options)
}
