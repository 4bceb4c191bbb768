// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// DebugObserver prints an indented trace of analysis steps
type DebugObserver struct {
	*StandardObserver
	writer io.Writer

	mu     sync.Mutex
	indent int
}

// NewDebugObserver creates a debug observer with step-by-step logging
func NewDebugObserver(writer io.Writer) *DebugObserver {
	d := &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
		writer:           writer,
	}
	d.StandardObserver.DebugObserver = d
	return d
}

// StartStep begins a step and returns the function that closes it
func (d *DebugObserver) StartStep(component, step, target string) func(success bool, details string) {
	start := time.Now()

	d.mu.Lock()
	d.printf("%s> %s: %s (%s)\n", d.prefix(), component, step, target)
	d.indent++
	d.mu.Unlock()

	return func(success bool, details string) {
		d.mu.Lock()
		defer d.mu.Unlock()

		d.indent--
		status := "done"
		if !success {
			status = "failed"
		}
		d.printf("%s< %s: %s %s (%dms) %s\n", d.prefix(), component, step, status, time.Since(start).Milliseconds(), details)
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.printf("%s  - %s: %s\n", d.prefix(), component, detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.printf("%s  # %s: %s = %v\n", d.prefix(), component, metric, value)
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", max(0, d.indent))
}

func (d *DebugObserver) printf(format string, args ...any) {
	if d.writer != nil {
		fmt.Fprintf(d.writer, format, args...)
	}
}
