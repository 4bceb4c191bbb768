// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StandardObserver records timed operations of the analyzer, the NLP
// providers and the CLI as structured log lines
type StandardObserver struct {
	level         ObservabilityLevel
	logger        *zap.Logger
	DebugObserver *DebugObserver // Set when running in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer writing JSON records to writer
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		logger: newLogger(level, writer),
	}
}

// NewNopObserver creates an observer that records nothing
func NewNopObserver() *StandardObserver {
	return &StandardObserver{level: ObservabilityOff, logger: zap.NewNop()}
}

func newLogger(level ObservabilityLevel, writer io.Writer) *zap.Logger {
	if level == ObservabilityOff || writer == nil {
		return zap.NewNop()
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	threshold := zap.InfoLevel
	if level == ObservabilityDebug {
		threshold = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(writer), threshold))
}

// Level returns the configured level
func (o *StandardObserver) Level() ObservabilityLevel {
	return o.level
}

// Logger returns the underlying zap logger. It is never nil.
func (o *StandardObserver) Logger() *zap.Logger {
	if o == nil || o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, target string) func(success bool, metadata map[string]any) {
	start := time.Now()

	return func(success bool, metadata map[string]any) {
		o.LogOperation(StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			Target:     target,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation writes one operation record
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	if data.RequestID == "" {
		data.RequestID = uuid.NewString()
	}

	fields := []zap.Field{
		zap.String("component", data.Component),
		zap.String("operation", data.Operation),
		zap.String("request_id", data.RequestID),
		zap.Bool("success", data.Success),
	}
	if data.Target != "" {
		fields = append(fields, zap.String("target", data.Target))
	}
	if data.DurationMs > 0 {
		fields = append(fields, zap.Int64("duration_ms", data.DurationMs))
	}
	if data.Error != "" {
		fields = append(fields, zap.String("error", data.Error))
	}
	if data.ContentLength > 0 {
		fields = append(fields, zap.Int("content_length", data.ContentLength))
	}
	if data.ResultCount > 0 {
		fields = append(fields, zap.Int("result_count", data.ResultCount))
	}
	if len(data.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", data.Metadata))
	}

	if data.Success {
		o.logger.Info("operation", fields...)
	} else {
		o.logger.Warn("operation", fields...)
	}
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component     string         `json:"component"`
	Operation     string         `json:"operation"`
	RequestID     string         `json:"request_id"`
	Target        string         `json:"target,omitempty"`
	DurationMs    int64          `json:"duration_ms,omitempty"`
	Success       bool           `json:"success"`
	Error         string         `json:"error,omitempty"`
	ContentLength int            `json:"content_length,omitempty"`
	ResultCount   int            `json:"result_count,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}
