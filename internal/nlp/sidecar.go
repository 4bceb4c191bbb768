// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"pii-mask/internal/detector"
	"pii-mask/internal/observability"
	"pii-mask/internal/resilience"
)

// DefaultTimeout bounds a single sidecar request
const DefaultTimeout = 10 * time.Second

// SidecarClient asks an NER sidecar for entity spans over HTTP. Connection
// failures and 429/502/503/504 answers are retried with backoff. When the
// sidecar stays unreachable or answers with another non-200 status it logs a
// warning and returns no artifacts, so pattern recognition still runs.
type SidecarClient struct {
	url      string
	model    string
	http     *http.Client
	retry    resilience.RetryConfig
	observer *observability.StandardObserver
}

// SidecarOption configures a SidecarClient
type SidecarOption func(*SidecarClient)

// WithTimeout sets the per-request timeout. The current HTTP client is
// copied, never modified.
func WithTimeout(d time.Duration) SidecarOption {
	return func(c *SidecarClient) {
		if d > 0 {
			h := *c.http
			h.Timeout = d
			c.http = &h
		}
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(h *http.Client) SidecarOption {
	return func(c *SidecarClient) {
		if h != nil {
			c.http = h
		}
	}
}

// WithRetry replaces the retry policy
func WithRetry(cfg resilience.RetryConfig) SidecarOption {
	return func(c *SidecarClient) {
		c.retry = cfg
	}
}

// WithModel names the model the sidecar should load
func WithModel(name string) SidecarOption {
	return func(c *SidecarClient) {
		c.model = name
	}
}

// WithObserver sets the observer used for warnings and timings
func WithObserver(o *observability.StandardObserver) SidecarOption {
	return func(c *SidecarClient) {
		if o != nil {
			c.observer = o
		}
	}
}

// NewSidecarClient creates a client for the sidecar at baseURL
// (e.g. "http://localhost:8001")
func NewSidecarClient(baseURL string, opts ...SidecarOption) *SidecarClient {
	c := &SidecarClient{
		url:      strings.TrimRight(baseURL, "/") + "/entities",
		http:     &http.Client{Timeout: DefaultTimeout},
		retry:    resilience.DefaultRetryConfig(),
		observer: observability.NewNopObserver(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type entitiesRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Model    string `json:"model,omitempty"`
}

type entitiesResponse struct {
	Entities []detector.Artifact `json:"entities"`
}

// Process implements Provider
func (c *SidecarClient) Process(ctx context.Context, text, language string) (*detector.Artifacts, error) {
	finish := c.observer.StartTiming("nlp_sidecar", "process", c.url)

	body, err := json.Marshal(entitiesRequest{Text: text, Language: language, Model: c.model})
	if err != nil {
		finish(false, nil)
		return nil, errors.Wrap(err, "ner: marshal")
	}

	retry := c.retry
	retry.OnRetry = func(attempt int, err error) {
		c.observer.Logger().Debug("retrying ner sidecar", zap.Int("attempt", attempt), zap.Error(err))
	}

	result, err := resilience.RetryWithResult(ctx, retry, func(ctx context.Context) (*entitiesResponse, error) {
		return c.post(ctx, body)
	})
	if err != nil {
		if ctx.Err() != nil {
			finish(false, nil)
			return nil, errors.Wrap(ctx.Err(), "ner: request")
		}

		var status *resilience.StatusError
		if errors.As(err, &status) {
			c.observer.Logger().Warn("ner sidecar returned unexpected status", zap.String("url", c.url), zap.Int("code", status.Code))
			finish(false, map[string]any{"degraded": true, "status": status.Code})
			return nil, nil
		}
		var permanent *resilience.ClassifiedError
		if errors.As(err, &permanent) && permanent.Type == resilience.ErrorTypePermanent {
			finish(false, nil)
			return nil, err
		}

		c.observer.Logger().Warn("ner sidecar unreachable, skipping NLP artifacts", zap.String("url", c.url), zap.Error(err))
		finish(false, map[string]any{"degraded": true})
		return nil, nil
	}

	artifacts := &detector.Artifacts{Entities: result.Entities}
	if err := Validate(artifacts, text); err != nil {
		finish(false, nil)
		return nil, errors.Wrap(err, "ner")
	}

	finish(true, map[string]any{"entities": len(result.Entities)})
	return artifacts, nil
}

// post sends one request. Transport failures are transient, non-200 answers
// are returned for classification and a malformed body is permanent.
func (c *SidecarClient) post(ctx context.Context, body []byte) (*entitiesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, resilience.NewPermanentError("ner: request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, resilience.NewTransientError("ner: request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &resilience.StatusError{Code: resp.StatusCode}
	}

	var result entitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, resilience.NewPermanentError("ner: decode", err)
	}
	return &result, nil
}
