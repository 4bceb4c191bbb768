// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nlp

import (
	"github.com/cockroachdb/errors"

	"pii-mask/internal/config"
	"pii-mask/internal/observability"
	"pii-mask/internal/resilience"
)

// NewProvider builds the provider selected by cfg. Options apply to the
// sidecar client only.
func NewProvider(cfg config.NLPConfig, observer *observability.StandardObserver, opts ...SidecarOption) (Provider, error) {
	switch cfg.Provider {
	case "", config.ProviderNone:
		return NopProvider{}, nil
	case config.ProviderFile:
		if cfg.ArtifactsFile == "" {
			return nil, errors.New("nlp: artifacts file not set")
		}
		return FileProvider{Path: cfg.ArtifactsFile}, nil
	case config.ProviderSidecar:
		if cfg.URL == "" {
			return nil, errors.New("nlp: sidecar url not set")
		}
		retry := resilience.DefaultRetryConfig()
		retry.MaxRetries = cfg.Retries
		opts = append([]SidecarOption{WithTimeout(cfg.Timeout), WithRetry(retry), WithObserver(observer)}, opts...)
		return NewSidecarClient(cfg.URL, opts...), nil
	}
	return nil, errors.Newf("nlp: unknown provider %q", cfg.Provider)
}
