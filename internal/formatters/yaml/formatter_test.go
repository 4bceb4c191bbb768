// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "gopkg.in/yaml.v3"

	"pii-mask/internal/detector"
	"pii-mask/internal/formatters"
	"pii-mask/internal/formatters/shared"
)

func TestFormatter_Format(t *testing.T) {
	results := []detector.Result{{
		EntityType: detector.EntityEmail,
		Start:      0,
		End:        13,
		Score:      0.9,
		Source:     detector.SourcePattern,
		Text:       "a@example.com",
	}}

	out, err := NewFormatter().Format(results, formatters.FormatterOptions{})
	require.NoError(t, err)

	var decoded shared.Response
	require.NoError(t, yamlv3.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.Count)
	assert.Equal(t, "EMAIL_ADDRESS", decoded.Results[0].EntityType)
	assert.Equal(t, "HIGH", decoded.Results[0].ConfidenceLevel)
}

func TestFormatter_Empty(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Equal(t, "count: 0\nresults: []\n", out)
}
