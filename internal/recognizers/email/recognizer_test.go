// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pii-mask/internal/detector"
)

func TestRecognizer_ComplexAddress(t *testing.T) {
	text := "問い合わせは.user.name+tag-123@sub.example-domain.co.jpまで。"

	results, err := MustNew().Analyze(text, nil, nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, detector.EntityEmail, results[0].EntityType)
	assert.Equal(t, 0.9, results[0].Score)
	assert.Equal(t, ".user.name+tag-123@sub.example-domain.co.jp", results[0].Text)
	assert.Equal(t, 6, results[0].Start)
}

func TestRecognizer_Multiple(t *testing.T) {
	results, err := MustNew().Analyze("a@example.com と b.c@example.org", nil, nil)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "a@example.com", results[0].Text)
	assert.Equal(t, "b.c@example.org", results[1].Text)
}

func TestRecognizer_NoMatch(t *testing.T) {
	results, err := MustNew().Analyze("メールは user@localhost です", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
