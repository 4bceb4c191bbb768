// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pii-mask/internal/detector"
)

func candidate(start, end int, score float64) detector.Result {
	return detector.Result{EntityType: detector.EntityAddress, Start: start, End: end, Score: score}
}

func TestResolveOverlaps(t *testing.T) {
	tests := []struct {
		name  string
		input []detector.Result
		want  []detector.Result
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "duplicate keeps higher score",
			input: []detector.Result{candidate(0, 10, 0.8), candidate(0, 10, 0.95)},
			want:  []detector.Result{candidate(0, 10, 0.95)},
		},
		{
			name:  "contained candidate dropped",
			input: []detector.Result{candidate(5, 8, 0.8), candidate(0, 20, 0.9)},
			want:  []detector.Result{candidate(0, 20, 0.9)},
		},
		{
			name:  "higher score inside lower score survives with it",
			input: []detector.Result{candidate(0, 20, 0.8), candidate(5, 8, 0.95)},
			want:  []detector.Result{candidate(5, 8, 0.95), candidate(0, 20, 0.8)},
		},
		{
			name:  "exactly eighty percent kept",
			input: []detector.Result{candidate(0, 10, 0.9), candidate(2, 12, 0.8)},
			want:  []detector.Result{candidate(0, 10, 0.9), candidate(2, 12, 0.8)},
		},
		{
			name:  "just over eighty percent dropped",
			input: []detector.Result{candidate(0, 10000, 0.9), candidate(1999, 11999, 0.8)},
			want:  []detector.Result{candidate(0, 10000, 0.9)},
		},
		{
			name:  "disjoint spans kept",
			input: []detector.Result{candidate(20, 30, 0.8), candidate(0, 10, 0.8)},
			want:  []detector.Result{candidate(0, 10, 0.8), candidate(20, 30, 0.8)},
		},
		{
			name:  "zero length outside every span kept",
			input: []detector.Result{candidate(0, 10, 0.8), candidate(15, 15, 0.7)},
			want:  []detector.Result{candidate(0, 10, 0.8), candidate(15, 15, 0.7)},
		},
		{
			name:  "zero length inside a span dropped",
			input: []detector.Result{candidate(0, 10, 0.8), candidate(4, 4, 0.7)},
			want:  []detector.Result{candidate(0, 10, 0.8)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOverlaps(tt.input))
		})
	}
}

func TestResolveOverlaps_TieBreakByStart(t *testing.T) {
	// with equal scores the earlier start is accepted first; the other
	// candidate is then contained and dropped
	got := ResolveOverlaps([]detector.Result{candidate(1, 10, 0.8), candidate(0, 10, 0.8)})
	assert.Equal(t, []detector.Result{candidate(0, 10, 0.8)}, got)
}

func TestResolveOverlaps_DoesNotModifyInput(t *testing.T) {
	input := []detector.Result{candidate(1, 10, 0.8), candidate(0, 10, 0.9)}
	ResolveOverlaps(input)
	assert.Equal(t, candidate(1, 10, 0.8), input[0])
}

func TestResolveOverlaps_IdempotentAndPairwise(t *testing.T) {
	input := []detector.Result{
		candidate(0, 15, 0.9), candidate(3, 18, 0.95), candidate(3, 18, 0.9),
		candidate(10, 30, 0.8), candidate(12, 14, 0.75), candidate(25, 40, 0.75),
		candidate(29, 31, 0.8), candidate(40, 50, 0.8), candidate(41, 52, 0.8),
	}

	once := ResolveOverlaps(input)
	assert.Equal(t, once, ResolveOverlaps(once))

	for i, a := range once {
		for _, b := range once[i+1:] {
			assert.False(t, a.Start == b.Start && a.End == b.End, "duplicate %v %v", a, b)
			assert.False(t, a.Start <= b.Start && b.End <= a.End, "%v contains %v", a, b)
			if b.Len() > 0 {
				assert.LessOrEqual(t, float64(Overlap(a, b))/float64(b.Len()), MaxOverlapRatio)
			}
		}
	}
}

func TestOverlap(t *testing.T) {
	assert.Equal(t, 5, Overlap(candidate(0, 10, 0), candidate(5, 20, 0)))
	assert.Equal(t, 0, Overlap(candidate(0, 10, 0), candidate(10, 20, 0)))
	assert.Equal(t, 0, Overlap(candidate(0, 10, 0), candidate(30, 40, 0)))
	assert.Equal(t, 3, Overlap(candidate(2, 5, 0), candidate(0, 10, 0)))
}
