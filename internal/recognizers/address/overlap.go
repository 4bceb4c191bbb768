// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"cmp"
	"slices"

	"pii-mask/internal/detector"
)

// MaxOverlapRatio is the share of a candidate that may overlap an accepted
// result before the candidate is dropped. The comparison is strict.
const MaxOverlapRatio = 0.8

// ResolveOverlaps greedily keeps the highest scoring candidates. Candidates
// are walked by score descending, then start ascending, and one is dropped
// when it duplicates, is contained in, or mostly overlaps an accepted result.
func ResolveOverlaps(candidates []detector.Result) []detector.Result {
	if len(candidates) == 0 {
		return candidates
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b detector.Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Start, b.Start)
	})

	accepted := make([]detector.Result, 0, len(sorted))
	for _, c := range sorted {
		if !shadowed(c, accepted) {
			accepted = append(accepted, c)
		}
	}
	return accepted
}

// shadowed reports whether any accepted result covers the candidate
func shadowed(c detector.Result, accepted []detector.Result) bool {
	for _, a := range accepted {
		if c.Start == a.Start && c.End == a.End {
			return true
		}
		if a.Start <= c.Start && c.End <= a.End {
			return true
		}
		if overlap := Overlap(a, c); overlap > 0 && float64(overlap)/float64(c.Len()) > MaxOverlapRatio {
			return true
		}
	}
	return false
}

// Overlap returns the number of characters shared by two spans
func Overlap(a, b detector.Result) int {
	return max(0, min(a.End, b.End)-max(a.Start, b.Start))
}
