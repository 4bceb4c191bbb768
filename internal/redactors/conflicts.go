// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"cmp"
	"slices"

	"pii-mask/internal/detector"
)

// ResolveConflicts prepares analyzer results for rewriting. A result
// contained in one with a higher or equal score is dropped, identical spans
// keep the higher score, and partial overlaps are trimmed so each span
// starts where the previous one ends. The output is ordered by start.
func ResolveConflicts(results []detector.Result) []detector.Result {
	if len(results) == 0 {
		return nil
	}

	byScore := slices.Clone(results)
	slices.SortStableFunc(byScore, func(a, b detector.Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.End, a.End)
	})

	kept := make([]detector.Result, 0, len(byScore))
	for _, r := range byScore {
		if !containedIn(r, kept) {
			kept = append(kept, r)
		}
	}

	slices.SortStableFunc(kept, func(a, b detector.Result) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.End, a.End)
	})

	out := kept[:0]
	prevEnd := 0
	for _, r := range kept {
		if r.Start < prevEnd {
			r.Start = prevEnd
		}
		if r.Start >= r.End {
			continue
		}
		out = append(out, r)
		prevEnd = r.End
	}
	return out
}

func containedIn(r detector.Result, kept []detector.Result) bool {
	for _, k := range kept {
		if k.Start <= r.Start && r.End <= k.End {
			return true
		}
	}
	return false
}
