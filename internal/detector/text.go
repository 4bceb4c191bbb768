// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Text indexes a string by character so regexp byte offsets can be reported
// as rune offsets. A Text is immutable.
type Text struct {
	s string

	// offsets[i] is the byte offset of rune i; the last entry is len(s)
	offsets []int
}

// NewText builds the rune index for s
func NewText(s string) *Text {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return &Text{s: s, offsets: offsets}
}

// String returns the underlying string
func (t *Text) String() string {
	return t.s
}

// Len returns the length in characters
func (t *Text) Len() int {
	return len(t.offsets) - 1
}

// RuneOffset converts a byte offset on a rune boundary into a rune offset
func (t *Text) RuneOffset(byteOffset int) int {
	return sort.SearchInts(t.offsets, byteOffset)
}

// ByteOffset converts a rune offset into a byte offset, clamping to the text
func (t *Text) ByteOffset(runeOffset int) int {
	switch {
	case runeOffset <= 0:
		return 0
	case runeOffset >= len(t.offsets):
		return len(t.s)
	}
	return t.offsets[runeOffset]
}

// Slice returns the characters in [start, end)
func (t *Text) Slice(start, end int) string {
	if start >= end {
		return ""
	}
	return t.s[t.ByteOffset(start):t.ByteOffset(end)]
}

// From returns the text starting at character start
func (t *Text) From(start int) string {
	return t.s[t.ByteOffset(start):]
}

// Index returns the rune offset of the first occurrence of sub at or after
// character from, or -1
func (t *Text) Index(sub string, from int) int {
	i := strings.Index(t.From(from), sub)
	if i < 0 {
		return -1
	}
	return t.RuneOffset(t.ByteOffset(from) + i)
}

// LastIndex returns the rune offset of the last occurrence of sub that ends
// at or before character end, or -1
func (t *Text) LastIndex(sub string, end int) int {
	i := strings.LastIndex(t.s[:t.ByteOffset(end)], sub)
	if i < 0 {
		return -1
	}
	return t.RuneOffset(i)
}

// HasPrefixAt reports whether the text continues with prefix at character pos
func (t *Text) HasPrefixAt(pos int, prefix string) bool {
	if pos < 0 || pos > t.Len() {
		return false
	}
	return strings.HasPrefix(t.From(pos), prefix)
}
