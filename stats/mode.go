// Package stats computes the descriptive statistics shown for a filtered
// trip set. Every function here is pure; printing lives in package report.
package stats

import (
	"math"
	"sort"
)

// Count is one entry of a frequency breakdown.
type Count[T comparable] struct {
	Value T
	N     int
}

// ValueCounts tallies values, most frequent first. Ties keep the order in
// which values were first seen.
func ValueCounts[T comparable](values []T) []Count[T] {
	pos := make(map[T]int, 16)
	var out []Count[T]
	for _, v := range values {
		if i, ok := pos[v]; ok {
			out[i].N++
			continue
		}
		pos[v] = len(out)
		out = append(out, Count[T]{Value: v, N: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].N > out[j].N })
	return out
}

// Mode returns the most frequent value. Among tied values the one seen first
// wins. ok is false for an empty input.
func Mode[T comparable](values []T) (mode T, ok bool) {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return mode, false
	}
	return counts[0].Value, true
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
