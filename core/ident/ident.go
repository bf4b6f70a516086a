// Package ident allocates sequential, prefix-scoped record identifiers.
//
// Identifiers are a type prefix followed by a decimal counter, e.g. "m007" for
// members, "e012" for events, or "jz4" for a manually added journal paper.
// Next scans the identifiers already present in a collection and returns the
// one following the highest counter for the requested prefix.
package ident

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MemberPrefix prefixes member identifiers.
	MemberPrefix = "m"
	// EventPrefix prefixes event identifiers.
	EventPrefix = "e"
	// PaddedWidth is the zero padding used by the member and event collections.
	PaddedWidth = 3
)

// Next returns prefix + (highest numeric suffix among ids starting with prefix) + 1.
// With width > 0 the number is zero padded to that many digits.
// Identifiers whose suffix is not purely numeric are ignored.
func Next(existing []string, prefix string, width int) string {
	next := MaxSuffix(existing, prefix) + 1
	if width > 0 {
		return fmt.Sprintf("%s%0*d", prefix, width, next)
	}
	return prefix + strconv.FormatUint(next, 10)
}

// MaxSuffix returns the highest numeric suffix among ids with the given prefix, or 0.
func MaxSuffix(existing []string, prefix string) uint64 {
	var max uint64
	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.ParseUint(id[len(prefix):], 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
