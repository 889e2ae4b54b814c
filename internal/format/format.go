// ============================================================================
// meinRECHENWERK (mRW) - Wissenschaftlicher Rechner
// ============================================================================
//
// Package:     format
// Description: Display formatting for calculation results
// Author:      Mike Stoffels with Claude
// Created:     2026-08-19
// License:     MIT
// ============================================================================

package format

import (
	"math"
	"strconv"
	"strings"
)

// MaxFractionDigits is the number of fractional digits shown before
// trailing zeros are trimmed
const MaxFractionDigits = 10

// Number renders a result for display: thousands separators in the
// integer part, at most ten fractional digits with trailing zeros
// trimmed, and the words Infinity and NaN for non-finite values.
//
//	1234.5   → "1,234.5"
//	2.0      → "2"
//	1.0/3.0  → "0.3333333333"
func Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	s := strconv.FormatFloat(v, 'f', MaxFractionDigits, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	grouped := groupThousands(intPart)
	if negative {
		grouped = "-" + grouped
	}
	if fracPart == "" {
		return grouped
	}
	return grouped + "." + fracPart
}

// groupThousands inserts commas every three digits from the right
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
