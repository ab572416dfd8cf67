// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"fmt"
	"math"
	"strings"
)

// Category is a BMI band. The zero value is Underweight; categories are
// ordered by increasing BMI.
type Category int

const (
	Underweight Category = iota
	Normal
	Overweight
	Obese
)

// String returns the display label of the category.
func (c Category) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case Normal:
		return "Normal"
	case Overweight:
		return "Overweight"
	case Obese:
		return "Obese"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the category as its label (used by JSON output).
func (c Category) MarshalText() ([]byte, error) {
	if c < Underweight || c > Obese {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// Band is a half-open BMI interval [Lower, Upper).
type Band struct {
	Category Category
	Lower    float64
	Upper    float64
}

// Contains reports whether v falls inside the band.
func (b Band) Contains(v float64) bool {
	return v >= b.Lower && (v < b.Upper || math.IsInf(b.Upper, 1))
}

// Label renders the band bounds, e.g. "18.5 - 25" or ">= 30".
func (b Band) Label() string {
	switch {
	case math.IsInf(b.Lower, -1):
		return "< " + FormatBound(b.Upper)
	case math.IsInf(b.Upper, 1):
		return ">= " + FormatBound(b.Lower)
	default:
		return FormatBound(b.Lower) + " - " + FormatBound(b.Upper)
	}
}

// FormatBound formats a band threshold without trailing zeros.
func FormatBound(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", v), "0"), ".")
}

// Band thresholds. Each is the inclusive lower bound of the next band.
const (
	NormalThreshold     = 18.5
	OverweightThreshold = 25.0
	ObeseThreshold      = 30.0
)

var bands = []Band{
	{Category: Underweight, Lower: math.Inf(-1), Upper: NormalThreshold},
	{Category: Normal, Lower: NormalThreshold, Upper: OverweightThreshold},
	{Category: Overweight, Lower: OverweightThreshold, Upper: ObeseThreshold},
	{Category: Obese, Lower: ObeseThreshold, Upper: math.Inf(1)},
}

// Bands returns a copy of the band table in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify maps a BMI value to its category. Values at a threshold belong to
// the higher band.
func Classify(v float64) Category {
	switch {
	case v < NormalThreshold:
		return Underweight
	case v < OverweightThreshold:
		return Normal
	case v < ObeseThreshold:
		return Overweight
	default:
		return Obese
	}
}
