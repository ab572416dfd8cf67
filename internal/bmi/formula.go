// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"encoding/json"
	"math"
	"strconv"
)

// Result is a computed BMI. Value keeps full precision; Display is Value
// rounded to one fractional digit.
type Result struct {
	Value    float64  `json:"bmi_value"`
	Display  string   `json:"bmi"`
	Category Category `json:"category"`
}

// MarshalJSON writes bmi_value as null when Value is not finite. Extreme
// but positive inputs can overflow the formula to +Inf.
func (r Result) MarshalJSON() ([]byte, error) {
	var value *float64
	if !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0) {
		value = &r.Value
	}
	return json.Marshal(struct {
		Value    *float64 `json:"bmi_value"`
		Display  string   `json:"bmi"`
		Category Category `json:"category"`
	}{value, r.Display, r.Category})
}

// Compute returns the BMI for a height in meters and a weight in kilograms.
// Both must be positive; Validate guarantees that.
func Compute(heightMeters, weightKg float64) Result {
	v := weightKg / (heightMeters * heightMeters)
	return Result{
		Value:    v,
		Display:  FormatValue(v),
		Category: Classify(v),
	}
}

// FormatValue renders v with exactly one fractional digit, rounding halves
// away from zero. strconv rounds exact halves to even, so those are handled
// here: with one digit, a float64 is an exact half only when v*4 is an odd
// integer (x.25 or x.75).
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	if q := v * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		n := math.Floor(math.Abs(v)*10) + 1
		return strconv.FormatFloat(math.Copysign(n/10, v), 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
