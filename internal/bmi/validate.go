// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Display messages for each failed validation outcome.
const (
	MsgMissingField      = "Please Enter Both Height and Weight"
	MsgInvalidHeight     = "Height must be a valid number"
	MsgNonPositiveHeight = "Height must be a positive number"
	MsgInvalidWeight     = "Weight must be a valid number"
	MsgNonPositiveWeight = "Weight must be a positive number"
)

// Sentinel errors matched by ValidationError via errors.Is.
var (
	ErrMissingField      = errors.New("missing field")
	ErrInvalidHeight     = errors.New("invalid height")
	ErrNonPositiveHeight = errors.New("non-positive height")
	ErrInvalidWeight     = errors.New("invalid weight")
	ErrNonPositiveWeight = errors.New("non-positive weight")
)

// Outcome is the result of validating raw measurement text.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeMissingField
	OutcomeInvalidHeight
	OutcomeNonPositiveHeight
	OutcomeInvalidWeight
	OutcomeNonPositiveWeight
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeMissingField:
		return "missing_field"
	case OutcomeInvalidHeight:
		return "invalid_height"
	case OutcomeNonPositiveHeight:
		return "non_positive_height"
	case OutcomeInvalidWeight:
		return "invalid_weight"
	case OutcomeNonPositiveWeight:
		return "non_positive_weight"
	default:
		return "unknown"
	}
}

// Message returns the fixed display message for a failed outcome, or "" for OK.
func (o Outcome) Message() string {
	switch o {
	case OutcomeMissingField:
		return MsgMissingField
	case OutcomeInvalidHeight:
		return MsgInvalidHeight
	case OutcomeNonPositiveHeight:
		return MsgNonPositiveHeight
	case OutcomeInvalidWeight:
		return MsgInvalidWeight
	case OutcomeNonPositiveWeight:
		return MsgNonPositiveWeight
	default:
		return ""
	}
}

func (o Outcome) sentinel() error {
	switch o {
	case OutcomeMissingField:
		return ErrMissingField
	case OutcomeInvalidHeight:
		return ErrInvalidHeight
	case OutcomeNonPositiveHeight:
		return ErrNonPositiveHeight
	case OutcomeInvalidWeight:
		return ErrInvalidWeight
	case OutcomeNonPositiveWeight:
		return ErrNonPositiveWeight
	default:
		return nil
	}
}

// ValidationError describes why a measurement was rejected. Error returns the
// user-facing message.
type ValidationError struct {
	Outcome Outcome
	Field   string // "height", "weight", or "" for a missing field
	Value   string // raw text that failed, if any
}

func (e *ValidationError) Error() string {
	return e.Outcome.Message()
}

// Is matches the sentinel error of the outcome.
func (e *ValidationError) Is(target error) bool {
	return target != nil && target == e.Outcome.sentinel()
}

// Validation is the outcome of Validate. HeightMeters and WeightKg are set
// only when Outcome is OutcomeOK.
type Validation struct {
	Outcome      Outcome
	HeightMeters float64
	WeightKg     float64

	field string
	value string
}

// OK reports whether both inputs passed.
func (v Validation) OK() bool {
	return v.Outcome == OutcomeOK
}

// Err returns a *ValidationError for failed outcomes and nil for OK.
func (v Validation) Err() error {
	if v.OK() {
		return nil
	}
	return &ValidationError{Outcome: v.Outcome, Field: v.field, Value: v.value}
}

// decimalPattern accepts plain decimal literals only: no hex, no
// underscores, no NaN or Inf spellings.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseDecimal parses text as a finite decimal number. Surrounding whitespace
// is ignored.
func ParseDecimal(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Validate checks the raw height (cm) and weight (kg) text. Checks run in a
// fixed order and the first failure wins: missing field, height format,
// height positivity, weight format, weight positivity.
func Validate(heightText, weightText string) Validation {
	if heightText == "" || weightText == "" {
		return Validation{Outcome: OutcomeMissingField}
	}

	heightCm, ok := ParseDecimal(heightText)
	if !ok {
		return Validation{Outcome: OutcomeInvalidHeight, field: "height", value: heightText}
	}
	heightMeters := heightCm / 100
	if heightMeters <= 0 {
		return Validation{Outcome: OutcomeNonPositiveHeight, field: "height", value: heightText}
	}

	weightKg, ok := ParseDecimal(weightText)
	if !ok {
		return Validation{Outcome: OutcomeInvalidWeight, field: "weight", value: weightText}
	}
	if weightKg <= 0 {
		return Validation{Outcome: OutcomeNonPositiveWeight, field: "weight", value: weightText}
	}

	return Validation{Outcome: OutcomeOK, HeightMeters: heightMeters, WeightKg: weightKg}
}
