// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bmi

import (
	"log/slog"
)

// =============================================================================
// DISPLAY STATE
// =============================================================================

// Display is the visible state of a Calculator.
type Display int

const (
	// DisplayIdle: nothing calculated yet, no error.
	DisplayIdle Display = iota
	// DisplayError: an error is shown and there is no result.
	DisplayError
	// DisplayResult: a result is shown and there is no error.
	DisplayResult
	// DisplayErrorWithStaleResult: a failed calculation left the previous
	// result on screen next to the new error.
	DisplayErrorWithStaleResult
)

func (d Display) String() string {
	switch d {
	case DisplayIdle:
		return "idle"
	case DisplayError:
		return "error"
	case DisplayResult:
		return "result"
	case DisplayErrorWithStaleResult:
		return "error_with_stale_result"
	default:
		return "unknown"
	}
}

// StaleResultPolicy decides what a failed calculation does to a previous result.
type StaleResultPolicy int

const (
	// StaleResultKeep leaves the previous result visible beside the error.
	StaleResultKeep StaleResultPolicy = iota
	// StaleResultClear drops the previous result when a calculation fails.
	StaleResultClear
)

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator is the view model behind the form: two raw text fields, one
// error slot and one result slot. It is owned by a single event loop and is
// not safe for concurrent use.
type Calculator struct {
	heightText string
	weightText string

	result   *Result
	errorMsg string

	policy StaleResultPolicy
	logger *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithStaleResultPolicy sets the policy applied when a calculation fails.
func WithStaleResultPolicy(p StaleResultPolicy) Option {
	return func(c *Calculator) { c.policy = p }
}

// WithLogger sets the logger used for calculation events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCalculator creates an empty Calculator.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		policy: StaleResultKeep,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetStaleResultPolicy changes the policy for subsequent calculations.
func (c *Calculator) SetStaleResultPolicy(p StaleResultPolicy) {
	c.policy = p
}

// StaleResultPolicy returns the current policy.
func (c *Calculator) StaleResultPolicy() StaleResultPolicy {
	return c.policy
}

// SetHeightText stores the height text verbatim. Error and result are untouched.
func (c *Calculator) SetHeightText(s string) {
	c.heightText = s
}

// SetWeightText stores the weight text verbatim. Error and result are untouched.
func (c *Calculator) SetWeightText(s string) {
	c.weightText = s
}

// HeightText returns the raw height text.
func (c *Calculator) HeightText() string {
	return c.heightText
}

// WeightText returns the raw weight text.
func (c *Calculator) WeightText() string {
	return c.weightText
}

// Calculate validates the current text and, on success, replaces the result
// and clears the error. On failure the error message is set, the result is
// handled per the stale result policy, and the validation error is returned.
func (c *Calculator) Calculate() error {
	v := Validate(c.heightText, c.weightText)
	if !v.OK() {
		c.errorMsg = v.Outcome.Message()
		if c.policy == StaleResultClear {
			c.result = nil
		}
		c.logger.Debug("bmi calculation rejected",
			"outcome", v.Outcome.String(),
			"height_text", c.heightText,
			"weight_text", c.weightText)
		return v.Err()
	}

	res := Compute(v.HeightMeters, v.WeightKg)
	c.result = &res
	c.errorMsg = ""
	c.logger.Debug("bmi calculated",
		"height_m", v.HeightMeters,
		"weight_kg", v.WeightKg,
		"bmi", res.Display,
		"category", res.Category.String())
	return nil
}

// Result returns the current result, if any.
func (c *Calculator) Result() (Result, bool) {
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

// ErrorMessage returns the current error message, or "" when none is set.
func (c *Calculator) ErrorMessage() string {
	return c.errorMsg
}

// Display returns the visible state.
func (c *Calculator) Display() Display {
	switch {
	case c.errorMsg != "" && c.result != nil:
		return DisplayErrorWithStaleResult
	case c.errorMsg != "":
		return DisplayError
	case c.result != nil:
		return DisplayResult
	default:
		return DisplayIdle
	}
}
