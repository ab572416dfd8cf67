// json_output.go - JSON output support for scripting.
//
// Every command accepts --json and answers with the same envelope so
// callers can parse success and failure uniformly.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jeranaias/bmicalc-tui/internal/bmi"
)

// JSONResponse is the standardized response format for all CLI commands.
type JSONResponse struct {
	// Success indicates whether the command completed successfully
	Success bool `json:"success"`

	// Data contains the command-specific response data
	Data interface{} `json:"data"`

	// Error contains the error message if Success is false, null otherwise
	Error *string `json:"error"`

	// Timestamp is the ISO8601 timestamp when the response was generated
	Timestamp string `json:"timestamp"`

	// Command is the command that was executed
	Command string `json:"command,omitempty"`
}

// NewJSONResponse creates a new successful JSON response.
func NewJSONResponse(command string, data interface{}) *JSONResponse {
	return &JSONResponse{
		Success:   true,
		Data:      data,
		Error:     nil,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// NewJSONErrorResponse creates a new error JSON response.
func NewJSONErrorResponse(command string, err error) *JSONResponse {
	errStr := err.Error()
	return &JSONResponse{
		Success:   false,
		Data:      nil,
		Error:     &errStr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Command:   command,
	}
}

// Print writes the indented JSON response to w.
func (r *JSONResponse) Print(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// String returns the JSON response as a string.
func (r *JSONResponse) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"success":false,"error":"failed to marshal response: %s","timestamp":"%s"}`,
			err.Error(), time.Now().UTC().Format(time.RFC3339))
	}
	return string(data)
}

// OutputJSON runs handler and, in JSON mode, prints its data or error as an
// envelope. The handler's error is always returned. Data that cannot be
// encoded is reported as an error envelope.
func OutputJSON(w io.Writer, jsonMode bool, command string, handler func() (interface{}, error)) error {
	data, err := handler()
	if !jsonMode {
		return err
	}
	if err != nil {
		NewJSONErrorResponse(command, err).Print(w)
		return err
	}
	if _, err := json.Marshal(data); err != nil {
		err = NewCommandError(command, "encode", "output could not be encoded as JSON", err)
		NewJSONErrorResponse(command, err).Print(w)
		return err
	}
	return NewJSONResponse(command, data).Print(w)
}

// =============================================================================
// COMMAND-SPECIFIC DATA STRUCTURES FOR JSON OUTPUT
// =============================================================================

// CalcData is the JSON payload of a successful calc command. BMIValue is
// null when the inputs overflow the formula.
type CalcData struct {
	HeightCm float64      `json:"height_cm"`
	WeightKg float64      `json:"weight_kg"`
	BMI      string       `json:"bmi"`
	BMIValue *float64     `json:"bmi_value"`
	Category bmi.Category `json:"category"`
}

// BandData describes one category band. Upper is null for the open band.
type BandData struct {
	Category string   `json:"category"`
	Lower    *float64 `json:"lower"`
	Upper    *float64 `json:"upper"`
	Range    string   `json:"range"`
}

// BandsData is the JSON payload of the bands command.
type BandsData struct {
	Bands []BandData `json:"bands"`
}

// ConfigValueData is the JSON payload of config get and config set.
type ConfigValueData struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// ConfigPathData is the JSON payload of config path and config init.
type ConfigPathData struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// VersionData is the JSON payload of the version command.
type VersionData struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
}

// newBandsData converts the band table for JSON output.
func newBandsData() BandsData {
	var out BandsData
	for _, b := range bmi.Bands() {
		out.Bands = append(out.Bands, BandData{
			Category: b.Category.String(),
			Lower:    finite(b.Lower),
			Upper:    finite(b.Upper),
			Range:    b.Label(),
		})
	}
	return out
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
