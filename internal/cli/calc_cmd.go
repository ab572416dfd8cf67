// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// calc_cmd.go - One-shot BMI calculation.

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/jeranaias/bmicalc-tui/internal/bmi"
	"github.com/jeranaias/bmicalc-tui/internal/ui/styles"
)

// HandleCalc validates the height and weight from args, computes the BMI and
// prints it. An invalid measurement prints the fixed validation message and
// returns the *bmi.ValidationError.
//
// Output formats:
//
//	default   styled BMI and category block
//	--quiet   "23.1 Normal"
//	--json    envelope with CalcData
func HandleCalc(args Args, logger *slog.Logger) error {
	calc := bmi.NewCalculator(bmi.WithLogger(logger))
	calc.SetHeightText(args.Height)
	calc.SetWeightText(args.Weight)

	err := OutputJSON(stdout, args.JSON, CmdCalc.String(), func() (interface{}, error) {
		if err := calc.Calculate(); err != nil {
			return nil, err
		}
		return newCalcData(calc), nil
	})
	if err != nil || args.JSON {
		return err
	}

	result, _ := calc.Result()
	if args.Quiet {
		fmt.Fprintf(stdout, "%s %s\n", result.Display, result.Category)
		return nil
	}
	printResult(stdout, result)
	return nil
}

// newCalcData builds the JSON payload from a calculator holding a result.
// The echoed inputs are the parsed values, so they are always valid numbers.
func newCalcData(calc *bmi.Calculator) CalcData {
	result, _ := calc.Result()
	heightCm, _ := bmi.ParseDecimal(calc.HeightText())
	weightKg, _ := bmi.ParseDecimal(calc.WeightText())
	return CalcData{
		HeightCm: heightCm,
		WeightKg: weightKg,
		BMI:      result.Display,
		BMIValue: finite(result.Value),
		Category: result.Category,
	}
}

// printResult writes the human-readable result block.
func printResult(w io.Writer, result bmi.Result) {
	fmt.Fprintln(w, TitleStyle.Render("BMI Calculator"))
	fmt.Fprintln(w, RenderSeparator(24))
	fmt.Fprintf(w, "%s%s\n", RenderLabel("BMI"), ValueStyle.Bold(true).Render(result.Display))
	fmt.Fprintf(w, "%s%s\n", RenderLabel("Category"), styles.RenderCategory(result.Category))
	if bands := bmi.Bands(); int(result.Category) < len(bands) {
		fmt.Fprintf(w, "%s%s\n", RenderLabel("Range"), DimStyle.Render(bands[result.Category].Label()))
	}
}
