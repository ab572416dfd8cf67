// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package bmi implements the Body Mass Index calculator independent of any
rendering technology.

# Key Types

  - Category: one of Underweight, Normal, Overweight, Obese
  - Validation: outcome of checking the raw height/weight text
  - Result: computed BMI with its display string and category
  - Calculator: view model holding the raw text, the error slot and the result slot

# Bands

	bmi < 18.5         Underweight
	18.5 <= bmi < 25   Normal
	25 <= bmi < 30     Overweight
	bmi >= 30          Obese

Classification always uses the unrounded value; only the display string is
rounded to one fractional digit.

# Usage

	calc := bmi.NewCalculator()
	calc.SetHeightText("180")
	calc.SetWeightText("75")
	if err := calc.Calculate(); err != nil {
	    fmt.Println(calc.ErrorMessage())
	}
	res, _ := calc.Result()
	fmt.Println(res.Display, res.Category) // 23.1 Normal
*/
package bmi
