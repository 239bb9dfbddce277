// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package currency

import "fieldscan/internal/help"

// GetCheckInfo returns standardized information about the currency check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "CURRENCY",
		ShortDescription: "Validates currency amounts with a symbol or code marker",
		DetailedDescription: `The Currency check extracts numbers carrying a currency marker, either a
symbol ($, £, €) before the amount or a 3-letter code (RWF, UGX, USD, EUR,
GBP, KSH, KES by default; extensible via configuration) before or after it,
matched case-insensitively.

Validation strips the marker and checks the numeric part: a fraction, when
present, must be exactly 2 digits; the integer part must be all digits once
commas are removed; and when commas are present the first group must be 1-3
digits with every subsequent group exactly 3 (thousands grouping).`,
		Patterns: []string{
			"symbol-prefixed amounts (e.g. $1,234.56, €500)",
			"code-prefixed or code-suffixed amounts (e.g. USD 100, 12.50 RWF)",
		},
		Verdicts: []string{
			"Valid currency amount",
			"Invalid: Missing currency marker",
			"Invalid: Decimal part must have exactly 2 digits",
			"Invalid: Contains non-digit characters in integer part",
			"Invalid: Incorrect comma placement in thousands",
		},
	}
}
