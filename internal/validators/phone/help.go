// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "fieldscan/internal/help"

// GetCheckInfo returns standardized information about the phone check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "PHONE",
		ShortDescription: "Validates 10-digit phone numbers with optional country code",
		DetailedDescription: `The Phone check extracts number runs shaped like a 3-3-4 digit phone number
with flexible separators, an optionally parenthesized area code, and an
optional country-code prefix of 1-3 digits (with or without a leading +).

Validation strips every non-digit character, treats digits beyond ten as a
country code (keeping the last ten), and requires exactly ten remaining.
Candidates written with parentheses must match (DDD) DDD-DDDD with optional
space, dot, or dash separators.

Candidates whose full digit run is 16 long are handed off to the credit card
check instead of being reported here; international numbering plans beyond
the 10-digit scheme are not supported.`,
		Patterns: []string{
			"(DDD) DDD-DDDD with flexible separators",
			"DDD-DDD-DDDD, DDD.DDD.DDDD, DDD DDD DDDD",
			"+C[CC] prefix followed by any of the above",
		},
		Verdicts: []string{
			"Valid phone number",
			"Invalid: Must have exactly 10 digits (excluding country code)",
			"Invalid: Area code parentheses incorrect",
		},
	}
}
