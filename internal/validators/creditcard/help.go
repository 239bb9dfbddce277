// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import "fieldscan/internal/help"

// GetCheckInfo returns standardized information about the credit card check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "CREDIT_CARD",
		ShortDescription: "Validates card-number candidates and tags the likely issuer",
		DetailedDescription: `The Credit Card check extracts card-shaped digit runs (four groups of four
separated by spaces or dashes, or a bare run of 13-16 digits), strips the
separators, and validates the result: digits only, 13-16 of them, and not a
single repeated digit.

Surviving numbers are tagged with an issuer from a prefix/length rule table:

- Visa: starts with 4, 13 or 16 digits
- American Express: starts with 34 or 37, 15 digits
- MasterCard: starts 51-55 or 2221-2720, 16 digits
- Discover: starts with 6011, 65, or 644-649, 16 digits

A number that matches no rule but has a valid shape is still reported valid
with an unknown issuer. No Luhn or other checksum is applied.`,
		Patterns: []string{
			"4 groups of 4 digits with optional space or dash separators",
			"bare runs of 13-16 digits",
		},
		Verdicts: []string{
			"Valid credit card number (Issuer: <name>)",
			"Valid credit card number (Issuer: Unknown but plausible)",
			"Invalid: Contains nondigit characters",
			"Invalid: Must be 13–16 digits long",
			"Invalid: Repeated digit sequence (unlikely to be real card)",
		},
	}
}
