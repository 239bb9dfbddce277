// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import "fieldscan/internal/help"

// GetCheckInfo returns standardized information about the email check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "EMAIL",
		ShortDescription: "Validates email-address candidates against structural rules",
		DetailedDescription: `The Email check extracts email-shaped substrings and validates them
structurally. Extraction runs two passes: standard user@domain.tld runs, and
bare dotted runs (like "jane.doe") that may be emails missing their @ symbol.
Purely numeric dotted runs and runs that start with a digit segment are not
nominated, which keeps version numbers and numeric IDs out of the results.

Validation requires exactly one @, a username built from letters, digits,
dots, dashes, and underscores, a domain containing at least one dot, clean
domain labels, and an alphabetic top-level domain of at least two characters.
No DNS or MX lookup is performed; this is a formatting check only.`,
		Patterns: []string{
			"user@domain.tld runs (word characters, dots, dashes)",
			"bare dotted runs that may be emails missing the @ (e.g. jane.doe)",
		},
		Verdicts: []string{
			"Valid email",
			"Invalid: Missing or multiple @ symbols",
			"Invalid: Username contains illegal characters or spaces",
			"Invalid: Domain missing '.'",
			"Invalid: Domain name part '<label>' contains illegal characters",
			"Invalid: Top-level domain '<tld>' is invalid",
		},
	}
}
