// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package clocktime

import "fieldscan/internal/help"

// GetCheckInfo returns standardized information about the time check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "TIME",
		ShortDescription: "Validates clock times in 12-hour or 24-hour form",
		DetailedDescription: `The Time check extracts H:MM runs with an optional AM/PM suffix and
validates the hour and minute ranges. An AM/PM suffix selects the 12-hour
interpretation (hours 1-12, zero disallowed); without a suffix the value is
read as 24-hour time (hours 0-23). Minutes must be 0-59 in both forms.

Valid times are echoed back normalized: both fields zero-padded and any
suffix uppercased.`,
		Patterns: []string{
			"H:MM or HH:MM (e.g. 9:05, 14:30)",
			"H:MM AM/PM with optional space, case-insensitive (e.g. 2:30 PM, 12:59am)",
		},
		Verdicts: []string{
			"Valid 12-hour time (normalized: HH:MM AM|PM)",
			"Valid 24-hour time (normalized: HH:MM)",
			"Invalid: Doesn't match H:MM or H:MM AM/PM pattern",
			"Invalid: Minute out of range (0-59)",
			"Invalid: Hour out of range for 12-hour format (1-12)",
			"Invalid: Hour out of range for 24-hour format (0-23)",
		},
	}
}
