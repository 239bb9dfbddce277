// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package clocktime validates clock-time candidates in H:MM form with an
// optional AM/PM suffix, normalizing valid ones to zero-padded output.
package clocktime

import (
	"regexp"
	"strconv"
	"strings"

	"fieldscan/internal/detector"
)

// Validator implements the detector.Validator rule chain for clock times.
type Validator struct {
	shape *regexp.Regexp
}

// NewValidator creates a clock-time Validator.
func NewValidator() *Validator {
	return &Validator{
		shape: regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`),
	}
}

// Kind implements detector.Validator.
func (v *Validator) Kind() detector.Kind { return detector.KindTime }

// Validate parses the candidate against H:MM with optional AM/PM. A suffix
// selects the 12-hour interpretation (hour 1-12, zero disallowed); no suffix
// selects 24-hour (hour 0-23). Minutes are 0-59 in both.
func (v *Validator) Validate(candidate string) detector.Verdict {
	m := v.shape.FindStringSubmatch(strings.TrimSpace(candidate))
	if m == nil {
		return detector.Reject(detector.ReasonPatternMismatch,
			"Invalid: Doesn't match H:MM or H:MM AM/PM pattern")
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	suffix := m[3]

	if minute < 0 || minute > 59 {
		return detector.Reject(detector.ReasonMinuteOutOfRange,
			"Invalid: Minute out of range (0-59)")
	}

	if suffix != "" {
		if hour < 1 || hour > 12 {
			return detector.Reject(detector.ReasonHourOutOfRange12,
				"Invalid: Hour out of range for 12-hour format (1-12)")
		}
		return detector.Accept(
			"Valid 12-hour time (normalized: " + pad(hour) + ":" + pad(minute) + " " + strings.ToUpper(suffix) + ")")
	}

	if hour < 0 || hour > 23 {
		return detector.Reject(detector.ReasonHourOutOfRange24,
			"Invalid: Hour out of range for 24-hour format (0-23)")
	}
	return detector.Accept(
		"Valid 24-hour time (normalized: " + pad(hour) + ":" + pad(minute) + ")")
}

func pad(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
