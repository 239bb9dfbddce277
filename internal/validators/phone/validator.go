// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phone validates phone-number candidates against a 10-digit
// North-American-style scheme with an optional country-code prefix.
package phone

import (
	"regexp"
	"strings"

	"fieldscan/internal/detector"
)

// Validator implements the detector.Validator rule chain for phone numbers.
type Validator struct {
	nonDigit    *regexp.Regexp
	parensShape *regexp.Regexp
}

// NewValidator creates a phone Validator.
func NewValidator() *Validator {
	return &Validator{
		nonDigit:    regexp.MustCompile(`\D`),
		parensShape: regexp.MustCompile(`^\(\d{3}\)[\s.-]?\d{3}[\s.-]?\d{4}$`),
	}
}

// Kind implements detector.Validator.
func (v *Validator) Kind() detector.Kind { return detector.KindPhone }

// Validate strips non-digits, treats anything beyond 10 digits as a country
// code and keeps the last 10, then requires exactly 10. Candidates written
// with parentheses must match the (DDD) DDD-DDDD shape exactly.
func (v *Validator) Validate(candidate string) detector.Verdict {
	digits := v.nonDigit.ReplaceAllString(candidate, "")
	if len(digits) > 10 {
		digits = digits[len(digits)-10:]
	}

	if len(digits) != 10 {
		return detector.Reject(detector.ReasonWrongDigitCount,
			"Invalid: Must have exactly 10 digits (excluding country code)")
	}

	if strings.ContainsAny(candidate, "()") && !v.parensShape.MatchString(candidate) {
		return detector.Reject(detector.ReasonMalformedAreaCodeParens,
			"Invalid: Area code parentheses incorrect")
	}

	return detector.Accept("Valid phone number")
}
