// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package currency validates currency-amount candidates: a recognized marker
// (symbol or 3-letter code) around a number with optional thousands grouping
// and an optional 2-digit fraction.
package currency

import (
	"regexp"
	"strings"

	"fieldscan/internal/detector"
	"fieldscan/internal/patterns"
)

// Validator implements the detector.Validator rule chain for currency
// amounts. The marker matchers come from the pattern library so new codes can
// be added by configuration.
type Validator struct {
	markerPrefix *regexp.Regexp
	markerSuffix *regexp.Regexp
	markerStrip  *regexp.Regexp
	digitsOnly   *regexp.Regexp
}

// NewValidator creates a currency Validator over the library's marker tables.
func NewValidator(lib *patterns.Library) *Validator {
	return &Validator{
		markerPrefix: lib.CurrencyMarkerPrefix,
		markerSuffix: lib.CurrencyMarkerSuffix,
		markerStrip:  lib.CurrencyMarkerStrip,
		digitsOnly:   regexp.MustCompile(`^\d+$`),
	}
}

// Kind implements detector.Validator.
func (v *Validator) Kind() detector.Kind { return detector.KindCurrency }

// Validate requires a marker prefix or suffix, then checks the numeric part:
// an optional fraction of exactly 2 digits, an all-digit integer part once
// commas are removed, and correct thousands grouping when commas are present.
func (v *Validator) Validate(candidate string) detector.Verdict {
	s := strings.TrimSpace(candidate)

	if !v.markerPrefix.MatchString(s) && !v.markerSuffix.MatchString(s) {
		return detector.Reject(detector.ReasonMissingCurrencyMarker,
			"Invalid: Missing currency marker")
	}

	numeric := strings.TrimSpace(v.markerStrip.ReplaceAllString(s, ""))

	intPart := numeric
	if before, after, found := strings.Cut(numeric, "."); found {
		intPart = before
		if len(after) != 2 || !v.digitsOnly.MatchString(after) {
			return detector.Reject(detector.ReasonBadDecimalDigits,
				"Invalid: Decimal part must have exactly 2 digits")
		}
	}

	if !v.digitsOnly.MatchString(strings.ReplaceAll(intPart, ",", "")) {
		return detector.Reject(detector.ReasonNonDigitInteger,
			"Invalid: Contains non-digit characters in integer part")
	}

	// Thousands grouping: first group 1-3 digits, every later group
	// exactly 3.
	groups := strings.Split(intPart, ",")
	if len(groups) > 1 {
		if len(groups[0]) > 3 {
			return detector.Reject(detector.ReasonBadCommaGrouping,
				"Invalid: Incorrect comma placement in thousands")
		}
		for _, g := range groups[1:] {
			if len(g) != 3 {
				return detector.Reject(detector.ReasonBadCommaGrouping,
					"Invalid: Incorrect comma placement in thousands")
			}
		}
	}

	return detector.Accept("Valid currency amount")
}
