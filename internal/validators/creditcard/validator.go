// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package creditcard validates credit-card-number candidates and tags the
// likely issuer network from a prefix/length rule table. There is no Luhn or
// other checksum here: this is a heuristic classifier, not a payment
// validator.
package creditcard

import (
	"regexp"

	"fieldscan/internal/detector"
	"fieldscan/internal/patterns"
)

// Validator implements the detector.Validator rule chain for card numbers.
type Validator struct {
	separators *regexp.Regexp
	digitsOnly *regexp.Regexp
	issuers    []patterns.IssuerRule
}

// NewValidator creates a card Validator using the issuer table from the given
// pattern library.
func NewValidator(lib *patterns.Library) *Validator {
	return &Validator{
		separators: regexp.MustCompile(`[\s-]`),
		digitsOnly: regexp.MustCompile(`^\d+$`),
		issuers:    lib.IssuerRules,
	}
}

// Kind implements detector.Validator.
func (v *Validator) Kind() detector.Kind { return detector.KindCreditCard }

// Validate strips separators from the candidate and applies the rule chain:
// digits only, 13-16 of them, not a single repeated digit. Survivors are
// tagged with the first matching issuer rule, or reported as plausible with
// an unknown issuer.
func (v *Validator) Validate(candidate string) detector.Verdict {
	clean := v.separators.ReplaceAllString(candidate, "")

	if !v.digitsOnly.MatchString(clean) {
		return detector.Reject(detector.ReasonNonDigitCharacters,
			"Invalid: Contains nondigit characters")
	}

	if len(clean) < 13 || len(clean) > 16 {
		return detector.Reject(detector.ReasonLengthOutOfRange,
			"Invalid: Must be 13–16 digits long")
	}

	if isRepeatedSequence(clean) {
		return detector.Reject(detector.ReasonRepeatedDigitSequence,
			"Invalid: Repeated digit sequence (unlikely to be real card)")
	}

	for _, rule := range v.issuers {
		if rule.Matches(clean) {
			return detector.Accept("Valid credit card number (Issuer: " + rule.Name + ")")
		}
	}
	return detector.Accept("Valid credit card number (Issuer: Unknown but plausible)")
}

// isRepeatedSequence reports whether every digit equals the first one, like
// 0000000000000000.
func isRepeatedSequence(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
