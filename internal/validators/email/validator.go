// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package email validates email-address candidates. The rule chain requires
// exactly one @, a username drawn from the allowed character class, and a
// dotted domain whose final label is an alphabetic top-level domain.
package email

import (
	"regexp"
	"strings"

	"fieldscan/internal/detector"
)

// Validator implements the detector.Validator rule chain for email addresses.
type Validator struct {
	username *regexp.Regexp
	label    *regexp.Regexp
	tld      *regexp.Regexp
}

// NewValidator creates an email Validator with its rule patterns compiled
// once.
func NewValidator() *Validator {
	return &Validator{
		// Username: letters, digits, underscore, dot, dash.
		username: regexp.MustCompile(`^[\w.-]+$`),
		// Non-final domain labels: letters, digits, underscore, dash.
		label: regexp.MustCompile(`^[\w-]+$`),
		// Top-level domain: at least 2 alphabetic characters.
		tld: regexp.MustCompile(`^[a-zA-Z]{2,}$`),
	}
}

// Kind implements detector.Validator.
func (v *Validator) Kind() detector.Kind { return detector.KindEmail }

// Validate applies the email rule chain. The first failing rule determines
// the verdict.
func (v *Validator) Validate(candidate string) detector.Verdict {
	if strings.Count(candidate, "@") != 1 {
		return detector.Reject(detector.ReasonMissingOrMultipleAt,
			"Invalid: Missing or multiple @ symbols")
	}

	username, domain, _ := strings.Cut(candidate, "@")

	if !v.username.MatchString(username) {
		return detector.Reject(detector.ReasonIllegalUsernameCharacters,
			"Invalid: Username contains illegal characters or spaces")
	}

	if !strings.Contains(domain, ".") {
		return detector.Reject(detector.ReasonDomainMissingDot,
			"Invalid: Domain missing '.'")
	}

	labels := strings.Split(domain, ".")
	for _, part := range labels[:len(labels)-1] {
		if !v.label.MatchString(part) {
			return detector.Rejectf(detector.ReasonIllegalDomainLabel,
				"Invalid: Domain name part '%s' contains illegal characters", part)
		}
	}

	if last := labels[len(labels)-1]; !v.tld.MatchString(last) {
		return detector.Rejectf(detector.ReasonInvalidTopLevelDomain,
			"Invalid: Top-level domain '%s' is invalid", last)
	}

	return detector.Accept("Valid email")
}
