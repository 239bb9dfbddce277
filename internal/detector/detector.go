// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "fmt"

// Kind identifies one of the five structured data types the scanner knows
// about. The enumeration is closed: every pipeline, rule table, and formatter
// keys off these values.
type Kind string

const (
	KindEmail      Kind = "EMAIL"
	KindTime       Kind = "TIME"
	KindCreditCard Kind = "CREDIT_CARD"
	KindCurrency   Kind = "CURRENCY"
	KindPhone      Kind = "PHONE"
)

// AllKinds returns the five kinds in canonical scan order.
func AllKinds() []Kind {
	return []Kind{KindEmail, KindTime, KindCreditCard, KindCurrency, KindPhone}
}

// Title returns the human-readable name used in report section headers.
func (k Kind) Title() string {
	switch k {
	case KindEmail:
		return "Email"
	case KindTime:
		return "Time"
	case KindCreditCard:
		return "Credit Card"
	case KindCurrency:
		return "Currency"
	case KindPhone:
		return "Phone Number"
	default:
		return string(k)
	}
}

// Reason is a machine-readable code for a validation failure. The set of
// reasons per kind is a closed vocabulary; consumers may rely on it.
type Reason string

const (
	// Email
	ReasonMissingOrMultipleAt       Reason = "missing_or_multiple_at"
	ReasonIllegalUsernameCharacters Reason = "illegal_username_characters"
	ReasonDomainMissingDot          Reason = "domain_missing_dot"
	ReasonIllegalDomainLabel        Reason = "illegal_domain_label"
	ReasonInvalidTopLevelDomain     Reason = "invalid_top_level_domain"

	// Time
	ReasonPatternMismatch  Reason = "pattern_mismatch"
	ReasonMinuteOutOfRange Reason = "minute_out_of_range"
	ReasonHourOutOfRange12 Reason = "hour_out_of_range_12h"
	ReasonHourOutOfRange24 Reason = "hour_out_of_range_24h"

	// Credit card
	ReasonNonDigitCharacters    Reason = "non_digit_characters"
	ReasonLengthOutOfRange      Reason = "length_out_of_range"
	ReasonRepeatedDigitSequence Reason = "repeated_digit_sequence"

	// Currency
	ReasonMissingCurrencyMarker Reason = "missing_currency_marker"
	ReasonBadDecimalDigits      Reason = "bad_decimal_digits"
	ReasonNonDigitInteger       Reason = "non_digit_integer"
	ReasonBadCommaGrouping      Reason = "bad_comma_grouping"

	// Phone
	ReasonWrongDigitCount         Reason = "wrong_digit_count"
	ReasonMalformedAreaCodeParens Reason = "malformed_area_code_parens"
)

// Verdict is the classification of a single candidate. For valid candidates
// Message carries the descriptive text (including the normalized form or
// detected issuer where applicable); for invalid candidates it carries the
// "Invalid: <reason>" text and Reason carries the machine code. The message
// vocabulary is a stable contract for consumers that parse it.
type Verdict struct {
	Valid   bool   `json:"valid" yaml:"valid"`
	Reason  Reason `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Accept builds a valid Verdict with the given descriptive message.
func Accept(message string) Verdict {
	return Verdict{Valid: true, Message: message}
}

// Reject builds an invalid Verdict with the given reason code and message.
func Reject(reason Reason, message string) Verdict {
	return Verdict{Valid: false, Reason: reason, Message: message}
}

// Rejectf builds an invalid Verdict with a formatted message.
func Rejectf(reason Reason, format string, args ...any) Verdict {
	return Verdict{Valid: false, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Result pairs a candidate with its verdict for one kind.
type Result struct {
	Kind      Kind    `json:"kind" yaml:"kind"`
	Candidate string  `json:"candidate" yaml:"candidate"`
	Verdict   Verdict `json:"verdict" yaml:"verdict"`
}

// Line renders the result in the canonical "<candidate>: <verdict-text>"
// report form.
func (r Result) Line() string {
	return fmt.Sprintf("%s: %s", r.Candidate, r.Verdict.Message)
}

// Validator is one strict rule chain. Validate must be a pure function of the
// candidate string: no I/O, no state, same input always yields the same
// Verdict.
type Validator interface {
	Kind() Kind
	Validate(candidate string) Verdict
}
