// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import (
	"testing"

	"fieldscan/internal/detector"
	"fieldscan/internal/patterns"
)

func TestValidate(t *testing.T) {
	v := NewValidator(patterns.Default())

	cases := []struct {
		name      string
		candidate string
		valid     bool
		reason    detector.Reason
		message   string
	}{
		{"visa 16", "4111111111111111", true, "", "Valid credit card number (Issuer: Visa)"},
		{"visa 13", "4111111111111", true, "", "Valid credit card number (Issuer: Visa)"},
		{"visa with spaces", "4111 1111 1111 1111", true, "", "Valid credit card number (Issuer: Visa)"},
		{"visa with dashes", "4111-1111-1111-1111", true, "", "Valid credit card number (Issuer: Visa)"},
		{"amex", "371449635398431", true, "", "Valid credit card number (Issuer: American Express)"},
		{"mastercard 51-55", "5555555555554444", true, "", "Valid credit card number (Issuer: MasterCard)"},
		{"mastercard 2-series", "2221000000000009", true, "", "Valid credit card number (Issuer: MasterCard)"},
		{"discover 6011", "6011000990139424", true, "", "Valid credit card number (Issuer: Discover)"},
		{"discover 65", "6500000000000002", true, "", "Valid credit card number (Issuer: Discover)"},
		{"discover 644-649", "6445000000000009", true, "", "Valid credit card number (Issuer: Discover)"},
		{"unknown issuer", "9111111111111111", true, "", "Valid credit card number (Issuer: Unknown but plausible)"},
		{"amex prefix wrong length", "3714496353984310", true, "", "Valid credit card number (Issuer: Unknown but plausible)"},
		{"letters in number", "4111x11111111111", false, detector.ReasonNonDigitCharacters, "Invalid: Contains nondigit characters"},
		{"12 digits", "411111111111", false, detector.ReasonLengthOutOfRange, "Invalid: Must be 13–16 digits long"},
		{"17 digits", "41111111111111111", false, detector.ReasonLengthOutOfRange, "Invalid: Must be 13–16 digits long"},
		{"repeated digits", "0000000000000000", false, detector.ReasonRepeatedDigitSequence, "Invalid: Repeated digit sequence (unlikely to be real card)"},
		{"repeated digits with separators", "1111 1111 1111 1111", false, detector.ReasonRepeatedDigitSequence, "Invalid: Repeated digit sequence (unlikely to be real card)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := v.Validate(tc.candidate)
			if verdict.Valid != tc.valid {
				t.Errorf("Valid = %v, want %v", verdict.Valid, tc.valid)
			}
			if verdict.Reason != tc.reason {
				t.Errorf("Reason = %q, want %q", verdict.Reason, tc.reason)
			}
			if verdict.Message != tc.message {
				t.Errorf("Message = %q, want %q", verdict.Message, tc.message)
			}
		})
	}
}

// Extra issuer rules from configuration are honored after the built-in table.
func TestValidate_ExtraIssuerRule(t *testing.T) {
	lib := patterns.New(patterns.Overrides{
		ExtraIssuers: []patterns.IssuerRule{
			{Name: "UnionPay", Lengths: []int{16}, Prefixes: []string{"62"}},
		},
	})
	v := NewValidator(lib)

	verdict := v.Validate("6212345678901265")
	if !verdict.Valid {
		t.Fatalf("expected valid verdict, got %+v", verdict)
	}
	if verdict.Message != "Valid credit card number (Issuer: UnionPay)" {
		t.Errorf("Message = %q, want UnionPay issuer", verdict.Message)
	}
}

func TestIsRepeatedSequence(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0000", true},
		{"9999999999999999", true},
		{"0001", false},
		{"1212121212121212", false},
	}
	for _, tc := range cases {
		if got := isRepeatedSequence(tc.input); got != tc.want {
			t.Errorf("isRepeatedSequence(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
