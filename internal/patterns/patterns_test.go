// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"testing"

	"fieldscan/internal/detector"
)

func TestIssuerRule_Matches(t *testing.T) {
	cases := []struct {
		name   string
		rule   IssuerRule
		digits string
		want   bool
	}{
		{
			"prefix and length",
			IssuerRule{Name: "Visa", Lengths: []int{13, 16}, Prefixes: []string{"4"}},
			"4111111111111111", true,
		},
		{
			"prefix wrong length",
			IssuerRule{Name: "Visa", Lengths: []int{13, 16}, Prefixes: []string{"4"}},
			"41111111111111", false,
		},
		{
			"range hit",
			IssuerRule{Name: "MasterCard", Lengths: []int{16}, Ranges: []PrefixRange{{Digits: 2, Start: 51, End: 55}}},
			"5311111111111111", true,
		},
		{
			"range miss",
			IssuerRule{Name: "MasterCard", Lengths: []int{16}, Ranges: []PrefixRange{{Digits: 2, Start: 51, End: 55}}},
			"5611111111111111", false,
		},
		{
			"range shorter than number of digits",
			IssuerRule{Name: "X", Lengths: []int{13}, Ranges: []PrefixRange{{Digits: 4, Start: 2221, End: 2720}}},
			"2222222222222", true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rule.Matches(tc.digits); got != tc.want {
				t.Errorf("Matches(%q) = %v, want %v", tc.digits, got, tc.want)
			}
		})
	}
}

func TestNew_Overrides(t *testing.T) {
	lib := New(Overrides{
		ExtraCurrencyCodes:       []string{" ngn "},
		ExtraIssuers:             []IssuerRule{{Name: "UnionPay", Lengths: []int{16}, Prefixes: []string{"62"}}},
		PhoneExcludedDigitCounts: []int{15, 16},
	})

	found := false
	for _, code := range lib.CurrencyCodes {
		if code == "NGN" {
			found = true
		}
	}
	if !found {
		t.Error("extra currency code not normalized and appended")
	}

	last := lib.IssuerRules[len(lib.IssuerRules)-1]
	if last.Name != "UnionPay" {
		t.Errorf("extra issuer rule not appended, got %q", last.Name)
	}

	if len(lib.PhoneExcludedDigitCounts) != 2 {
		t.Errorf("PhoneExcludedDigitCounts = %v, want [15 16]", lib.PhoneExcludedDigitCounts)
	}

	if !lib.Currency.MatchString("1,500 NGN") {
		t.Error("currency loose pattern should recognize the extra code")
	}
}

func TestDefault_LoosePatterns(t *testing.T) {
	lib := Default()

	for _, kind := range []detector.Kind{detector.KindTime, detector.KindCreditCard, detector.KindCurrency, detector.KindPhone} {
		if lib.Loose(kind) == nil {
			t.Errorf("Loose(%s) = nil", kind)
		}
	}
	if lib.Loose(detector.KindEmail) != nil {
		t.Error("email has no single loose pattern; expected nil")
	}
}

func TestDefault_CurrencyMarkers(t *testing.T) {
	lib := Default()

	cases := []struct {
		input  string
		prefix bool
		suffix bool
	}{
		{"$100", true, false},
		{"usd 100", true, false},
		{"100 RWF", false, true},
		{"100", false, false},
	}
	for _, tc := range cases {
		if got := lib.CurrencyMarkerPrefix.MatchString(tc.input); got != tc.prefix {
			t.Errorf("prefix match %q = %v, want %v", tc.input, got, tc.prefix)
		}
		if got := lib.CurrencyMarkerSuffix.MatchString(tc.input); got != tc.suffix {
			t.Errorf("suffix match %q = %v, want %v", tc.input, got, tc.suffix)
		}
	}
}
