// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns holds the loose extraction patterns and the rule tables
// shared by the extractor and the validators. A Library is immutable after
// construction; build one per process and reuse it.
package patterns

import (
	"regexp"
	"strconv"
	"strings"

	"fieldscan/internal/detector"
)

// PrefixRange matches when the integer value of the first Digits digits of a
// card number falls inside [Start, End].
type PrefixRange struct {
	Digits int `yaml:"digits"`
	Start  int `yaml:"start"`
	End    int `yaml:"end"`
}

// IssuerRule is one row of the issuer heuristic table. A cleaned digit string
// matches when its length is listed and any prefix or prefix range matches.
// Rules are evaluated in table order; first match wins.
type IssuerRule struct {
	Name     string        `yaml:"name"`
	Lengths  []int         `yaml:"lengths"`
	Prefixes []string      `yaml:"prefixes,omitempty"`
	Ranges   []PrefixRange `yaml:"ranges,omitempty"`
}

// Matches reports whether the cleaned, all-digit card number satisfies this
// rule.
func (r IssuerRule) Matches(digits string) bool {
	lengthOK := false
	for _, l := range r.Lengths {
		if len(digits) == l {
			lengthOK = true
			break
		}
	}
	if !lengthOK {
		return false
	}

	for _, p := range r.Prefixes {
		if strings.HasPrefix(digits, p) {
			return true
		}
	}
	for _, pr := range r.Ranges {
		if len(digits) < pr.Digits {
			continue
		}
		n, err := strconv.Atoi(digits[:pr.Digits])
		if err != nil {
			continue
		}
		if n >= pr.Start && n <= pr.End {
			return true
		}
	}
	return false
}

// Overrides extends the built-in rule tables without touching the pipeline.
type Overrides struct {
	// Additional 3-letter currency codes recognized as markers.
	ExtraCurrencyCodes []string
	// Additional issuer rules, appended after the built-in table.
	ExtraIssuers []IssuerRule
	// Replacement for the digit counts excluded from phone extraction.
	// Nil keeps the default of {16}.
	PhoneExcludedDigitCounts []int
}

// Library is the process-wide pattern and rule table. Loose patterns are
// purposely permissive: false positives are expected and filtered by the
// validators.
type Library struct {
	// Email extraction is a two-pass union: token@token.token runs plus
	// bare token.token runs that may be emails missing their @.
	EmailWithAt *regexp.Regexp
	EmailNoAt   *regexp.Regexp
	// Rejection helpers for the no-@ pass.
	NumericOnly *regexp.Regexp
	HasLetter   *regexp.Regexp

	Time       *regexp.Regexp
	CreditCard *regexp.Regexp
	Currency   *regexp.Regexp
	Phone      *regexp.Regexp

	// Currency marker tables. Symbols are prefix-only; codes match as
	// prefix or suffix, case-insensitively.
	CurrencySymbols []string
	CurrencyCodes   []string

	// Derived marker matchers used by the currency rule chain.
	CurrencyMarkerPrefix *regexp.Regexp
	CurrencyMarkerSuffix *regexp.Regexp
	CurrencyMarkerStrip  *regexp.Regexp

	// Issuer heuristic table, evaluated in order.
	IssuerRules []IssuerRule

	// Stripped-digit counts removed from phone candidates before
	// validation (credit-card-shaped numbers are not phone numbers).
	PhoneExcludedDigitCounts []int
}

// Default returns a Library with the built-in rule tables.
func Default() *Library {
	return New(Overrides{})
}

// New builds a Library with the built-in tables plus the given overrides.
func New(o Overrides) *Library {
	lib := &Library{
		EmailWithAt: regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`),
		EmailNoAt:   regexp.MustCompile(`\b[\w.-]+\.[\w.-]+\b`),
		NumericOnly: regexp.MustCompile(`^[\d.]+$`),
		HasLetter:   regexp.MustCompile(`[a-zA-Z]`),

		Time:       regexp.MustCompile(`\b\d{1,2}:\d{2}(?:\s*[AaPp][Mm])?\b`),
		CreditCard: regexp.MustCompile(`(?:\d{4}[-\s]?){3}\d{4}|\d{13,16}`),
		// The area-code boundary lives inside the alternation: a plain
		// leading \b can never hold before '(' and would reject every
		// parenthesized number.
		Phone: regexp.MustCompile(`(?:\+?\d{1,3}[\s.-]?)?(?:\(\d{3}\)|\b\d{3})[\s.-]?\d{3}[\s.-]?\d{4}\b`),

		CurrencySymbols: []string{"$", "£", "€"},
		CurrencyCodes:   []string{"RWF", "UGX", "USD", "EUR", "GBP", "KSH", "KES"},

		IssuerRules: defaultIssuerRules(),

		PhoneExcludedDigitCounts: []int{16},
	}

	for _, code := range o.ExtraCurrencyCodes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			lib.CurrencyCodes = append(lib.CurrencyCodes, code)
		}
	}
	lib.IssuerRules = append(lib.IssuerRules, o.ExtraIssuers...)
	if o.PhoneExcludedDigitCounts != nil {
		lib.PhoneExcludedDigitCounts = o.PhoneExcludedDigitCounts
	}

	lib.compileCurrency()
	return lib
}

// defaultIssuerRules mirrors the classic prefix/length heuristics for the
// four major networks. No checksum is involved anywhere; this is a
// classifier, not a payment validator.
func defaultIssuerRules() []IssuerRule {
	return []IssuerRule{
		{Name: "Visa", Lengths: []int{13, 16}, Prefixes: []string{"4"}},
		{Name: "American Express", Lengths: []int{15}, Prefixes: []string{"34", "37"}},
		{Name: "MasterCard", Lengths: []int{16}, Ranges: []PrefixRange{
			{Digits: 2, Start: 51, End: 55},
			{Digits: 4, Start: 2221, End: 2720},
		}},
		{Name: "Discover", Lengths: []int{16}, Prefixes: []string{"6011", "65"}, Ranges: []PrefixRange{
			{Digits: 3, Start: 644, End: 649},
		}},
	}
}

// compileCurrency builds the currency loose pattern and marker matchers from
// the marker tables.
func (l *Library) compileCurrency() {
	symbols := make([]string, 0, len(l.CurrencySymbols))
	for _, s := range l.CurrencySymbols {
		symbols = append(symbols, regexp.QuoteMeta(s))
	}
	codes := make([]string, 0, len(l.CurrencyCodes))
	for _, c := range l.CurrencyCodes {
		codes = append(codes, regexp.QuoteMeta(c))
	}

	anyMarker := "(?:" + strings.Join(append(append([]string{}, symbols...), codes...), "|") + ")"
	codeMarker := "(?:" + strings.Join(codes, "|") + ")"
	amount := `\d{1,3}(?:,\d{3})*(?:\.\d{2})?`

	l.Currency = regexp.MustCompile(`(?i)` + anyMarker + `\s*` + amount + `|` + amount + `\s*` + codeMarker)
	l.CurrencyMarkerPrefix = regexp.MustCompile(`(?i)^\s*` + anyMarker)
	l.CurrencyMarkerSuffix = regexp.MustCompile(`(?i)` + codeMarker + `\s*$`)
	l.CurrencyMarkerStrip = regexp.MustCompile(`(?i)` + anyMarker)
}

// Loose returns the loose extraction pattern for a single-pass kind. Email is
// a two-pass union and has no single loose pattern; callers handle it via
// EmailWithAt/EmailNoAt.
func (l *Library) Loose(kind detector.Kind) *regexp.Regexp {
	switch kind {
	case detector.KindTime:
		return l.Time
	case detector.KindCreditCard:
		return l.CreditCard
	case detector.KindCurrency:
		return l.Currency
	case detector.KindPhone:
		return l.Phone
	default:
		return nil
	}
}
