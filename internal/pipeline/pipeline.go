// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pipeline composes candidate extraction with strict validation: one
// independent pipeline per data kind over a single input text. A Pipeline is
// stateless and rerunnable; running it twice on identical input yields
// identical output.
package pipeline

import (
	"regexp"

	"fieldscan/internal/detector"
	"fieldscan/internal/extractor"
	"fieldscan/internal/patterns"
	"fieldscan/internal/validators/clocktime"
	"fieldscan/internal/validators/creditcard"
	"fieldscan/internal/validators/currency"
	"fieldscan/internal/validators/email"
	"fieldscan/internal/validators/phone"
)

// Pipeline wires the extractor to the five rule chains.
type Pipeline struct {
	lib        *patterns.Library
	extract    *extractor.Extractor
	validators map[detector.Kind]detector.Validator
	nonDigit   *regexp.Regexp
}

// New builds a Pipeline over the given pattern library.
func New(lib *patterns.Library) *Pipeline {
	return &Pipeline{
		lib:     lib,
		extract: extractor.New(lib),
		validators: map[detector.Kind]detector.Validator{
			detector.KindEmail:      email.NewValidator(),
			detector.KindTime:       clocktime.NewValidator(),
			detector.KindCreditCard: creditcard.NewValidator(lib),
			detector.KindCurrency:   currency.NewValidator(lib),
			detector.KindPhone:      phone.NewValidator(),
		},
		nonDigit: regexp.MustCompile(`\D`),
	}
}

// Validator returns the rule chain for one kind.
func (p *Pipeline) Validator(kind detector.Kind) detector.Validator {
	return p.validators[kind]
}

// Run extracts candidates for one kind and classifies each, in candidate
// order. Absence of candidates yields an empty slice, never an error.
func (p *Pipeline) Run(text string, kind detector.Kind) []detector.Result {
	candidates := p.extract.Extract(text, kind)
	if kind == detector.KindPhone {
		candidates = p.dropCardShaped(candidates)
	}

	results := make([]detector.Result, 0, len(candidates))
	v := p.validators[kind]
	for _, c := range candidates {
		results = append(results, detector.Result{
			Kind:      kind,
			Candidate: c,
			Verdict:   v.Validate(c),
		})
	}
	return results
}

// RunAll runs the five independent pipelines in canonical order over one
// input text.
func (p *Pipeline) RunAll(text string) []detector.Result {
	var results []detector.Result
	for _, kind := range detector.AllKinds() {
		results = append(results, p.Run(text, kind)...)
	}
	return results
}

// dropCardShaped removes phone candidates whose full digit run has an
// excluded count (16 by default). Those substrings belong to the credit card
// pipeline; the check runs on the original candidate's digits, before any
// country-code stripping.
func (p *Pipeline) dropCardShaped(candidates []string) []string {
	out := candidates[:0]
	for _, c := range candidates {
		digits := len(p.nonDigit.ReplaceAllString(c, ""))
		excluded := false
		for _, n := range p.lib.PhoneExcludedDigitCounts {
			if digits == n {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, c)
		}
	}
	return out
}
