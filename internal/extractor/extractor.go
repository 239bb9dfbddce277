// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor nominates candidate substrings from raw text using the
// loose patterns in the pattern library. Extraction is permissive by design;
// the validators do the strict work.
package extractor

import (
	"strings"

	"fieldscan/internal/detector"
	"fieldscan/internal/patterns"
)

// Extractor produces deduplicated, order-preserving candidate sequences.
type Extractor struct {
	lib *patterns.Library
}

// New returns an Extractor backed by the given pattern library.
func New(lib *patterns.Library) *Extractor {
	return &Extractor{lib: lib}
}

// Extract applies the loose pattern(s) for kind against text and returns the
// deduplicated candidates in first-seen order. It never fails: absence of
// matches yields an empty slice.
func (e *Extractor) Extract(text string, kind detector.Kind) []string {
	if kind == detector.KindEmail {
		return e.extractEmail(text)
	}

	re := e.lib.Loose(kind)
	if re == nil {
		return nil
	}
	return dedupe(re.FindAllString(text, -1))
}

// extractEmail merges two passes: @-bearing runs, then bare dotted runs that
// could be emails missing their @. Bare runs that are purely numeric or whose
// segment before the first dot contains no letter are discarded so version
// numbers and numeric IDs don't surface as candidates. The merge order is
// deterministic: @-bearing matches first, bare matches after, each in
// first-seen order.
func (e *Extractor) extractEmail(text string) []string {
	withAt := e.lib.EmailWithAt.FindAllString(text, -1)

	var bare []string
	for _, m := range e.lib.EmailNoAt.FindAllString(text, -1) {
		if e.lib.NumericOnly.MatchString(m) {
			continue
		}
		head, _, _ := strings.Cut(m, ".")
		if !e.lib.HasLetter.MatchString(head) {
			continue
		}
		bare = append(bare, m)
	}

	return dedupe(append(withAt, bare...))
}

// dedupe strips surrounding whitespace, drops empties, and keeps the first
// occurrence of each candidate.
func dedupe(matches []string) []string {
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
