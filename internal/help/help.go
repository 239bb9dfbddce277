// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help carries the user-facing metadata each check publishes about
// itself: what it looks for, the shapes it extracts, and the reason
// vocabulary it can emit.
package help

import (
	"fmt"
	"strings"
)

// CheckInfo describes one check for help output.
type CheckInfo struct {
	Name                string
	ShortDescription    string
	DetailedDescription string

	// Loose shapes nominated as candidates, in plain language.
	Patterns []string

	// Messages the check can emit, valid and invalid. This is the closed
	// vocabulary consumers may parse.
	Verdicts []string
}

// FormatCheckList renders a one-line-per-check summary.
func FormatCheckList(infos []CheckInfo) string {
	var b strings.Builder
	b.WriteString("Available checks:\n")
	for _, info := range infos {
		fmt.Fprintf(&b, "  %-12s %s\n", info.Name, info.ShortDescription)
	}
	return b.String()
}

// FormatCheckDetail renders the full help for one check.
func FormatCheckDetail(info CheckInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n%s\n", info.Name, strings.Repeat("=", len(info.Name)), info.DetailedDescription)

	if len(info.Patterns) > 0 {
		b.WriteString("\nExtracted shapes:\n")
		for _, p := range info.Patterns {
			fmt.Fprintf(&b, "  - %s\n", p)
		}
	}
	if len(info.Verdicts) > 0 {
		b.WriteString("\nPossible verdicts:\n")
		for _, m := range info.Verdicts {
			fmt.Fprintf(&b, "  - %s\n", m)
		}
	}
	return b.String()
}
