// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"fieldscan/internal/detector"
	"fieldscan/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements human-readable text output, one section per kind with
// one "<candidate>: <verdict-text>" line per candidate.
type Formatter struct {
	header  *color.Color
	valid   *color.Color
	invalid *color.Color
	code    *color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		header:  color.New(color.FgWhite, color.Bold),
		valid:   color.New(color.FgGreen),
		invalid: color.New(color.FgRed),
		code:    color.New(color.FgYellow),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output grouped per data type"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []detector.Result, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		return "No candidates found.", nil
	}

	grouped := formatters.GroupByKind(results)

	var builder strings.Builder
	first := true
	for _, kind := range detector.AllKinds() {
		kindResults, ok := grouped[kind]
		if !ok {
			continue
		}
		if !first {
			builder.WriteString("\n")
		}
		first = false

		f.header.Fprintf(&builder, "%s Validation Results:\n", kind.Title())
		for _, r := range kindResults {
			f.appendLine(&builder, r, options)
		}
	}
	return builder.String(), nil
}

func (f *Formatter) appendLine(builder *strings.Builder, r detector.Result, options formatters.FormatterOptions) {
	verdictColor := f.valid
	if !r.Verdict.Valid {
		verdictColor = f.invalid
	}

	fmt.Fprintf(builder, "%s: ", r.Candidate)
	verdictColor.Fprint(builder, r.Verdict.Message)

	if options.Verbose && r.Verdict.Reason != "" {
		builder.WriteString(" ")
		f.code.Fprintf(builder, "[%s]", r.Verdict.Reason)
	}
	builder.WriteString("\n")
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
