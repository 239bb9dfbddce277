// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package shared holds the report structures common to the structured
// formatters (json, yaml) so both emit the same shape.
package shared

import "fieldscan/internal/detector"

// Summary aggregates verdict counts for a report.
type Summary struct {
	Candidates int `json:"candidates" yaml:"candidates"`
	Valid      int `json:"valid" yaml:"valid"`
	Invalid    int `json:"invalid" yaml:"invalid"`
}

// Report is the structured output document.
type Report struct {
	Summary Summary           `json:"summary" yaml:"summary"`
	Results []detector.Result `json:"results" yaml:"results"`
}

// BuildReport assembles a Report from a verdict sequence.
func BuildReport(results []detector.Result) Report {
	report := Report{Results: results}
	if report.Results == nil {
		report.Results = []detector.Result{}
	}

	report.Summary.Candidates = len(results)
	for _, r := range results {
		if r.Verdict.Valid {
			report.Summary.Valid++
		} else {
			report.Summary.Invalid++
		}
	}
	return report
}
