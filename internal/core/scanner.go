// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core holds the scanning logic shared by every entry point: a
// single-kind run and the all-kinds run use the same pipeline underneath.
package core

import (
	"fmt"
	"os"
	"strings"

	"fieldscan/internal/config"
	"fieldscan/internal/detector"
	"fieldscan/internal/help"
	"fieldscan/internal/input"
	"fieldscan/internal/patterns"
	"fieldscan/internal/pipeline"
)

// ScanConfig holds configuration for scanning operations.
type ScanConfig struct {
	// FilePath is the document source; "-" means stdin. Ignored when Text
	// is set.
	FilePath string
	// Text, when non-empty, is scanned directly.
	Text   string
	Checks []string
	Config *config.Config
}

// ScanResult holds the results of a scanning operation.
type ScanResult struct {
	Results        []detector.Result
	CandidateCount int
	ValidCount     int
}

// ScanFile acquires the document and scans it. The only error it can return
// wraps input.ErrSourceUnavailable or a document extraction failure.
func ScanFile(scanConfig ScanConfig) (*ScanResult, error) {
	text := scanConfig.Text
	if text == "" {
		var err error
		text, err = input.ReadDocument(scanConfig.FilePath)
		if err != nil {
			return nil, err
		}
	}
	return ScanText(text, scanConfig.Checks, scanConfig.Config), nil
}

// ScanText runs the enabled per-kind pipelines over one in-memory document.
// It cannot fail: every malformed candidate is classified, not raised.
func ScanText(text string, checks []string, cfg *config.Config) *ScanResult {
	lib := patterns.Default()
	if cfg != nil {
		lib = patterns.New(cfg.Overrides())
	}
	p := pipeline.New(lib)

	enabled := ParseChecksToRun(checks)
	result := &ScanResult{}
	for _, kind := range detector.AllKinds() {
		if !enabled[kind] {
			continue
		}
		kindResults := p.Run(text, kind)
		debugf("check %s: %d candidates", kind, len(kindResults))
		result.Results = append(result.Results, kindResults...)
	}

	result.CandidateCount = len(result.Results)
	for _, r := range result.Results {
		if r.Verdict.Valid {
			result.ValidCount++
		}
	}
	return result
}

// ParseChecksToRun converts a slice of check names into an enabled-checks
// map. An empty slice or ["all"] enables every check.
func ParseChecksToRun(checks []string) map[detector.Kind]bool {
	result := map[detector.Kind]bool{
		detector.KindEmail:      false,
		detector.KindTime:       false,
		detector.KindCreditCard: false,
		detector.KindCurrency:   false,
		detector.KindPhone:      false,
	}

	if len(checks) == 0 || (len(checks) == 1 && strings.EqualFold(checks[0], "all")) {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, check := range checks {
		kind := detector.Kind(strings.ToUpper(strings.TrimSpace(check)))
		if _, exists := result[kind]; exists {
			result[kind] = true
		}
	}
	return result
}

// AllCheckInfos collects the help metadata each validator publishes, in
// canonical kind order.
func AllCheckInfos() []help.CheckInfo {
	p := pipeline.New(patterns.Default())
	var infos []help.CheckInfo
	for _, kind := range detector.AllKinds() {
		if described, ok := p.Validator(kind).(interface{ GetCheckInfo() help.CheckInfo }); ok {
			infos = append(infos, described.GetCheckInfo())
		}
	}
	return infos
}

func debugf(format string, args ...any) {
	if os.Getenv("FIELDSCAN_DEBUG") == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
}
