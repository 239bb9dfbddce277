// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"fieldscan/internal/detector"
	"fieldscan/internal/formatters"
)

func sampleResults() []detector.Result {
	return []detector.Result{
		{
			Kind:      detector.KindEmail,
			Candidate: "user@example.com",
			Verdict:   detector.Accept("Valid email"),
		},
		{
			Kind:      detector.KindEmail,
			Candidate: "example.com",
			Verdict:   detector.Reject(detector.ReasonMissingOrMultipleAt, "Invalid: Missing or multiple @ symbols"),
		},
		{
			Kind:      detector.KindPhone,
			Candidate: "(555) 123-4567",
			Verdict:   detector.Accept("Valid phone number"),
		},
	}
}

func TestFormat_NoColorLines(t *testing.T) {
	out, err := NewFormatter().Format(sampleResults(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	for _, want := range []string{
		"Email Validation Results:",
		"Phone Validation Results:",
		"user@example.com: Valid email",
		"example.com: Invalid: Missing or multiple @ symbols",
		"(555) 123-4567: Valid phone number",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestFormat_SectionsFollowKindOrder(t *testing.T) {
	out, err := NewFormatter().Format(sampleResults(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	email := strings.Index(out, "Email Validation Results:")
	phone := strings.Index(out, "Phone Validation Results:")
	if email < 0 || phone < 0 || email > phone {
		t.Errorf("email section should precede phone section\n%s", out)
	}
}

func TestFormat_Empty(t *testing.T) {
	out, err := NewFormatter().Format(nil, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if out != "No candidates found." {
		t.Errorf("empty output = %q", out)
	}
}

func TestFormat_VerboseAppendsReason(t *testing.T) {
	out, err := NewFormatter().Format(sampleResults(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if !strings.Contains(out, "["+string(detector.ReasonMissingOrMultipleAt)+"]") {
		t.Errorf("verbose output should carry the reason code\n%s", out)
	}
	if strings.Contains(out, "user@example.com: Valid email [") {
		t.Errorf("valid results have no reason code to print\n%s", out)
	}
}

func TestFormat_NonVerboseOmitsReason(t *testing.T) {
	out, err := NewFormatter().Format(sampleResults(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if strings.Contains(out, "[") {
		t.Errorf("reason codes should only appear in verbose mode\n%s", out)
	}
}

func TestRegistered(t *testing.T) {
	f, ok := formatters.Get("text")
	if !ok {
		t.Fatal("text formatter not registered")
	}
	if f.FileExtension() != ".txt" {
		t.Errorf("FileExtension = %q, want .txt", f.FileExtension())
	}
}
