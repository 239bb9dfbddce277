// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"os"
	"path/filepath"
	"testing"

	"fieldscan/internal/detector"
)

func TestParseChecksToRun(t *testing.T) {
	cases := []struct {
		name    string
		checks  []string
		enabled []detector.Kind
	}{
		{
			"empty enables all",
			nil,
			detector.AllKinds(),
		},
		{
			"explicit all enables all",
			[]string{"all"},
			detector.AllKinds(),
		},
		{
			"all is case-insensitive",
			[]string{"ALL"},
			detector.AllKinds(),
		},
		{
			"single check",
			[]string{"email"},
			[]detector.Kind{detector.KindEmail},
		},
		{
			"multiple checks with whitespace",
			[]string{" phone ", "credit_card"},
			[]detector.Kind{detector.KindCreditCard, detector.KindPhone},
		},
		{
			"unknown names are ignored",
			[]string{"email", "ssn"},
			[]detector.Kind{detector.KindEmail},
		},
		{
			"only unknown names enables nothing",
			[]string{"ssn"},
			nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseChecksToRun(tc.checks)
			if len(got) != len(detector.AllKinds()) {
				t.Fatalf("map should always carry every kind, got %d entries", len(got))
			}

			want := map[detector.Kind]bool{}
			for _, k := range tc.enabled {
				want[k] = true
			}
			for kind, enabled := range got {
				if enabled != want[kind] {
					t.Errorf("check %s: enabled = %v, want %v", kind, enabled, want[kind])
				}
			}
		})
	}
}

func TestScanText_Counts(t *testing.T) {
	text := "Write to admin@example.com or to bad@domain (meeting at 14:30)."

	result := ScanText(text, []string{"email", "time"}, nil)

	if result.CandidateCount != len(result.Results) {
		t.Errorf("CandidateCount = %d, want %d", result.CandidateCount, len(result.Results))
	}
	valid := 0
	for _, r := range result.Results {
		if r.Verdict.Valid {
			valid++
		}
	}
	if result.ValidCount != valid {
		t.Errorf("ValidCount = %d, want %d", result.ValidCount, valid)
	}
	if result.ValidCount == 0 {
		t.Error("expected at least one valid result")
	}
}

func TestScanText_DisabledKindsProduceNothing(t *testing.T) {
	text := "Call 555-123-4567 or email admin@example.com"

	result := ScanText(text, []string{"phone"}, nil)

	for _, r := range result.Results {
		if r.Kind != detector.KindPhone {
			t.Errorf("got result for disabled check %s: %q", r.Kind, r.Candidate)
		}
	}
	if len(result.Results) == 0 {
		t.Error("expected phone results")
	}
}

func TestScanFile_ReadsDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("reach me at admin@example.com"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := ScanFile(ScanConfig{FilePath: path, Checks: []string{"email"}})
	if err != nil {
		t.Fatalf("ScanFile: %v", err)
	}
	if result.ValidCount != 1 {
		t.Errorf("ValidCount = %d, want 1", result.ValidCount)
	}
}

func TestScanFile_MissingFile(t *testing.T) {
	_, err := ScanFile(ScanConfig{FilePath: filepath.Join(t.TempDir(), "absent.txt")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAllCheckInfos(t *testing.T) {
	infos := AllCheckInfos()
	if len(infos) != len(detector.AllKinds()) {
		t.Fatalf("got %d check infos, want %d", len(infos), len(detector.AllKinds()))
	}
	for i, kind := range detector.AllKinds() {
		if infos[i].Name != string(kind) {
			t.Errorf("info %d: Name = %q, want %q", i, infos[i].Name, kind)
		}
	}
}
