// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package input acquires the document to scan. The core consumes a single
// in-memory string; this package is the only place a source can hard-fail.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrSourceUnavailable marks the single hard-failure class at the input
// boundary: the document source cannot be opened. Callers check it with
// errors.Is and must not retry; it is an environment problem, not a data
// problem.
var ErrSourceUnavailable = errors.New("input source unavailable")

// ReadDocument returns the full text of the document at path. "-" reads from
// stdin. PDF files have their text layer extracted; everything else is read
// as plain text.
func ReadDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: reading stdin: %v", ErrSourceUnavailable, err)
		}
		return string(data), nil
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDFText(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return string(data), nil
}

// extractPDFText pulls the text layer out of a PDF document.
func extractPDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening PDF: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error extracting PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", fmt.Errorf("error extracting PDF text: %w", err)
	}
	return buf.String(), nil
}
