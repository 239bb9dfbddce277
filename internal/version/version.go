// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import "fmt"

// Build information, set via ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the full version string.
func String() string {
	return fmt.Sprintf("fieldscan %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
