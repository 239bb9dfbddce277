// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"fieldscan/internal/config"
	"fieldscan/internal/core"
	"fieldscan/internal/formatters"
	_ "fieldscan/internal/formatters/json"
	_ "fieldscan/internal/formatters/text"
	_ "fieldscan/internal/formatters/yaml"
	"fieldscan/internal/help"
	"fieldscan/internal/input"
	"fieldscan/internal/version"

	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	filePath    string
	text        string
	checksToRun string
	format      string
	outputFile  string
	configFile  string
	noColor     bool
	verbose     bool
	listChecks  bool
	listFormats bool
	explain     string
	showVersion bool
}

func parseFlags() (*configFlags, map[string]bool) {
	flags := &configFlags{}
	flag.StringVar(&flags.filePath, "file", "", "Path to the document to scan (use - for stdin)")
	flag.StringVar(&flags.text, "text", "", "Scan the given text instead of reading a file")
	flag.StringVar(&flags.checksToRun, "checks", "", "Comma-separated checks to run (EMAIL,TIME,CREDIT_CARD,CURRENCY,PHONE) or 'all'")
	flag.StringVar(&flags.format, "format", "", "Output format (text, json, yaml)")
	flag.StringVar(&flags.outputFile, "output", "", "Write results to a file instead of stdout")
	flag.StringVar(&flags.configFile, "config", "", "Path to a configuration file")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&flags.verbose, "verbose", false, "Show machine reason codes alongside verdicts")
	flag.BoolVar(&flags.listChecks, "list-checks", false, "List available checks and exit")
	flag.BoolVar(&flags.listFormats, "list-formats", false, "List available output formats and exit")
	flag.StringVar(&flags.explain, "explain", "", "Show detailed help for one check and exit")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information and exit")
	flag.Parse()

	// Track which flags the user set explicitly so config file values only
	// fill the gaps.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return flags, set
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

func main() {
	flags, set := parseFlags()

	if flags.showVersion {
		fmt.Println(version.String())
		return
	}

	if flags.listChecks {
		fmt.Print(help.FormatCheckList(core.AllCheckInfos()))
		return
	}

	if flags.listFormats {
		fmt.Println("Available formats:", strings.Join(formatters.List(), ", "))
		return
	}

	if flags.explain != "" {
		name := strings.ToUpper(strings.TrimSpace(flags.explain))
		for _, info := range core.AllCheckInfos() {
			if info.Name == name {
				fmt.Print(help.FormatCheckDetail(info))
				return
			}
		}
		fmt.Fprintf(os.Stderr, "Unknown check: %s\n", flags.explain)
		os.Exit(2)
	}

	cfg := loadConfiguration(flags.configFile)

	// Resolve final settings: explicit flags win over config defaults.
	format := cfg.Defaults.Format
	if set["format"] {
		format = flags.format
	}
	checks := cfg.Defaults.Checks
	if set["checks"] {
		checks = flags.checksToRun
	}
	noColor := cfg.Defaults.NoColor || flags.noColor
	verbose := cfg.Defaults.Verbose || flags.verbose

	// Colors only make sense on an interactive terminal writing to stdout.
	if flags.outputFile != "" || !isTerminal(os.Stdout) {
		noColor = true
	}

	if flags.filePath == "" && flags.text == "" {
		fmt.Fprintln(os.Stderr, "Error: no input; use -file <path> or -text <string>")
		flag.Usage()
		os.Exit(2)
	}

	result, err := core.ScanFile(core.ScanConfig{
		FilePath: flags.filePath,
		Text:     flags.text,
		Checks:   splitChecks(checks),
		Config:   cfg,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, input.ErrSourceUnavailable) {
			os.Exit(1)
		}
		os.Exit(2)
	}

	output, err := formatters.Export(format, result.Results, formatters.FormatterOptions{
		NoColor: noColor,
		Verbose: verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if flags.outputFile != "" {
		if err := os.WriteFile(flags.outputFile, []byte(output+"\n"), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(output)
}

func splitChecks(checks string) []string {
	if strings.TrimSpace(checks) == "" {
		return nil
	}
	return strings.Split(checks, ",")
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
