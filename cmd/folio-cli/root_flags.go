package main

import (
	"flag"
	"fmt"
	"strings"

	"folio-cli/internal/features"
)

type rootArgs struct {
	cfgPath   string
	startPath string
	overrides []string
}

func parseRootArgs(args []string) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("folio-cli", flag.ContinueOnError)
	var overrides stringSlice
	var enable stringSlice
	var disable stringSlice
	var cfgPath string
	var logLevel string
	var startPath string
	fs.Var(&overrides, "c", "Override config value key=value (repeatable, applied before subcommand overrides)")
	fs.Var(&enable, "enable", "Enable a feature (repeatable). Equivalent to -c features.<name>=true")
	fs.Var(&disable, "disable", "Disable a feature (repeatable). Equivalent to -c features.<name>=false")
	fs.StringVar(&cfgPath, "config", "", "Path to config file (default ~/.folio/config.toml)")
	fs.StringVar(&startPath, "path", "/", "Page the interactive UI opens first (/, /blog, /#projects, /#work)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error). Equivalent to -c log_level=<level>")
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}

	featureOverrides, err := buildFeatureOverrides(enable, disable)
	if err != nil {
		return rootArgs{}, nil, err
	}
	all := append([]string{}, overrides...)
	if strings.TrimSpace(logLevel) != "" {
		all = append(all, "log_level="+strings.TrimSpace(logLevel))
	}
	all = append(all, featureOverrides...)
	return rootArgs{cfgPath: cfgPath, startPath: startPath, overrides: all}, fs.Args(), nil
}

func prependOverrides(root []string, overrides []string) []string {
	merged := append([]string{}, root...)
	return append(merged, overrides...)
}

func buildFeatureOverrides(enable []string, disable []string) ([]string, error) {
	var overrides []string
	for _, key := range enable {
		if !features.IsKnown(key) {
			return nil, fmt.Errorf("unknown feature flag: %s", key)
		}
		overrides = append(overrides, fmt.Sprintf("features.%s=%t", key, true))
	}
	for _, key := range disable {
		if !features.IsKnown(key) {
			return nil, fmt.Errorf("unknown feature flag: %s", key)
		}
		overrides = append(overrides, fmt.Sprintf("features.%s=%t", key, false))
	}
	return overrides, nil
}
