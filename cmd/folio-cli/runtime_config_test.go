package main

import (
	"testing"

	"folio-cli/internal/config"
	"folio-cli/internal/features"
	"folio-cli/internal/logger"

	"github.com/sirupsen/logrus"
)

func TestBuildRuntimeAppliesOverrides(t *testing.T) {
	l := logrus.New()
	logger.SetRoot(l)
	t.Cleanup(func() { logger.SetRoot(nil) })

	cfg := config.Default()
	cfg.Profile.Name = "Ada"
	rt, err := buildRuntime(cfg, []string{
		"profile.email=ada@example.test",
		"features.clipboard=true",
		"features.clock=false",
		"site.toggle_key=ctrl+t",
		"log_level=warn",
	})
	if err != nil {
		t.Fatalf("buildRuntime error: %v", err)
	}
	if rt.profile.Email != "ada@example.test" || rt.profile.Name != "Ada" {
		t.Fatalf("unexpected profile %+v", rt.profile)
	}
	if rt.content.Owner != "Ada" {
		t.Fatalf("content owner = %q", rt.content.Owner)
	}
	if !rt.features.Enabled(features.Clipboard) || rt.features.Enabled(features.Clock) {
		t.Fatalf("unexpected features %v", rt.features)
	}
	if !rt.features.Enabled(features.Completion) {
		t.Fatalf("completion should stay on by default")
	}
	if rt.toggleKey != "ctrl+t" {
		t.Fatalf("toggleKey = %q", rt.toggleKey)
	}
	if l.GetLevel() != logrus.WarnLevel {
		t.Fatalf("log level = %v, want warn", l.GetLevel())
	}
}

func TestBuildRuntimeRejectsBadLogLevel(t *testing.T) {
	logger.SetRoot(logrus.New())
	t.Cleanup(func() { logger.SetRoot(nil) })

	if _, err := buildRuntime(config.Default(), []string{"log_level=loud"}); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}
