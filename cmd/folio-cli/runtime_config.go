package main

import (
	"fmt"
	"strings"

	"folio-cli/internal/config"
	"folio-cli/internal/features"
	"folio-cli/internal/logger"
	"folio-cli/internal/shell"
	"folio-cli/internal/site"
)

// runtimeConfig 是配置文件、环境变量与命令行覆盖合并后的运行参数。
type runtimeConfig struct {
	cfg       config.Config
	features  features.Set
	profile   shell.Profile
	content   site.Content
	toggleKey string
}

func loadRuntime(root rootArgs, overrides []string) (runtimeConfig, error) {
	cfg, err := config.Load(root.cfgPath)
	if err != nil {
		return runtimeConfig{}, fmt.Errorf("load %s: %w", cfg.Source, err)
	}
	return buildRuntime(cfg, overrides)
}

func buildRuntime(cfg config.Config, overrides []string) (runtimeConfig, error) {
	cfg = config.ApplyKVOverrides(cfg, overrides)
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return runtimeConfig{}, err
	}
	profile := shell.Profile(cfg.Profile)
	toggle := strings.TrimSpace(cfg.Site.ToggleKey)
	if toggle == "" {
		toggle = config.DefaultToggleKey
	}
	return runtimeConfig{
		cfg:       cfg,
		features:  features.Resolve(cfg.Features),
		profile:   profile,
		content:   site.FromConfig(profile.WithDefaults().Name, cfg.Site),
		toggleKey: toggle,
	}, nil
}
