package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
// Keys use the TOML table path, e.g. profile.email or features.clock.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "log_level":
			cfg.LogLevel = val
		case "profile.name":
			cfg.Profile.Name = val
		case "profile.user":
			cfg.Profile.User = val
		case "profile.role":
			cfg.Profile.Role = val
		case "profile.access":
			cfg.Profile.Access = val
		case "profile.bio":
			cfg.Profile.Bio = val
		case "profile.email":
			cfg.Profile.Email = val
		case "profile.github":
			cfg.Profile.GitHub = val
		case "profile.linkedin":
			cfg.Profile.LinkedIn = val
		case "site.base_url":
			cfg.Site.BaseURL = val
		case "site.toggle_key":
			cfg.Site.ToggleKey = val
		case "site.headline":
			cfg.Site.Headline = val
		case "site.intro":
			cfg.Site.Intro = val
		default:
			if name, ok := strings.CutPrefix(key, "features."); ok && name != "" {
				enabled, err := strconv.ParseBool(val)
				if err != nil {
					continue
				}
				if cfg.Features == nil {
					cfg.Features = make(map[string]bool)
				}
				cfg.Features[name] = enabled
			}
		}
	}
	return cfg
}
