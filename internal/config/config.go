package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DefaultToggleKey 是打开/关闭终端弹窗的默认按键。
const DefaultToggleKey = "ctrl+k"

// Config is the only persisted config file schema.
type Config struct {
	LogLevel string          `toml:"log_level,omitempty"`
	Profile  Profile         `toml:"profile"`
	Site     Site            `toml:"site"`
	Features map[string]bool `toml:"features,omitempty"`
	Source   string          `toml:"-"`
}

// Profile 描述站点主人，空字段使用内置值。
type Profile struct {
	Name     string `toml:"name,omitempty"`
	User     string `toml:"user,omitempty"`
	Role     string `toml:"role,omitempty"`
	Access   string `toml:"access,omitempty"`
	Bio      string `toml:"bio,omitempty"`
	Email    string `toml:"email,omitempty"`
	GitHub   string `toml:"github,omitempty"`
	LinkedIn string `toml:"linkedin,omitempty"`
}

// Site 描述宿主页面；列表为空时使用内置内容。
type Site struct {
	BaseURL   string    `toml:"base_url,omitempty"`
	ToggleKey string    `toml:"toggle_key,omitempty"`
	Headline  string    `toml:"headline,omitempty"`
	Intro     string    `toml:"intro,omitempty"`
	Posts     []Post    `toml:"posts,omitempty"`
	Work      []Job     `toml:"work,omitempty"`
	Projects  []Project `toml:"projects,omitempty"`
}

type Post struct {
	Slug    string   `toml:"slug"`
	Title   string   `toml:"title"`
	Excerpt string   `toml:"excerpt,omitempty"`
	Date    string   `toml:"date,omitempty"`
	Tags    []string `toml:"tags,omitempty"`
}

type Job struct {
	Company      string   `toml:"company"`
	Role         string   `toml:"role"`
	Period       string   `toml:"period,omitempty"`
	Running      bool     `toml:"running,omitempty"`
	Description  string   `toml:"description,omitempty"`
	Highlights   []string `toml:"highlights,omitempty"`
	Technologies []string `toml:"technologies,omitempty"`
}

type Project struct {
	Name         string   `toml:"name"`
	Description  string   `toml:"description,omitempty"`
	Technologies []string `toml:"technologies,omitempty"`
	GitHub       string   `toml:"github,omitempty"`
	Demo         string   `toml:"demo,omitempty"`
}

func Default() Config {
	return Config{
		Site: Site{
			BaseURL:   "https://ilhamwibawa.com",
			ToggleKey: DefaultToggleKey,
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".folio", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	if strings.TrimSpace(cfg.Site.ToggleKey) == "" {
		cfg.Site.ToggleKey = DefaultToggleKey
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv("FOLIO_PROFILE_EMAIL")); env != "" {
		cfg.Profile.Email = env
	}
	if env := strings.TrimSpace(os.Getenv("FOLIO_SITE_BASE_URL")); env != "" {
		cfg.Site.BaseURL = env
	}
	if env := strings.TrimSpace(os.Getenv("FOLIO_TOGGLE_KEY")); env != "" {
		cfg.Site.ToggleKey = env
	}
}
