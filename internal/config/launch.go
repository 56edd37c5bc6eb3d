package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/zhubert/chatgate/internal/errors"
)

// EnvPrefix prefixes every environment variable chatgate reads.
const EnvPrefix = "CHATGATE_"

// DefaultAccessRequestURL is the ticket form opened from the "not authorized"
// panel. The process identifier is fixed.
const DefaultAccessRequestURL = "https://work-order.zhiketong.net/#/process/create-ticket?processId=117"

// Launch describes where the shell runs and which services it talks to.
// Precedence, lowest first: defaults, launch.yaml, CHATGATE_* env, flags.
type Launch struct {
	AuthEndpoint     string        `yaml:"auth_endpoint" koanf:"auth_endpoint"`
	AuthTimeout      time.Duration `yaml:"auth_timeout" koanf:"auth_timeout"` // 0 waits forever
	Location         string        `yaml:"location" koanf:"location"`         // launch URL carrying ?signature=
	UserAgent        string        `yaml:"user_agent" koanf:"user_agent"`     // overrides the derived terminal identity
	HostOuterMarker  string        `yaml:"host_outer_marker" koanf:"host_outer_marker"`
	HostInnerMarker  string        `yaml:"host_inner_marker" koanf:"host_inner_marker"`
	CompactWidth     int           `yaml:"compact_width" koanf:"compact_width"`
	AccessRequestURL string        `yaml:"access_request_url" koanf:"access_request_url"`
	ChatBaseURL      string        `yaml:"chat_base_url" koanf:"chat_base_url"`
	ChatModel        string        `yaml:"chat_model" koanf:"chat_model"`
	ChatAPIKey       string        `yaml:"chat_api_key" koanf:"chat_api_key"`
}

// DefaultLaunch returns launch settings with every default applied.
func DefaultLaunch() *Launch {
	return &Launch{
		AuthEndpoint:     "http://127.0.0.1:8787/api/valid-user",
		HostOuterMarker:  "micromessenger",
		HostInnerMarker:  "wxwork",
		CompactWidth:     80,
		AccessRequestURL: DefaultAccessRequestURL,
		ChatModel:        "gpt-4o-mini",
	}
}

// LaunchPath returns the default launch.yaml location.
func LaunchPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "launch.yaml"), nil
}

// LoadLaunch layers defaults, the YAML file at path (if it exists), the
// CHATGATE_* environment and finally overrides, which carry flags the user
// set explicitly. Keys match the koanf tags on Launch.
func LoadLaunch(path string, overrides map[string]any) (*Launch, error) {
	k := koanf.New(".")
	cfg := DefaultLaunch()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.ConfigLoadFailed(path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.ConfigLoadFailed("environment", err)
	}

	for key, val := range overrides {
		if err := k.Set(key, val); err != nil {
			return nil, errors.ConfigLoadFailed("flag "+key, err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if cfg.ChatAPIKey == "" {
		cfg.ChatAPIKey = os.Getenv("OPENAI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the launch settings.
func (l *Launch) Validate() error {
	if l.AuthEndpoint == "" {
		return errors.ConfigInvalid("auth_endpoint is required")
	}
	if l.AuthTimeout < 0 {
		return errors.ConfigInvalid("auth_timeout must be non-negative")
	}
	if l.CompactWidth <= 0 {
		return errors.ConfigInvalid("compact_width must be positive")
	}
	if l.HostOuterMarker == "" || l.HostInnerMarker == "" {
		return errors.ConfigInvalid("host markers must not be empty")
	}
	if l.AccessRequestURL == "" {
		return errors.ConfigInvalid("access_request_url is required")
	}
	return nil
}

// WriteLaunchTemplate writes l to path as YAML, creating parent directories.
// The API key is never written.
func WriteLaunchTemplate(path string, l *Launch) error {
	out := *l
	out.ChatAPIKey = ""

	data, err := yamlv3.Marshal(&out)
	if err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.ConfigSaveFailed(path, err)
	}
	return nil
}
