// Package config loads the GitLab connection settings.
//
// Settings come from a YAML file (gitlab_url, gitlab_token) overridden by
// SIFTLY_GITLAB_URL / SIFTLY_GITLAB_TOKEN. The file is read again on every
// call so edits take effect the next time the list is opened.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/andareed/siftly-snippets/gitlab"
	"github.com/andareed/siftly-snippets/logging"
)

const (
	EnvPrefix = "SIFTLY"

	keyURL   = "gitlab_url"
	keyToken = "gitlab_token"
)

// Config is the on-disk configuration.
type Config struct {
	GitLabURL   string `yaml:"gitlab_url" mapstructure:"gitlab_url"`
	GitLabToken string `yaml:"gitlab_token" mapstructure:"gitlab_token"`
}

// DefaultConfigPath is $XDG_CONFIG_HOME/siftly-snippets/config.yaml (or the
// platform equivalent).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, "siftly-snippets", "config.yaml"), nil
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logging.Warnf("config: loading %s: %v", path, err)
		}
	}
}

// Load reads path (which may not exist) and applies env overrides. An empty
// path means DefaultConfigPath.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetDefault(keyURL, "")
	v.SetDefault(keyToken, "")
	if err := v.BindEnv(keyURL); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv(keyToken); err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("checking %s: %w", path, err)
	} else {
		logging.Debugf("config: %s not found, using environment only", path)
	}

	return Config{
		GitLabURL:   v.GetString(keyURL),
		GitLabToken: v.GetString(keyToken),
	}, nil
}

// Source re-reads the configuration every time settings are requested.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

// Settings implements snippets.SettingsSource.
func (s *Source) Settings() (gitlab.Settings, error) {
	cfg, err := Load(s.path)
	if err != nil {
		return gitlab.Settings{}, err
	}
	return gitlab.Settings{BaseURL: cfg.GitLabURL, Token: cfg.GitLabToken}, nil
}

// WriteTemplate writes a starter config to path. It refuses to overwrite an
// existing file unless force is set.
func WriteTemplate(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if cfg.GitLabURL == "" {
		cfg.GitLabURL = gitlab.DefaultBaseURL
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	// The token is a credential.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
