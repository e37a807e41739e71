// Package config loads the tool configuration: instance URL and API
// token, from a json5 file.
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/titanous/json5"
)

type Config struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.URL == "" {
		return cfg, fmt.Errorf("%s: url is required", path)
	}
	if cfg.Token == "" {
		return cfg, fmt.Errorf("%s: token is required", path)
	}
	return cfg, nil
}

// RestrictToOwner tightens the config file to owner read/write, since
// it holds the API token. No-op on Windows, where mode bits do not
// carry ACLs.
func RestrictToOwner(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, 0o600)
}
