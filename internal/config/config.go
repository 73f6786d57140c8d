package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultRecentLimit bounds the recently-played list when the config does
// not override it.
const DefaultRecentLimit = 100

type Config struct {
	MusicFolder string `koanf:"music_folder"` // folder loaded at startup (empty = none)

	// Maximum number of entries kept in the recently-played list.
	// 0 keeps the list unbounded.
	RecentlyPlayedLimit *int `koanf:"recently_played_limit"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in music_folder
	if cfg.MusicFolder != "" {
		cfg.MusicFolder = expandPath(cfg.MusicFolder)
	}

	return cfg, nil
}

// RecentLimit returns the recently-played bound with the default applied.
func (c *Config) RecentLimit() int {
	if c.RecentlyPlayedLimit == nil {
		return DefaultRecentLimit
	}
	if *c.RecentlyPlayedLimit < 0 {
		return DefaultRecentLimit
	}
	return *c.RecentlyPlayedLimit
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/aria/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "aria", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
