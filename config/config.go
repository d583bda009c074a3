// Package config loads groucc's optional TOML configuration file: default
// grammar path, REPL prompt, and history file location.
//
// Grounded on internal/tqw's toml.Unmarshal usage (the teacher's world-file
// format), the same library used here for an unrelated but structurally
// identical purpose: a small, flat, user-editable settings file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is groucc's user-editable settings file, conventionally
// ~/.groucc.toml.
type Config struct {
	Grammar string `toml:"grammar"`
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

// Default returns the built-in defaults used when no config file is present.
func Default() Config {
	return Config{
		Prompt: "groucc> ",
	}
}

// Load reads and parses the TOML file at path. A missing file is not an
// error: Default() is returned instead, since the config file is entirely
// optional.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
