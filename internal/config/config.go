package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/kitty-panics/proton-caller/internal/callerr"
)

// FileName is the config file looked up under the user config directory.
const FileName = "proton.conf"

// Config holds the resolved filesystem paths proton-call works from.
// Immutable after Load.
type Config struct {
	// Data is the parent for per-version compatibility-data directories.
	Data string `toml:"data"`
	// Steam is the Steam installation, reported to the child as its client
	// install path.
	Steam string `toml:"steam"`
	// Common is the installations directory; defaults to
	// <steam>/steamapps/common when unset.
	Common string `toml:"common"`
	// Log asks the launched layer for verbose runtime logging.
	Log bool `toml:"log"`
}

// LookupEnv is the environment access used by Locate. Injected so tests
// never touch the process environment.
type LookupEnv func(key string) (string, bool)

// Locate finds the config file path: $XDG_CONFIG_HOME/proton.conf, else
// $HOME/.config/proton.conf.
func Locate(lookup LookupEnv) (string, error) {
	if dir, ok := lookup("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, FileName), nil
	}
	if home, ok := lookup("HOME"); ok && home != "" {
		return filepath.Join(home, ".config", FileName), nil
	}
	return "", callerr.New(callerr.Environment, "neither XDG_CONFIG_HOME nor HOME is set")
}

// Load reads and validates the TOML config at path, then fills in the
// default installations directory.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, callerr.Wrap(callerr.ConfigOpen, err, "%s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Config{}, callerr.Wrap(callerr.ConfigRead, err, "%s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, callerr.Wrap(callerr.ConfigParse, err, "%s", path)
	}

	if cfg.Data == "" {
		return Config{}, callerr.New(callerr.ConfigParse, "%s: missing 'data' path", path)
	}
	if cfg.Steam == "" {
		return Config{}, callerr.New(callerr.ConfigParse, "%s: missing 'steam' path", path)
	}
	if cfg.Common == "" {
		cfg.Common = filepath.Join(cfg.Steam, "steamapps", "common")
	}
	return cfg, nil
}
