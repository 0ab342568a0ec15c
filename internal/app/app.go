package app

import (
	"github.com/rs/zerolog/log"

	"github.com/kitty-panics/proton-caller/internal/config"
	"github.com/kitty-panics/proton-caller/internal/index"
)

// App carries the loaded configuration and the lazily built version index
// for subcommands.
type App struct {
	Config     config.Config
	ConfigPath string

	idx *index.Index
}

// New locates (unless cfgPath overrides discovery) and loads the config
// file. The index is not built here: custom-mode runs never need it.
func New(cfgPath string, lookup config.LookupEnv) (*App, error) {
	path := cfgPath
	if path == "" {
		var err error
		if path, err = config.Locate(lookup); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, ConfigPath: path}, nil
}

// Index scans the installations directory on first use and reuses the
// result for the rest of the invocation.
func (a *App) Index() (*index.Index, error) {
	if a.idx == nil {
		idx, err := index.Build(a.Config.Common)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("versions", idx.Len()).Str("dir", idx.Dir()).Msg("indexed installations")
		a.idx = idx
	}
	return a.idx, nil
}
