package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kitty-panics/proton-caller/internal/app"
)

const toolVersion = "1.0.0"

var (
	cfgPath string
	verbose bool
	appCtx  *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "proton-call",
		Short:         "Run Windows programs through Valve's Proton",
		Version:       toolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			a, err := app.New(cfgPath, os.LookupEnv)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/proton.conf)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(runCmd(), listCmd(), configCmd())
	return root.Execute()
}
