package commands

import (
	"github.com/spf13/cobra"

	"github.com/kitty-panics/proton-caller/internal/callerr"
	"github.com/kitty-panics/proton-caller/internal/launch"
	"github.com/kitty-panics/proton-caller/internal/resolve"
	"github.com/kitty-panics/proton-caller/internal/version"
)

// run <program> [-- args...]: launch a program under the resolved Proton.
func runCmd() *cobra.Command {
	var (
		requested string
		customDir string
		protonLog bool
	)
	cmd := &cobra.Command{
		Use:   "run <program> [-- args...]",
		Short: "Launch a program under Proton",
		Long: `Launch a program under Proton.

Without -p the compiled-in default version is used; with -p the exact
requested version must be installed. With -c the given directory is used
directly, bypassing the installations index. Arguments after the program
path are passed to it verbatim.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program := args[0]
			extra := args[1:]

			cfg := appCtx.Config
			if protonLog {
				cfg.Log = true
			}

			var (
				installDir string
				v          version.Version
			)
			if customDir != "" {
				installDir, v = resolve.Custom(customDir)
			} else {
				idx, err := appCtx.Index()
				if err != nil {
					return err
				}
				installDir, v, err = resolve.Installation(idx, requested)
				if err != nil {
					return err
				}
			}

			plan, err := launch.Prepare(installDir, v, program, extra, cfg)
			if err != nil {
				return err
			}
			out, err := launch.Execute(plan)
			if err != nil {
				return err
			}
			if !out.Success() {
				return callerr.Exit(out.Code, out.Signaled)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&requested, "proton", "p", "", "Proton version to use (e.g. 6.3, experimental)")
	cmd.Flags().StringVarP(&customDir, "custom", "c", "", "custom Proton installation directory")
	cmd.Flags().BoolVarP(&protonLog, "log", "l", false, "ask Proton for verbose logging (PROTON_LOG=1)")
	cmd.MarkFlagsMutuallyExclusive("proton", "custom")
	return cmd
}
