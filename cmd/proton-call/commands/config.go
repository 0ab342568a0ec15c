package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// config: print the effective configuration after defaulting.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appCtx.Config
			fmt.Printf("config: %s\n", appCtx.ConfigPath)
			fmt.Printf("data:   %s\n", cfg.Data)
			fmt.Printf("steam:  %s\n", cfg.Steam)
			fmt.Printf("common: %s\n", cfg.Common)
			fmt.Printf("log:    %t\n", cfg.Log)
			return nil
		},
	}
}
