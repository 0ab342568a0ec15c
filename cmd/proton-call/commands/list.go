package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed Proton versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := appCtx.Index()
			if err != nil {
				return err
			}

			fmt.Printf("Indexed %d Proton versions in %s\n", idx.Len(), idx.Dir())
			for _, v := range idx.Versions() {
				path, _ := idx.Get(v)
				fmt.Printf("  Proton %s\t%s\n", v, path)
			}
			return nil
		},
	}
}
