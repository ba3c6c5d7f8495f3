package cmd

import (
	"github.com/spf13/cobra"

	"github.com/swipe-io/aconfig"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(aconfig.Version)
		},
	}
}
