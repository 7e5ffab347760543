package cmd

import (
	"github.com/spf13/cobra"

	"docaudit/internal/version"
)

// newVersionCmd creates and returns the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.NewInfo()
			if short {
				return info.WriteShort(cmd.OutOrStdout())
			}
			return info.WriteFull(cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Show only version number")
	return cmd
}
