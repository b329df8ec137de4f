package cmd

import (
	"github.com/spf13/cobra"
)

func newDebugLibsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debug-libs",
		Short: "Download and extract the SDK debug libraries",
		Long:  "Extracts the SDK debug-library archive into the dependency directory unless it has been extracted already.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newProvisioner(cmd).Ensure(cmd.Context())
			return err
		},
	}
}
