package cmd

import (
	"github.com/spf13/cobra"
)

func newSDKCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sdk",
		Short: "Check the installed SDK version",
		Long:  "Looks up the SDK through its environment variable and offers to install it when missing or outdated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newInstaller(cmd).EnsureSDK(cmd.Context())
			if err != nil {
				return err
			}
			Logger.Debug("sdk check finished", "state", res.State)
			return nil
		},
	}
}
