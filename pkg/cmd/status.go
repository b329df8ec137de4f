package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentpkg/sdkprov/pkg/status"
)

func newStatusCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show what is provisioned",
		Long:  "Reports the SDK and debug-library state without prompting, downloading or writing anything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := status.ParseFormat(output)
			if err != nil {
				return err
			}
			report, err := status.Collect(Cfg, newProbe(), dependencyStore())
			if err != nil {
				return err
			}
			return status.Write(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")

	return cmd
}
