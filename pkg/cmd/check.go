package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpkg/sdkprov/pkg/sdk"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the SDK and provision its debug libraries",
		Long: "Runs the SDK check, offering to install the SDK when it is missing or the wrong version, " +
			"then makes sure the debug libraries are extracted. Stops after launching an installer.",
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	res, err := newInstaller(cmd).EnsureSDK(ctx)
	if err != nil {
		return err
	}
	switch res.State {
	case sdk.StateInstallTriggered:
		Logger.Debug("installer launched, stopping")
		return nil
	case sdk.StateValid:
	default:
		fmt.Fprintf(out, "%s SDK not installed.\n", Cfg.Name)
	}

	if _, err := newProvisioner(cmd).Ensure(ctx); err != nil {
		fmt.Fprintf(out, "%s SDK debug libs not found.\n", Cfg.Name)
		return err
	}
	return nil
}
