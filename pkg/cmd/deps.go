package cmd

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/agentpkg/sdkprov/pkg/debuglibs"
	"github.com/agentpkg/sdkprov/pkg/installer"
	"github.com/agentpkg/sdkprov/pkg/launch"
	"github.com/agentpkg/sdkprov/pkg/prompt"
	"github.com/agentpkg/sdkprov/pkg/sdk"
	"github.com/agentpkg/sdkprov/pkg/source"
	"github.com/agentpkg/sdkprov/pkg/store"
)

// Overridable in tests.
var (
	lookupEnv   sdk.LookupEnvFunc
	newLauncher = func() launch.Launcher { return launch.Opener{} }
	interactive = prompt.IsInteractive
)

func dependencyStore() store.Store {
	return store.New(Cfg.Paths(ProjectRoot).DependencyDir)
}

func newProbe() *sdk.Probe {
	return sdk.NewProbe(Cfg.EnvVar, lookupEnv)
}

func newDownloader() source.Downloader {
	return &source.HTTP{Client: &http.Client{Timeout: Cfg.DownloadTimeout}}
}

// confirmer honours --yes/--no, and declines when nobody is there to ask.
func confirmer(cmd *cobra.Command) prompt.Confirmer {
	switch {
	case flagYes:
		return prompt.Auto{Answer: true, Out: cmd.OutOrStdout()}
	case flagNo:
		return prompt.Auto{Answer: false, Out: cmd.OutOrStdout()}
	case !interactive():
		Logger.Debug("not a terminal, declining install prompt")
		return prompt.Auto{Answer: false, Out: cmd.OutOrStdout()}
	default:
		return prompt.Huh{}
	}
}

func newInstaller(cmd *cobra.Command) *installer.Installer {
	return &installer.Installer{
		Config:     Cfg,
		Store:      dependencyStore(),
		Probe:      newProbe(),
		Prompt:     confirmer(cmd),
		Downloader: newDownloader(),
		Launcher:   newLauncher(),
		Out:        cmd.OutOrStdout(),
		Logger:     Logger,
	}
}

func newProvisioner(cmd *cobra.Command) *debuglibs.Provisioner {
	return &debuglibs.Provisioner{
		Config:     Cfg,
		Store:      dependencyStore(),
		Downloader: newDownloader(),
		Out:        cmd.OutOrStdout(),
		Logger:     Logger,
	}
}
