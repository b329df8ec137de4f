package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/agentpkg/sdkprov/pkg/config"
	"github.com/agentpkg/sdkprov/pkg/logging"
)

var (
	flagRoot            string
	flagVerbose         bool
	flagYes             bool
	flagNo              bool
	flagRequiredVersion string

	// Cfg and ProjectRoot are resolved by PersistentPreRunE and available to
	// every subcommand.
	Cfg         *config.Config
	ProjectRoot string
	Logger      *log.Logger
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sdkprov",
		Short: "SDK dependency provisioner",
		Long: "sdkprov checks that the required graphics SDK is installed, offers to download its installer, " +
			"and unpacks the SDK debug libraries into the project's dependency directory.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logging.New(cmd.ErrOrStderr(), flagVerbose)

			dir, err := resolveRoot(flagRoot)
			if err != nil {
				return err
			}
			ProjectRoot = dir

			overrides := map[string]any{}
			if cmd.Flags().Changed("required-version") {
				overrides["required_version"] = flagRequiredVersion
			}
			cfg, err := config.Load(ProjectRoot, overrides)
			if err != nil {
				return err
			}
			Cfg = cfg
			Logger.Debug("resolved config", "root", ProjectRoot, "sdk", cfg.Name, "version", cfg.RequiredVersion)
			return nil
		},
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&flagRoot, "root", "", "project root containing the dependency directory (default: working directory)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.BoolVarP(&flagYes, "yes", "y", false, "answer yes to the install prompt")
	flags.BoolVar(&flagNo, "no", false, "answer no to the install prompt")
	flags.StringVar(&flagRequiredVersion, "required-version", "", "override the required SDK version")
	root.MarkFlagsMutuallyExclusive("yes", "no")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newSDKCmd())
	root.AddCommand(newDebugLibsCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newInitCmd())

	return root
}

// resolveRoot expands ~ and makes dir absolute. An empty dir means the
// working directory.
func resolveRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", dir, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	return abs, nil
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
