package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentpkg/sdkprov/pkg/project"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write an sdkprov.toml for this project",
		Long:  "Creates sdkprov.toml with the resolved settings and adds the dependency directory to .gitignore.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := project.Init(ProjectRoot, Cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created %s\n", path)

	entries := project.GitignoreEntries(Cfg)
	ok, err := confirmer(cmd).Confirm(fmt.Sprintf("Add %s to .gitignore?", entries[0]))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	added, err := project.EnsureGitignore(ProjectRoot, entries)
	if err != nil {
		return err
	}
	for _, entry := range added {
		fmt.Fprintf(out, "Added %s to .gitignore\n", entry)
	}
	return nil
}
