package cmd

import (
	"fmt"

	"github.com/arcops/arcctl/pkg/cli/cmd/cluster"
	"github.com/arcops/arcctl/pkg/cli/cmd/controller"
	"github.com/arcops/arcctl/pkg/cli/cmd/runners"
	"github.com/arcops/arcctl/pkg/cli/cmd/secret"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arcctl",
		Short: "arcctl deploys GitHub Actions Runner Controller on GKE",
		Long: `arcctl deploys and operates GitHub Actions Runner Controller (ARC) on ` +
			`Google Kubernetes Engine: cluster credentials, the controller chart, ` +
			`runner scale sets, and the GitHub auth secret.`,
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.AddCommand(cluster.NewClusterCmd())
	cmd.AddCommand(controller.NewControllerCmd())
	cmd.AddCommand(runners.NewRunnersCmd())
	cmd.AddCommand(secret.NewSecretCmd())

	return cmd
}

// Execute runs the provided root command.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying root command help: %w", err)
	}

	return nil
}
