// Package controller contains commands for managing the ARC controller Helm
// release.
package controller

import (
	"fmt"

	"github.com/spf13/cobra"
)

// controllerSelector matches the pods the controller chart deploys.
const controllerSelector = "app.kubernetes.io/part-of=gha-rs-controller"

// NewControllerCmd creates the parent controller command and wires lifecycle
// subcommands beneath it.
func NewControllerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controller",
		Short: "Manage the ARC controller",
		Long: `Manage the gha-runner-scale-set-controller Helm release: install, ` +
			`upgrade, uninstall, status, and logs.`,
		Args:         cobra.NoArgs,
		RunE:         handleControllerRunE,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewInstallCmd())
	cmd.AddCommand(NewUpgradeCmd())
	cmd.AddCommand(NewUninstallCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewLogsCmd())

	return cmd
}

func handleControllerRunE(cmd *cobra.Command, _ []string) error {
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying controller command help: %w", err)
	}

	return nil
}
