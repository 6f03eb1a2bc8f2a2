package controller

import (
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/spf13/cobra"
)

// NewUpgradeCmd creates and returns the controller upgrade command.
//
// Install and upgrade share the same install-or-upgrade semantics; upgrade
// exists so chart version bumps read naturally in scripts and shell history.
func NewUpgradeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the ARC controller",
		Long: `Upgrade the gha-runner-scale-set-controller release to the configured ` +
			`chart version and wait for its deployment to become ready. A missing ` +
			`release is installed.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runInstall(cmd, manager, "Upgrade ARC controller...")
	}

	return cmd
}
