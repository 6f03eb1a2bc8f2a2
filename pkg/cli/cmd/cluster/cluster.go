// Package cluster contains commands for connecting to and disconnecting from
// the GKE cluster hosting ARC.
package cluster

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClusterCmd creates the parent cluster command and wires connection
// subcommands beneath it.
func NewClusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Manage the connection to the GKE cluster",
		Long: `Manage the kubeconfig connection to the GKE cluster hosting ARC, ` +
			`equivalent to gcloud container clusters get-credentials.`,
		Args:         cobra.NoArgs,
		RunE:         handleClusterRunE,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewConnectCmd())
	cmd.AddCommand(NewDisconnectCmd())

	return cmd
}

func handleClusterRunE(cmd *cobra.Command, _ []string) error {
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying cluster command help: %w", err)
	}

	return nil
}
