package cluster

import (
	"fmt"

	"github.com/arcops/arcctl/pkg/client/gke"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewDisconnectCmd creates and returns the disconnect command.
func NewDisconnectCmd() *cobra.Command {
	overrides := &clusterOverrides{}

	cmd := &cobra.Command{
		Use:   "disconnect",
		Short: "Remove the cluster's kubeconfig entry",
		Long: `Remove the cluster, context, and user entries the connect command ` +
			`wrote to the kubeconfig. Missing entries are a no-op.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)
	registerClusterFlags(cmd, overrides)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runDisconnect(cmd, manager, overrides)
	}

	return cmd
}

// runDisconnect implements the disconnect command.
func runDisconnect(
	cmd *cobra.Command,
	manager *configmanager.ConfigManager,
	overrides *clusterOverrides,
) error {
	tmr := timer.New()
	tmr.Start()

	config, err := manager.LoadConfig(tmr)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clusterSpec := &config.Spec.Cluster
	overrides.apply(clusterSpec)

	err = validateClusterSpec(clusterSpec)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	kubeconfigPath := k8s.ExpandPath(clusterSpec.Kubeconfig)

	err = gke.RemoveCredentials(
		kubeconfigPath,
		clusterSpec.Project,
		clusterSpec.Location,
		clusterSpec.Name,
		out,
	)
	if err != nil {
		return fmt.Errorf("failed to remove cluster credentials: %w", err)
	}

	contextName := gke.ContextName(clusterSpec.Project, clusterSpec.Location, clusterSpec.Name)
	notify.SuccessWithTimerf(out, tmr, "kubeconfig entry %q removed", contextName)

	return nil
}
