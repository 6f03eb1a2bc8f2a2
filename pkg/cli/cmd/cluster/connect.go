package cluster

import (
	"context"
	"fmt"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/client/gke"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Injected for testability.
var newGKEClient = func(ctx context.Context) (gke.Interface, error) {
	return gke.NewClient(ctx)
}

// clusterOverrides carry flag values that take precedence over the loaded
// configuration.
type clusterOverrides struct {
	project  string
	location string
	name     string
}

func (o *clusterOverrides) apply(spec *v1alpha1.ClusterSpec) {
	if o.project != "" {
		spec.Project = o.project
	}

	if o.location != "" {
		spec.Location = o.location
	}

	if o.name != "" {
		spec.Name = o.name
	}
}

func registerClusterFlags(cmd *cobra.Command, overrides *clusterOverrides) {
	cmd.Flags().StringVar(&overrides.project, "project", "", "Google Cloud project ID")
	cmd.Flags().StringVar(&overrides.location, "location", "", "cluster zone or region")
	cmd.Flags().StringVar(&overrides.name, "cluster", "", "GKE cluster name")
}

func validateClusterSpec(spec *v1alpha1.ClusterSpec) error {
	if spec.Project == "" {
		return v1alpha1.ErrClusterProjectRequired
	}

	if spec.Location == "" {
		return v1alpha1.ErrClusterLocationRequired
	}

	if spec.Name == "" {
		return v1alpha1.ErrClusterNameRequired
	}

	return nil
}

// NewConnectCmd creates and returns the connect command.
func NewConnectCmd() *cobra.Command {
	overrides := &clusterOverrides{}

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Fetch GKE credentials and point kubectl at the cluster",
		Long: `Resolve the GKE cluster through the Google Cloud API and merge its ` +
			`credentials into the kubeconfig. The new context uses the ` +
			`gke-gcloud-auth-plugin and becomes current, matching what ` +
			`gcloud container clusters get-credentials writes.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)
	registerClusterFlags(cmd, overrides)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runConnect(cmd, manager, overrides)
	}

	return cmd
}

// runConnect implements the connect command.
func runConnect(
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
	notify.Titlef(out, "Connect to GKE cluster...")
	tmr.NewStage()
	notify.Activityf(
		out,
		"resolving cluster %q in %s/%s",
		clusterSpec.Name,
		clusterSpec.Project,
		clusterSpec.Location,
	)

	client, err := newGKEClient(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to create gke client: %w", err)
	}

	info, err := client.GetCluster(
		cmd.Context(),
		clusterSpec.Project,
		clusterSpec.Location,
		clusterSpec.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to resolve cluster: %w", err)
	}

	kubeconfigPath := k8s.ExpandPath(clusterSpec.Kubeconfig)

	err = gke.WriteCredentials(kubeconfigPath, clusterSpec.Project, info)
	if err != nil {
		return fmt.Errorf("failed to write cluster credentials: %w", err)
	}

	contextName := gke.ContextName(clusterSpec.Project, info.Location, info.Name)
	notify.SuccessWithTimerf(out, tmr, "kubeconfig context %q is now current", contextName)

	return nil
}
