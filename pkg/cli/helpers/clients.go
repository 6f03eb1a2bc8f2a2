// Package helpers provides shared wiring for arcctl commands.
package helpers

import (
	"fmt"
	"io"
	"time"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/client/helm"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
	"k8s.io/client-go/kubernetes"
)

//nolint:gochecknoglobals // Injected for testability.
var NewClientset = k8s.NewClientset

//nolint:gochecknoglobals // Injected for testability.
var NewHelmClient = func(kubeconfig, kubeContext string, logWriter io.Writer) (helm.Interface, error) {
	return helm.NewClient(kubeconfig, kubeContext, logWriter)
}

// Clients bundles the loaded configuration with the clients commands act
// through.
type Clients struct {
	Config    *v1alpha1.Deployment
	Helm      helm.Interface
	Clientset kubernetes.Interface
}

// BuildClients loads the configuration and constructs the Helm and Kubernetes
// clients against the configured kubeconfig.
func BuildClients(
	cmd *cobra.Command,
	manager *configmanager.ConfigManager,
	tmr timer.Timer,
) (*Clients, error) {
	config, err := manager.LoadConfig(tmr)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	kubeconfig := k8s.ExpandPath(config.Spec.Cluster.Kubeconfig)
	kubeContext := config.Spec.Cluster.Context

	helmClient, err := NewHelmClient(kubeconfig, kubeContext, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to create helm client: %w", err)
	}

	clientset, err := NewClientset(kubeconfig, kubeContext)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return &Clients{Config: config, Helm: helmClient, Clientset: clientset}, nil
}

// TimeoutFor returns the configured cluster timeout, falling back to the
// default when unset.
func TimeoutFor(config *v1alpha1.Deployment) time.Duration {
	if config.Spec.Cluster.Timeout.Duration > 0 {
		return config.Spec.Cluster.Timeout.Duration
	}

	return v1alpha1.DefaultTimeout
}
