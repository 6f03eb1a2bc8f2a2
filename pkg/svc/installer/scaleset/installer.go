// Package scalesetinstaller installs gha-runner-scale-set charts, one Helm
// release per runner scale set.
package scalesetinstaller

import (
	"context"
	"fmt"
	"time"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/client/helm"
	"github.com/arcops/arcctl/pkg/k8s"
	"k8s.io/client-go/kubernetes"
)

// Installer installs or upgrades a single runner scale set.
//
// It implements installer.Installer semantics (Install/Uninstall).
type Installer struct {
	client     helm.Interface
	clientset  kubernetes.Interface
	spec       v1alpha1.ScaleSetSpec
	secretName string
	timeout    time.Duration
}

// NewInstaller creates a scale set installer. secretName is the GitHub auth
// secret the scale set references via githubConfigSecret; it must exist in
// the scale set's namespace before Install is called.
func NewInstaller(
	client helm.Interface,
	clientset kubernetes.Interface,
	spec v1alpha1.ScaleSetSpec,
	secretName string,
	timeout time.Duration,
) *Installer {
	return &Installer{
		client:     client,
		clientset:  clientset,
		spec:       spec,
		secretName: secretName,
		timeout:    timeout,
	}
}

// Install ensures the runner namespace and auth secret exist, then installs
// or upgrades the scale set chart. A missing auth secret fails fast instead
// of leaving the listener pod crash-looping.
func (i *Installer) Install(ctx context.Context) error {
	err := k8s.EnsureNamespace(ctx, i.clientset, i.spec.Namespace)
	if err != nil {
		return fmt.Errorf("failed to ensure runner namespace: %w", err)
	}

	_, err = k8s.GetSecret(ctx, i.clientset, i.spec.Namespace, i.secretName)
	if err != nil {
		return fmt.Errorf(
			"github auth secret must exist before installing a scale set (create it with `arcctl secret create`): %w",
			err,
		)
	}

	chartSpec := &helm.ChartSpec{
		ReleaseName: i.spec.Name,
		ChartRef:    i.spec.Chart,
		Version:     i.spec.Version,
		Namespace:   i.spec.Namespace,
		Wait:        true,
		Timeout:     i.timeout,
		Values:      i.chartValues(),
	}

	_, err = i.client.InstallOrUpgradeChart(ctx, chartSpec)
	if err != nil {
		return fmt.Errorf("failed to install scale set chart: %w", err)
	}

	return nil
}

// Uninstall removes the Helm release for the scale set.
func (i *Installer) Uninstall(ctx context.Context) error {
	err := i.client.UninstallRelease(ctx, i.spec.Name, i.spec.Namespace)
	if err != nil {
		return fmt.Errorf("failed to uninstall scale set release: %w", err)
	}

	return nil
}

// chartValues merges user-provided values with the connection settings the
// chart requires. Connection settings win over user values.
func (i *Installer) chartValues() map[string]any {
	values := make(map[string]any, len(i.spec.Values)+4)
	for key, value := range i.spec.Values {
		values[key] = value
	}

	values["githubConfigUrl"] = i.spec.GitHubConfigURL
	values["githubConfigSecret"] = i.secretName
	values["minRunners"] = i.spec.MinRunners
	values["maxRunners"] = i.spec.MaxRunners

	return values
}
