// Package controllerinstaller installs the gha-runner-scale-set-controller
// chart and waits for its deployment to become ready.
package controllerinstaller

import (
	"context"
	"fmt"
	"time"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/client/helm"
	"github.com/arcops/arcctl/pkg/k8s/readiness"
	"k8s.io/client-go/kubernetes"
)

// deploymentSuffix is appended to the release name by the controller chart.
const deploymentSuffix = "-gha-rs-controller"

// Installer installs or upgrades the Actions Runner Controller.
//
// It implements installer.Installer semantics (Install/Uninstall) so it can
// be orchestrated alongside runner scale set installs.
type Installer struct {
	client    helm.Interface
	clientset kubernetes.Interface
	spec      v1alpha1.ControllerSpec
	timeout   time.Duration
}

// NewInstaller creates a controller installer. The clientset is used to wait
// for the controller deployment after the chart is applied.
func NewInstaller(
	client helm.Interface,
	clientset kubernetes.Interface,
	spec v1alpha1.ControllerSpec,
	timeout time.Duration,
) *Installer {
	return &Installer{
		client:    client,
		clientset: clientset,
		spec:      spec,
		timeout:   timeout,
	}
}

// DeploymentName returns the name of the deployment the chart creates for
// the given release.
func DeploymentName(releaseName string) string {
	return releaseName + deploymentSuffix
}

// Install installs or upgrades the controller via its Helm chart and waits
// for the controller deployment to report ready replicas.
func (i *Installer) Install(ctx context.Context) error {
	chartSpec := &helm.ChartSpec{
		ReleaseName:     i.spec.ReleaseName,
		ChartRef:        i.spec.Chart,
		Version:         i.spec.Version,
		Namespace:       i.spec.Namespace,
		CreateNamespace: true,
		Wait:            true,
		Timeout:         i.timeout,
		Values:          i.spec.Values,
	}

	_, err := i.client.InstallOrUpgradeChart(ctx, chartSpec)
	if err != nil {
		return fmt.Errorf("failed to install controller chart: %w", err)
	}

	err = readiness.WaitForDeploymentReady(
		ctx,
		i.clientset,
		i.spec.Namespace,
		DeploymentName(i.spec.ReleaseName),
		i.timeout,
	)
	if err != nil {
		return fmt.Errorf("failed to wait for controller deployment: %w", err)
	}

	return nil
}

// Uninstall removes the Helm release for the controller.
func (i *Installer) Uninstall(ctx context.Context) error {
	err := i.client.UninstallRelease(ctx, i.spec.ReleaseName, i.spec.Namespace)
	if err != nil {
		return fmt.Errorf("failed to uninstall controller release: %w", err)
	}

	return nil
}
