package controllerinstaller_test

import (
	"context"
	"testing"
	"time"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/client/helm"
	controllerinstaller "github.com/arcops/arcctl/pkg/svc/installer/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
)

func controllerSpec() v1alpha1.ControllerSpec {
	return v1alpha1.ControllerSpec{
		Namespace:   "arc-systems",
		ReleaseName: "arc",
		Chart:       v1alpha1.DefaultControllerChart,
		Version:     "0.12.1",
	}
}

func readyControllerDeployment() *appsv1.Deployment {
	replicas := int32(1)

	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "arc-gha-rs-controller",
			Namespace: "arc-systems",
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
		},
		Status: appsv1.DeploymentStatus{
			ReadyReplicas: 1,
		},
	}
}

func newInstaller(
	t *testing.T,
	clientset kubernetes.Interface,
) (*controllerinstaller.Installer, *helm.MockInterface) {
	t.Helper()

	client := helm.NewMockInterface(t)
	installer := controllerinstaller.NewInstaller(client, clientset, controllerSpec(), time.Minute)

	return installer, client
}

func TestDeploymentName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "arc-gha-rs-controller", controllerinstaller.DeploymentName("arc"))
}

func TestInstaller_Install(t *testing.T) {
	t.Parallel()

	clientset := fake.NewClientset(readyControllerDeployment())
	installer, client := newInstaller(t, clientset)

	client.EXPECT().
		InstallOrUpgradeChart(mock.Anything, mock.MatchedBy(func(spec *helm.ChartSpec) bool {
			return spec.ReleaseName == "arc" &&
				spec.Namespace == "arc-systems" &&
				spec.ChartRef == v1alpha1.DefaultControllerChart &&
				spec.CreateNamespace &&
				spec.Wait
		})).
		Return(&helm.ReleaseInfo{Name: "arc", Revision: 1}, nil).
		Once()

	err := installer.Install(context.Background())

	require.NoError(t, err)
}

func TestInstaller_Install_HelmError(t *testing.T) {
	t.Parallel()

	installer, client := newInstaller(t, fake.NewClientset())

	client.EXPECT().
		InstallOrUpgradeChart(mock.Anything, mock.Anything).
		Return(nil, assert.AnError).
		Once()

	err := installer.Install(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to install controller chart")
	require.ErrorIs(t, err, assert.AnError)
}

func TestInstaller_Uninstall(t *testing.T) {
	t.Parallel()

	installer, client := newInstaller(t, fake.NewClientset())

	client.EXPECT().
		UninstallRelease(mock.Anything, "arc", "arc-systems").
		Return(nil).
		Once()

	err := installer.Uninstall(context.Background())

	require.NoError(t, err)
}

func TestInstaller_Uninstall_HelmError(t *testing.T) {
	t.Parallel()

	installer, client := newInstaller(t, fake.NewClientset())

	client.EXPECT().
		UninstallRelease(mock.Anything, "arc", "arc-systems").
		Return(assert.AnError).
		Once()

	err := installer.Uninstall(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to uninstall controller release")
	require.ErrorIs(t, err, assert.AnError)
}
