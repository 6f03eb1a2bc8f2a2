package runners

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/client/helm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
)

func injectClients(t *testing.T, helmClient helm.Interface, clientset kubernetes.Interface) {
	t.Helper()

	originalHelm := helpers.NewHelmClient
	originalClientset := helpers.NewClientset

	helpers.NewHelmClient = func(_, _ string, _ io.Writer) (helm.Interface, error) {
		return helmClient, nil
	}
	helpers.NewClientset = func(_, _ string) (kubernetes.Interface, error) {
		return clientset, nil
	}

	t.Cleanup(func() {
		helpers.NewHelmClient = originalHelm
		helpers.NewClientset = originalClientset
	})
}

func writeRunnersConfig(t *testing.T) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "arcctl.yaml")
	content := `spec:
  cluster:
    project: my-project
    location: us-central1
    name: build-infra
  runners:
    - name: ci-runners
      githubConfigUrl: https://github.com/my-org
      minRunners: 1
      maxRunners: 5
    - name: release-runners
      githubConfigUrl: https://github.com/my-org/release
      maxRunners: 2
`

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	return configPath
}

func authSecret() *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "github-auth",
			Namespace: "arc-runners",
		},
		Type: corev1.SecretTypeOpaque,
		Data: map[string][]byte{"github_token": []byte("ghp_test")},
	}
}

func executeCmd(t *testing.T, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestInstallCmdInstallsAllScaleSets(t *testing.T) {
	helmClient := helm.NewMockInterface(t)
	injectClients(t, helmClient, fake.NewClientset(authSecret()))

	installed := make([]string, 0, 2)

	helmClient.EXPECT().
		InstallOrUpgradeChart(mock.Anything, mock.Anything).
		Run(func(_ context.Context, spec *helm.ChartSpec) {
			installed = append(installed, spec.ReleaseName)
		}).
		Return(&helm.ReleaseInfo{}, nil).
		Times(2)

	output, err := executeCmd(t, NewInstallCmd(), []string{"--config", writeRunnersConfig(t)})

	require.NoError(t, err)
	assert.Equal(t, []string{"ci-runners", "release-runners"}, installed)
	assert.Contains(t, output, `scale set "ci-runners" installed`)
	assert.Contains(t, output, `scale set "release-runners" installed`)
}

func TestInstallCmdNameFilter(t *testing.T) {
	helmClient := helm.NewMockInterface(t)
	injectClients(t, helmClient, fake.NewClientset(authSecret()))

	helmClient.EXPECT().
		InstallOrUpgradeChart(mock.Anything, mock.MatchedBy(func(spec *helm.ChartSpec) bool {
			return spec.ReleaseName == "ci-runners"
		})).
		Return(&helm.ReleaseInfo{}, nil).
		Once()

	_, err := executeCmd(
		t,
		NewInstallCmd(),
		[]string{"--config", writeRunnersConfig(t), "--name", "ci-runners"},
	)

	require.NoError(t, err)
}

func TestInstallCmdUnknownName(t *testing.T) {
	injectClients(t, helm.NewMockInterface(t), fake.NewClientset(authSecret()))

	_, err := executeCmd(
		t,
		NewInstallCmd(),
		[]string{"--config", writeRunnersConfig(t), "--name", "nope"},
	)

	require.ErrorIs(t, err, ErrRunnerNotConfigured)
}

func TestInstallCmdNoRunnersConfigured(t *testing.T) {
	injectClients(t, helm.NewMockInterface(t), fake.NewClientset())

	configPath := filepath.Join(t.TempDir(), "arcctl.yaml")
	content := `spec:
  cluster:
    project: my-project
    location: us-central1
    name: build-infra
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	_, err := executeCmd(t, NewInstallCmd(), []string{"--config", configPath})

	require.ErrorIs(t, err, ErrNoRunnersConfigured)
}

func TestInstallCmdMissingConfigURL(t *testing.T) {
	injectClients(t, helm.NewMockInterface(t), fake.NewClientset(authSecret()))

	configPath := filepath.Join(t.TempDir(), "arcctl.yaml")
	content := `spec:
  cluster:
    project: my-project
    location: us-central1
    name: build-infra
  runners:
    - name: ci-runners
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	_, err := executeCmd(t, NewInstallCmd(), []string{"--config", configPath})

	require.ErrorIs(t, err, v1alpha1.ErrRunnerConfigURLRequired)
}

func TestUninstallCmd(t *testing.T) {
	helmClient := helm.NewMockInterface(t)
	injectClients(t, helmClient, fake.NewClientset())

	helmClient.EXPECT().
		UninstallRelease(mock.Anything, "ci-runners", "arc-runners").
		Return(nil).
		Once()
	helmClient.EXPECT().
		UninstallRelease(mock.Anything, "release-runners", "arc-runners").
		Return(nil).
		Once()

	output, err := executeCmd(t, NewUninstallCmd(), []string{"--config", writeRunnersConfig(t)})

	require.NoError(t, err)
	assert.Contains(t, output, `scale set "ci-runners" removed`)
}

func TestListCmd(t *testing.T) {
	helmClient := helm.NewMockInterface(t)

	listenerPod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "ci-runners-754b578d-listener",
			Namespace: "arc-runners",
		},
		Spec: corev1.PodSpec{Containers: []corev1.Container{{Name: "listener"}}},
		Status: corev1.PodStatus{
			Phase:             corev1.PodRunning,
			ContainerStatuses: []corev1.ContainerStatus{{Name: "listener", Ready: true}},
		},
	}
	injectClients(t, helmClient, fake.NewClientset(listenerPod))

	helmClient.EXPECT().
		GetRelease(mock.Anything, "ci-runners", "arc-runners").
		Return(&helm.ReleaseInfo{
			Name:      "ci-runners",
			Namespace: "arc-runners",
			Revision:  1,
			Status:    "deployed",
		}, nil).
		Once()
	helmClient.EXPECT().
		GetRelease(mock.Anything, "release-runners", "arc-runners").
		Return(nil, helm.ErrReleaseNotFound).
		Once()

	output, err := executeCmd(t, NewListCmd(), []string{"--config", writeRunnersConfig(t)})

	require.NoError(t, err)
	assert.Contains(t, output, "arc-runners/ci-runners")
	assert.Contains(t, output, `scale set "release-runners" is not installed`)
	assert.Contains(t, output, "ci-runners-754b578d-listener")
}
