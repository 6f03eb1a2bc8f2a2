package configmanager_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `apiVersion: arcctl.dev/v1alpha1
kind: Deployment
spec:
  cluster:
    project: my-project
    location: us-central1
    name: build-infra
    timeout: 2m
  controller:
    namespace: arc-systems
  runners:
    - name: builders
      githubConfigUrl: https://github.com/my-org
      minRunners: 1
      maxRunners: 8
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "arcctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func newCommandWithConfig(t *testing.T, path string) (*cobra.Command, *configmanager.ConfigManager) {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	manager := configmanager.NewCommandConfigManager(cmd)
	require.NoError(t, cmd.Flags().Set(configmanager.ConfigFlagName, path))

	return cmd, manager
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	_, manager := newCommandWithConfig(t, path)

	cfg, err := manager.LoadConfigSilent()
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.Spec.Cluster.Project)
	assert.Equal(t, "us-central1", cfg.Spec.Cluster.Location)
	assert.Equal(t, "build-infra", cfg.Spec.Cluster.Name)
	assert.Equal(t, 2*time.Minute, cfg.Spec.Cluster.Timeout.Duration)

	require.Len(t, cfg.Spec.Runners, 1)
	assert.Equal(t, "builders", cfg.Spec.Runners[0].Name)
	assert.Equal(t, "https://github.com/my-org", cfg.Spec.Runners[0].GitHubConfigURL)
	assert.Equal(t, 1, cfg.Spec.Runners[0].MinRunners)
	assert.Equal(t, 8, cfg.Spec.Runners[0].MaxRunners)

	// Defaults fill fields the file omitted.
	assert.Equal(t, "arc-runners", cfg.Spec.Runners[0].Namespace)
	assert.Equal(t, "github-auth", cfg.Spec.Auth.SecretName)
}

func TestLoadConfigCachesResult(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	_, manager := newCommandWithConfig(t, path)

	first, err := manager.LoadConfigSilent()
	require.NoError(t, err)

	second, err := manager.LoadConfigSilent()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, manager := newCommandWithConfig(t, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := manager.LoadConfigSilent()
	require.Error(t, err)
}

func TestLoadConfigNotifiesSource(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, sampleConfig)
	cmd := &cobra.Command{Use: "test"}

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	manager := configmanager.NewCommandConfigManager(cmd)
	require.NoError(t, cmd.Flags().Set(configmanager.ConfigFlagName, path))

	_, err := manager.LoadConfig(nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "config loaded from")
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "spec: [broken")
	_, manager := newCommandWithConfig(t, path)

	_, err := manager.LoadConfigSilent()
	require.Error(t, err)
}
