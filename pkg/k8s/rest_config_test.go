package k8s_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

func TestDefaultKubeconfigPath(t *testing.T) {
	t.Parallel()

	path := k8s.DefaultKubeconfigPath()
	assert.True(t, strings.HasSuffix(path, filepath.Join(".kube", "config")))
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".kube", "config"), k8s.ExpandPath("~/.kube/config"))
	assert.Equal(t, homeDir, k8s.ExpandPath("~"))
	assert.Equal(t, "/etc/kube/config", k8s.ExpandPath("/etc/kube/config"))
	assert.Equal(t, "relative/path", k8s.ExpandPath("relative/path"))
}

func TestBuildRESTConfigEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := k8s.BuildRESTConfig("", "")
	require.ErrorIs(t, err, k8s.ErrKubeconfigPathEmpty)
}

func TestBuildRESTConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config")

	kubeConfig := clientcmdapi.NewConfig()
	kubeConfig.Clusters["test"] = &clientcmdapi.Cluster{Server: "https://203.0.113.10"}
	kubeConfig.AuthInfos["test"] = &clientcmdapi.AuthInfo{Token: "token"}
	kubeConfig.Contexts["test"] = &clientcmdapi.Context{Cluster: "test", AuthInfo: "test"}
	kubeConfig.CurrentContext = "test"
	require.NoError(t, clientcmd.WriteToFile(*kubeConfig, path))

	restConfig, err := k8s.BuildRESTConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "https://203.0.113.10", restConfig.Host)

	restConfig, err = k8s.BuildRESTConfig(path, "test")
	require.NoError(t, err)
	assert.Equal(t, "https://203.0.113.10", restConfig.Host)
}

func TestBuildRESTConfigUnknownContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config")

	kubeConfig := clientcmdapi.NewConfig()
	kubeConfig.Clusters["test"] = &clientcmdapi.Cluster{Server: "https://203.0.113.10"}
	kubeConfig.AuthInfos["test"] = &clientcmdapi.AuthInfo{Token: "token"}
	kubeConfig.Contexts["test"] = &clientcmdapi.Context{Cluster: "test", AuthInfo: "test"}
	kubeConfig.CurrentContext = "test"
	require.NoError(t, clientcmd.WriteToFile(*kubeConfig, path))

	_, err := k8s.BuildRESTConfig(path, "missing")
	require.Error(t, err)
}
