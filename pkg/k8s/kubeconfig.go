package k8s

import (
	"fmt"
	"io"
	"os"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

// kubeconfigFileMode is the file mode for kubeconfig files.
const kubeconfigFileMode = 0o600

// RemoveKubeconfigEntries removes the cluster, context, and user entries with
// the given names from the kubeconfig file, leaving other entries intact. The
// current-context is cleared when it pointed at the removed context. A missing
// kubeconfig file is a no-op.
func RemoveKubeconfigEntries(
	kubeconfigPath string,
	clusterName string,
	contextName string,
	userName string,
	logWriter io.Writer,
) error {
	kubeconfigPath = ExpandPath(kubeconfigPath)

	_, statErr := os.Stat(kubeconfigPath)
	if os.IsNotExist(statErr) {
		return nil
	}

	kubeConfig, err := clientcmd.LoadFromFile(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	if !hasEntriesToRemove(kubeConfig, contextName, clusterName, userName) {
		return nil
	}

	delete(kubeConfig.Contexts, contextName)
	delete(kubeConfig.Clusters, clusterName)
	delete(kubeConfig.AuthInfos, userName)

	if kubeConfig.CurrentContext == contextName {
		kubeConfig.CurrentContext = ""
	}

	_, _ = fmt.Fprintf(logWriter, "Removed kubeconfig entries for context %q\n", contextName)

	err = clientcmd.WriteToFile(*kubeConfig, kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}

	return nil
}

// hasEntriesToRemove checks whether any of the named entries exist, or
// whether the current-context points at the named context.
func hasEntriesToRemove(
	kubeConfig *clientcmdapi.Config,
	contextName string,
	clusterName string,
	userName string,
) bool {
	_, hasContext := kubeConfig.Contexts[contextName]
	_, hasCluster := kubeConfig.Clusters[clusterName]
	_, hasUser := kubeConfig.AuthInfos[userName]
	isCurrentContext := kubeConfig.CurrentContext == contextName

	return hasContext || hasCluster || hasUser || isCurrentContext
}

// MergeKubeconfigEntry inserts or replaces a cluster/user/context triple in
// the kubeconfig file and makes the context current. The file is created when
// missing.
func MergeKubeconfigEntry(
	kubeconfigPath string,
	name string,
	cluster *clientcmdapi.Cluster,
	authInfo *clientcmdapi.AuthInfo,
) error {
	kubeconfigPath = ExpandPath(kubeconfigPath)

	kubeConfig, err := loadOrInitKubeconfig(kubeconfigPath)
	if err != nil {
		return err
	}

	kubeConfig.Clusters[name] = cluster
	kubeConfig.AuthInfos[name] = authInfo
	kubeConfig.Contexts[name] = &clientcmdapi.Context{
		Cluster:  name,
		AuthInfo: name,
	}
	kubeConfig.CurrentContext = name

	err = clientcmd.WriteToFile(*kubeConfig, kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to write kubeconfig: %w", err)
	}

	err = os.Chmod(kubeconfigPath, kubeconfigFileMode)
	if err != nil {
		return fmt.Errorf("failed to set kubeconfig permissions: %w", err)
	}

	return nil
}

func loadOrInitKubeconfig(kubeconfigPath string) (*clientcmdapi.Config, error) {
	_, statErr := os.Stat(kubeconfigPath)
	if os.IsNotExist(statErr) {
		return clientcmdapi.NewConfig(), nil
	}

	kubeConfig, err := clientcmd.LoadFromFile(kubeconfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	return kubeConfig, nil
}
