package gke

import (
	"fmt"
	"io"

	"github.com/arcops/arcctl/pkg/k8s"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"
)

const (
	// authPluginCommand is the exec credential plugin GKE clusters
	// authenticate with.
	authPluginCommand = "gke-gcloud-auth-plugin"

	authPluginInstallHint = "Install gke-gcloud-auth-plugin for use with kubectl by following " +
		"https://cloud.google.com/kubernetes-engine/docs/how-to/cluster-access-for-kubectl"

	execAPIVersion = "client.authentication.k8s.io/v1beta1"
)

// ContextName returns the kubeconfig entry name gcloud uses for a GKE
// cluster, gke_<project>_<location>_<cluster>. Keeping the same name makes
// the entry interchangeable with one written by gcloud.
func ContextName(project, location, name string) string {
	return fmt.Sprintf("gke_%s_%s_%s", project, location, name)
}

// WriteCredentials merges a kubeconfig entry for the cluster: server endpoint
// with CA data and an exec-auth user for gke-gcloud-auth-plugin. The new
// context becomes current.
func WriteCredentials(kubeconfigPath, project string, info *ClusterInfo) error {
	entryName := ContextName(project, info.Location, info.Name)

	cluster := &clientcmdapi.Cluster{
		Server:                   "https://" + info.Endpoint,
		CertificateAuthorityData: info.CACertificate,
	}

	authInfo := &clientcmdapi.AuthInfo{
		Exec: &clientcmdapi.ExecConfig{
			APIVersion:         execAPIVersion,
			Command:            authPluginCommand,
			InstallHint:        authPluginInstallHint,
			ProvideClusterInfo: true,
			InteractiveMode:    clientcmdapi.IfAvailableExecInteractiveMode,
		},
	}

	err := k8s.MergeKubeconfigEntry(kubeconfigPath, entryName, cluster, authInfo)
	if err != nil {
		return fmt.Errorf("merge kubeconfig entry %q: %w", entryName, err)
	}

	return nil
}

// RemoveCredentials removes the cluster's kubeconfig entry again. A missing
// file or entry is a no-op.
func RemoveCredentials(
	kubeconfigPath, project, location, name string,
	logWriter io.Writer,
) error {
	entryName := ContextName(project, location, name)

	err := k8s.RemoveKubeconfigEntries(kubeconfigPath, entryName, entryName, entryName, logWriter)
	if err != nil {
		return fmt.Errorf("remove kubeconfig entry %q: %w", entryName, err)
	}

	return nil
}
