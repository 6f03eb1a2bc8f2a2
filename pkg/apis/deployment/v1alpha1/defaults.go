package v1alpha1

import "time"

// Chart and namespace defaults for the upstream ARC OCI charts.
const (
	// DefaultControllerChart is the OCI reference of the runner scale set
	// controller chart.
	DefaultControllerChart = "oci://ghcr.io/actions/actions-runner-controller-charts/gha-runner-scale-set-controller"
	// DefaultScaleSetChart is the OCI reference of the runner scale set chart.
	DefaultScaleSetChart = "oci://ghcr.io/actions/actions-runner-controller-charts/gha-runner-scale-set"

	// DefaultControllerNamespace is where the controller release is installed.
	DefaultControllerNamespace = "arc-systems"
	// DefaultRunnerNamespace is where runner scale set releases are installed.
	DefaultRunnerNamespace = "arc-runners"

	// DefaultControllerReleaseName is the controller Helm release name.
	DefaultControllerReleaseName = "arc"

	// DefaultAuthSecretName is the GitHub auth Secret name in runner namespaces.
	DefaultAuthSecretName = "github-auth"

	// DefaultKubeconfigPath is the kubeconfig location when none is configured.
	DefaultKubeconfigPath = "~/.kube/config"

	// DefaultTimeout bounds install and readiness waits when the config does
	// not set one.
	DefaultTimeout = 5 * time.Minute
)
