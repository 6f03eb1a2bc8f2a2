package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NewDeployment creates a Deployment with API metadata and defaults applied.
func NewDeployment() *Deployment {
	deployment := &Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion,
			Kind:       Kind,
		},
		Spec: Spec{},
	}

	deployment.SetDefaults()

	return deployment
}

// SetDefaults fills unset fields with their defaults. It is idempotent and
// safe to call on partially populated configurations loaded from disk.
func (d *Deployment) SetDefaults() {
	if d.APIVersion == "" {
		d.APIVersion = APIVersion
	}

	if d.Kind == "" {
		d.Kind = Kind
	}

	if d.Spec.Cluster.Kubeconfig == "" {
		d.Spec.Cluster.Kubeconfig = DefaultKubeconfigPath
	}

	if d.Spec.Cluster.Timeout.Duration == 0 {
		d.Spec.Cluster.Timeout = metav1.Duration{Duration: DefaultTimeout}
	}

	if d.Spec.Controller.Namespace == "" {
		d.Spec.Controller.Namespace = DefaultControllerNamespace
	}

	if d.Spec.Controller.ReleaseName == "" {
		d.Spec.Controller.ReleaseName = DefaultControllerReleaseName
	}

	if d.Spec.Controller.Chart == "" {
		d.Spec.Controller.Chart = DefaultControllerChart
	}

	if d.Spec.Auth.SecretName == "" {
		d.Spec.Auth.SecretName = DefaultAuthSecretName
	}

	if d.Spec.Auth.Method == "" {
		d.Spec.Auth.Method = AuthMethodPAT
	}

	for i := range d.Spec.Runners {
		runner := &d.Spec.Runners[i]

		if runner.Namespace == "" {
			runner.Namespace = DefaultRunnerNamespace
		}

		if runner.Chart == "" {
			runner.Chart = DefaultScaleSetChart
		}
	}
}
