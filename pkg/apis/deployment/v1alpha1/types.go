package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	// Group is the API group for arcctl.
	Group = "arcctl.dev"
	// Version is the API version for arcctl.
	Version = "v1alpha1"
	// Kind is the kind for arcctl deployments.
	Kind = "Deployment"
	// APIVersion is the full API version for arcctl.
	APIVersion = Group + "/" + Version
)

// Deployment represents an arcctl deployment configuration including API
// metadata and the desired state of one ARC installation.
type Deployment struct {
	metav1.TypeMeta `json:",inline" mapstructure:",squash"`

	Spec Spec `json:"spec,omitzero" mapstructure:"spec,omitempty"`
}

// Spec defines the desired state of an ARC deployment.
type Spec struct {
	Cluster    ClusterSpec    `json:"cluster,omitzero"`
	Controller ControllerSpec `json:"controller,omitzero"`
	Runners    []ScaleSetSpec `json:"runners,omitzero"`
	Auth       AuthSpec       `json:"auth,omitzero"`
}

// ClusterSpec identifies the GKE cluster and how to talk to it.
type ClusterSpec struct {
	// Project is the Google Cloud project ID hosting the cluster.
	Project string `json:"project,omitzero"`
	// Location is the cluster zone or region (e.g. us-central1 or us-central1-a).
	Location string `json:"location,omitzero"`
	// Name is the GKE cluster name.
	Name string `json:"name,omitzero"`

	Kubeconfig string          `default:"~/.kube/config" json:"kubeconfig,omitzero"`
	Context    string          `                         json:"context,omitzero"`
	Timeout    metav1.Duration `                         json:"timeout,omitzero"`
}

// ControllerSpec configures the ARC controller Helm release.
type ControllerSpec struct {
	Namespace   string `default:"arc-systems" json:"namespace,omitzero"`
	ReleaseName string `default:"arc"         json:"releaseName,omitzero"`
	Chart       string `json:"chart,omitzero"`
	Version     string `json:"version,omitzero"`

	// Values are passed through to the chart unmodified.
	Values map[string]any `json:"values,omitzero"`
}

// ScaleSetSpec configures one runner scale set Helm release.
type ScaleSetSpec struct {
	// Name is both the Helm release name and the runner group label runners
	// are requested with (runs-on).
	Name      string `json:"name,omitzero"`
	Namespace string `default:"arc-runners" json:"namespace,omitzero"`

	// GitHubConfigURL is the org, repository, or enterprise URL the runners
	// register against (e.g. https://github.com/my-org).
	GitHubConfigURL string `json:"githubConfigUrl,omitzero"`

	MinRunners int `json:"minRunners,omitzero"`
	MaxRunners int `json:"maxRunners,omitzero"`

	Chart   string `json:"chart,omitzero"`
	Version string `json:"version,omitzero"`

	// Values are passed through to the chart unmodified.
	Values map[string]any `json:"values,omitzero"`
}

// AuthSpec configures the GitHub authentication secret shared by runner sets.
type AuthSpec struct {
	// SecretName is the name of the Kubernetes Secret in each runner namespace.
	SecretName string `default:"github-auth" json:"secretName,omitzero"`
	// Method selects the secret shape: a personal access token or a GitHub App.
	Method AuthMethod `default:"pat" json:"method,omitzero"`
}
