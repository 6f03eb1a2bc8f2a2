package v1alpha1_test

import (
	"testing"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDeployment() *v1alpha1.Deployment {
	deployment := v1alpha1.NewDeployment()
	deployment.Spec.Cluster.Project = "my-project"
	deployment.Spec.Cluster.Location = "us-central1"
	deployment.Spec.Cluster.Name = "build-infra"

	return deployment
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, validDeployment().Validate())
}

func TestValidateClusterFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*v1alpha1.Deployment)
		wantErr error
	}{
		{
			name:    "missing project",
			mutate:  func(d *v1alpha1.Deployment) { d.Spec.Cluster.Project = "" },
			wantErr: v1alpha1.ErrClusterProjectRequired,
		},
		{
			name:    "missing location",
			mutate:  func(d *v1alpha1.Deployment) { d.Spec.Cluster.Location = "" },
			wantErr: v1alpha1.ErrClusterLocationRequired,
		},
		{
			name:    "missing name",
			mutate:  func(d *v1alpha1.Deployment) { d.Spec.Cluster.Name = "" },
			wantErr: v1alpha1.ErrClusterNameRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			deployment := validDeployment()
			testCase.mutate(deployment)

			err := deployment.Validate()
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestValidateRunnerSets(t *testing.T) {
	t.Parallel()

	deployment := validDeployment()
	deployment.Spec.Runners = []v1alpha1.ScaleSetSpec{{Name: "builders"}}
	deployment.SetDefaults()

	err := deployment.Validate()
	require.ErrorIs(t, err, v1alpha1.ErrRunnerConfigURLRequired)
	assert.Contains(t, err.Error(), "spec.runners[0]")
}

func TestValidateRunnerBounds(t *testing.T) {
	t.Parallel()

	deployment := validDeployment()
	deployment.Spec.Runners = []v1alpha1.ScaleSetSpec{{
		Name:            "builders",
		GitHubConfigURL: "https://github.com/my-org",
		MinRunners:      5,
		MaxRunners:      2,
	}}
	deployment.SetDefaults()

	require.ErrorIs(t, deployment.Validate(), v1alpha1.ErrRunnerBoundsInvalid)
}

func TestValidateUnknownAuthMethod(t *testing.T) {
	t.Parallel()

	deployment := validDeployment()
	deployment.Spec.Auth.Method = "oauth"

	require.ErrorIs(t, deployment.Validate(), v1alpha1.ErrAuthMethodUnknown)
}
