package v1alpha1

import "errors"

var (
	// ErrClusterProjectRequired is returned when spec.cluster.project is empty.
	ErrClusterProjectRequired = errors.New("spec.cluster.project is required")
	// ErrClusterLocationRequired is returned when spec.cluster.location is empty.
	ErrClusterLocationRequired = errors.New("spec.cluster.location is required")
	// ErrClusterNameRequired is returned when spec.cluster.name is empty.
	ErrClusterNameRequired = errors.New("spec.cluster.name is required")
	// ErrRunnerNameRequired is returned when a runner scale set has no name.
	ErrRunnerNameRequired = errors.New("runner scale set name is required")
	// ErrRunnerConfigURLRequired is returned when a runner scale set has no
	// githubConfigUrl.
	ErrRunnerConfigURLRequired = errors.New("runner scale set githubConfigUrl is required")
	// ErrRunnerBoundsInvalid is returned when minRunners exceeds maxRunners.
	ErrRunnerBoundsInvalid = errors.New("runner scale set minRunners exceeds maxRunners")
	// ErrAuthMethodUnknown is returned when spec.auth.method is not a
	// supported value.
	ErrAuthMethodUnknown = errors.New("unknown auth method")
)
