package k8s

import "errors"

var (
	// ErrKubeconfigPathEmpty is returned when kubeconfig path is empty.
	ErrKubeconfigPathEmpty = errors.New("kubeconfig path is empty")
	// ErrSecretNotFound is returned when a requested Secret does not exist.
	ErrSecretNotFound = errors.New("secret not found")
	// ErrNoPodsFound is returned when no pod matches the given selector.
	ErrNoPodsFound = errors.New("no pods found")
)
