// Package k8s provides Kubernetes client helpers shared by arcctl commands:
// REST config and clientset construction, namespace and secret management,
// pod listing and log streaming, and kubeconfig entry cleanup.
package k8s
