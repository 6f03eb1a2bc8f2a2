// Package v1alpha1 defines the arcctl Deployment configuration document.
//
// A Deployment describes one Actions Runner Controller installation: the GKE
// cluster it runs on, the controller chart, the runner scale sets, and the
// GitHub authentication secret shared by the runner sets.
package v1alpha1
