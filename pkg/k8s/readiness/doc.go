// Package readiness provides Kubernetes resource readiness polling utilities
// used after chart installs, built on constant-interval retries.
package readiness
