// Package helm wraps the Helm SDK behind a small client for installing,
// upgrading and uninstalling OCI-hosted charts.
package helm

import (
	"context"
	"errors"
	"time"
)

// DefaultTimeout bounds how long chart installs and upgrades may take.
const DefaultTimeout = 5 * time.Minute

var (
	// ErrReleaseNameRequired is returned when a chart spec has no release name.
	ErrReleaseNameRequired = errors.New("helm: release name is required")
	// ErrChartRefRequired is returned when a chart spec has no chart reference.
	ErrChartRefRequired = errors.New("helm: chart reference is required")
	// ErrNamespaceRequired is returned when a chart spec has no namespace.
	ErrNamespaceRequired = errors.New("helm: namespace is required")
	// ErrReleaseNotFound is returned when a release does not exist in the
	// target namespace.
	ErrReleaseNotFound = errors.New("helm: release not found")
)

// ChartSpec describes a chart to install or upgrade.
type ChartSpec struct {
	ReleaseName     string
	ChartRef        string
	Version         string
	Namespace       string
	CreateNamespace bool
	Wait            bool
	Timeout         time.Duration

	// Values are inline chart values, the lowest-precedence source.
	Values map[string]any
	// ValuesFiles are helm-style values files, merged over Values in order.
	ValuesFiles []string
	// SetValues are helm --set pairs (key=value), the highest-precedence
	// source.
	SetValues []string
}

// Validate checks the fields required to act on the spec.
func (s *ChartSpec) Validate() error {
	if s.ReleaseName == "" {
		return ErrReleaseNameRequired
	}

	if s.ChartRef == "" {
		return ErrChartRefRequired
	}

	if s.Namespace == "" {
		return ErrNamespaceRequired
	}

	return nil
}

// ReleaseInfo summarizes a deployed release.
type ReleaseInfo struct {
	Name         string
	Namespace    string
	Revision     int
	Status       string
	ChartName    string
	ChartVersion string
	AppVersion   string
	Updated      time.Time
}

//go:generate mockery --name=Interface --output=. --filename=mocks.go --inpackage --with-expecter

// Interface defines the Helm operations arcctl performs.
type Interface interface {
	// InstallChart installs the chart described by spec as a new release.
	InstallChart(ctx context.Context, spec *ChartSpec) (*ReleaseInfo, error)
	// InstallOrUpgradeChart installs the chart when the release does not
	// exist yet and upgrades it otherwise.
	InstallOrUpgradeChart(ctx context.Context, spec *ChartSpec) (*ReleaseInfo, error)
	// UninstallRelease removes a release from the given namespace.
	UninstallRelease(ctx context.Context, releaseName, namespace string) error
	// GetRelease fetches the current state of a release.
	GetRelease(ctx context.Context, releaseName, namespace string) (*ReleaseInfo, error)
}
