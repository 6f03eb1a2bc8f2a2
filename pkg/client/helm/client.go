package helm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/chartutil"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/cli/values"
	"helm.sh/helm/v3/pkg/getter"
	"helm.sh/helm/v3/pkg/registry"
	"helm.sh/helm/v3/pkg/release"
	"helm.sh/helm/v3/pkg/storage/driver"
)

// Client implements Interface on top of the Helm action API.
type Client struct {
	settings       *cli.EnvSettings
	registryClient *registry.Client
	debugLog       func(format string, v ...any)
}

var _ Interface = (*Client)(nil)

// NewClient creates a Helm client bound to the given kubeconfig and context.
// Debug output from the Helm SDK goes to logWriter.
func NewClient(kubeconfigPath, kubeContext string, logWriter io.Writer) (*Client, error) {
	settings := cli.New()
	settings.KubeConfig = kubeconfigPath
	settings.KubeContext = kubeContext

	registryClient, err := registry.NewClient(
		registry.ClientOptWriter(logWriter),
	)
	if err != nil {
		return nil, fmt.Errorf("create helm registry client: %w", err)
	}

	return &Client{
		settings:       settings,
		registryClient: registryClient,
		debugLog: func(format string, v ...any) {
			fmt.Fprintf(logWriter, format+"\n", v...)
		},
	}, nil
}

// InstallChart installs the chart described by spec as a new release.
func (c *Client) InstallChart(ctx context.Context, spec *ChartSpec) (*ReleaseInfo, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	actionConfig, err := c.actionConfig(spec.Namespace)
	if err != nil {
		return nil, err
	}

	return c.install(ctx, actionConfig, spec)
}

// InstallOrUpgradeChart installs the chart when the release does not exist
// yet and upgrades it otherwise.
func (c *Client) InstallOrUpgradeChart(ctx context.Context, spec *ChartSpec) (*ReleaseInfo, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	actionConfig, err := c.actionConfig(spec.Namespace)
	if err != nil {
		return nil, err
	}

	histClient := action.NewHistory(actionConfig)
	histClient.Max = 1

	_, err = histClient.Run(spec.ReleaseName)
	if errors.Is(err, driver.ErrReleaseNotFound) {
		return c.install(ctx, actionConfig, spec)
	} else if err != nil {
		return nil, fmt.Errorf("check release history for %q: %w", spec.ReleaseName, err)
	}

	return c.upgrade(ctx, actionConfig, spec)
}

// UninstallRelease removes a release from the given namespace.
func (c *Client) UninstallRelease(_ context.Context, releaseName, namespace string) error {
	actionConfig, err := c.actionConfig(namespace)
	if err != nil {
		return err
	}

	uninstall := action.NewUninstall(actionConfig)

	_, err = uninstall.Run(releaseName)
	if errors.Is(err, driver.ErrReleaseNotFound) {
		return fmt.Errorf("%w: %s/%s", ErrReleaseNotFound, namespace, releaseName)
	} else if err != nil {
		return fmt.Errorf("uninstall release %q: %w", releaseName, err)
	}

	return nil
}

// GetRelease fetches the current state of a release.
func (c *Client) GetRelease(_ context.Context, releaseName, namespace string) (*ReleaseInfo, error) {
	actionConfig, err := c.actionConfig(namespace)
	if err != nil {
		return nil, err
	}

	status := action.NewStatus(actionConfig)

	rel, err := status.Run(releaseName)
	if errors.Is(err, driver.ErrReleaseNotFound) {
		return nil, fmt.Errorf("%w: %s/%s", ErrReleaseNotFound, namespace, releaseName)
	} else if err != nil {
		return nil, fmt.Errorf("get release %q: %w", releaseName, err)
	}

	return releaseToInfo(rel), nil
}

func (c *Client) install(
	ctx context.Context,
	actionConfig *action.Configuration,
	spec *ChartSpec,
) (*ReleaseInfo, error) {
	install := action.NewInstall(actionConfig)
	install.ReleaseName = spec.ReleaseName
	install.Namespace = spec.Namespace
	install.CreateNamespace = spec.CreateNamespace
	install.Version = spec.Version
	install.Wait = spec.Wait
	install.Timeout = timeoutOrDefault(spec)
	install.SetRegistryClient(c.registryClient)

	loadedChart, err := c.loadChart(&install.ChartPathOptions, spec.ChartRef)
	if err != nil {
		return nil, err
	}

	chartValues, err := c.resolveValues(spec)
	if err != nil {
		return nil, err
	}

	rel, err := install.RunWithContext(ctx, loadedChart, chartValues)
	if err != nil {
		return nil, fmt.Errorf("install release %q: %w", spec.ReleaseName, err)
	}

	return releaseToInfo(rel), nil
}

func (c *Client) upgrade(
	ctx context.Context,
	actionConfig *action.Configuration,
	spec *ChartSpec,
) (*ReleaseInfo, error) {
	upgrade := action.NewUpgrade(actionConfig)
	upgrade.Namespace = spec.Namespace
	upgrade.Version = spec.Version
	upgrade.Wait = spec.Wait
	upgrade.Timeout = timeoutOrDefault(spec)
	upgrade.SetRegistryClient(c.registryClient)

	loadedChart, err := c.loadChart(&upgrade.ChartPathOptions, spec.ChartRef)
	if err != nil {
		return nil, err
	}

	chartValues, err := c.resolveValues(spec)
	if err != nil {
		return nil, err
	}

	rel, err := upgrade.RunWithContext(ctx, spec.ReleaseName, loadedChart, chartValues)
	if err != nil {
		return nil, fmt.Errorf("upgrade release %q: %w", spec.ReleaseName, err)
	}

	return releaseToInfo(rel), nil
}

// actionConfig initializes an action configuration scoped to a namespace.
// Helm reads the namespace from the env settings, so those are switched too.
func (c *Client) actionConfig(namespace string) (*action.Configuration, error) {
	c.settings.SetNamespace(namespace)

	actionConfig := new(action.Configuration)

	err := actionConfig.Init(
		c.settings.RESTClientGetter(),
		namespace,
		os.Getenv("HELM_DRIVER"),
		c.debugLog,
	)
	if err != nil {
		return nil, fmt.Errorf("initialize helm action configuration: %w", err)
	}

	actionConfig.RegistryClient = c.registryClient

	return actionConfig, nil
}

func (c *Client) loadChart(
	chartPathOptions *action.ChartPathOptions,
	chartRef string,
) (*chart.Chart, error) {
	chartPath, err := chartPathOptions.LocateChart(chartRef, c.settings)
	if err != nil {
		return nil, fmt.Errorf("locate chart %q: %w", chartRef, err)
	}

	loadedChart, err := loader.Load(chartPath)
	if err != nil {
		return nil, fmt.Errorf("load chart %q: %w", chartRef, err)
	}

	return loadedChart, nil
}

// resolveValues merges the spec's value sources with helm's precedence:
// inline Values < ValuesFiles (in order) < SetValues.
func (c *Client) resolveValues(spec *ChartSpec) (map[string]any, error) {
	if len(spec.ValuesFiles) == 0 && len(spec.SetValues) == 0 {
		return spec.Values, nil
	}

	valueOpts := &values.Options{
		ValueFiles: spec.ValuesFiles,
		Values:     spec.SetValues,
	}

	merged, err := valueOpts.MergeValues(getter.All(c.settings))
	if err != nil {
		return nil, fmt.Errorf("merge chart values: %w", err)
	}

	// Keys from files and --set pairs win over the inline map.
	return chartutil.CoalesceTables(merged, spec.Values), nil
}

func timeoutOrDefault(spec *ChartSpec) time.Duration {
	if spec.Timeout > 0 {
		return spec.Timeout
	}

	return DefaultTimeout
}

func releaseToInfo(rel *release.Release) *ReleaseInfo {
	info := &ReleaseInfo{
		Name:      rel.Name,
		Namespace: rel.Namespace,
		Revision:  rel.Version,
	}

	if rel.Info != nil {
		info.Status = rel.Info.Status.String()
		info.Updated = rel.Info.LastDeployed.Time
	}

	if rel.Chart != nil && rel.Chart.Metadata != nil {
		info.ChartName = rel.Chart.Metadata.Name
		info.ChartVersion = rel.Chart.Metadata.Version
		info.AppVersion = rel.Chart.Metadata.AppVersion
	}

	return info
}
