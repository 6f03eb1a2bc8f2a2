package runners

import (
	"errors"
	"fmt"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/cli/ui/table"
	"github.com/arcops/arcctl/pkg/client/helm"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewListCmd creates and returns the runners list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runner scale sets and their pods",
		Long: `Show the Helm release state of each configured runner scale set and ` +
			`the pods in the runner namespaces.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runList(cmd, manager)
	}

	return cmd
}

func runList(cmd *cobra.Command, manager *configmanager.ConfigManager) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	selected, err := selectRunners(cl.Config, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, runner := range selected {
		release, err := cl.Helm.GetRelease(cmd.Context(), runner.Name, runner.Namespace)
		if errors.Is(err, helm.ErrReleaseNotFound) {
			notify.Warningf(out, "scale set %q is not installed", runner.Name)

			continue
		} else if err != nil {
			return fmt.Errorf("failed to get release for scale set %q: %w", runner.Name, err)
		}

		notify.Infof(
			out,
			"scale set %s/%s revision %d status %q runners %d-%d",
			release.Namespace,
			release.Name,
			release.Revision,
			release.Status,
			runner.MinRunners,
			runner.MaxRunners,
		)
	}

	for _, namespace := range runnerNamespaces(selected) {
		pods, err := k8s.ListPods(cmd.Context(), cl.Clientset, namespace, "")
		if err != nil {
			return fmt.Errorf("failed to list pods in namespace %q: %w", namespace, err)
		}

		if len(pods) == 0 {
			notify.Warningf(out, "no pods found in namespace %q", namespace)

			continue
		}

		err = table.WritePods(out, pods)
		if err != nil {
			return fmt.Errorf("failed to render pod table: %w", err)
		}
	}

	return nil
}

// runnerNamespaces returns the distinct namespaces of the given scale sets in
// first-seen order.
func runnerNamespaces(runners []v1alpha1.ScaleSetSpec) []string {
	seen := make(map[string]struct{}, len(runners))
	namespaces := make([]string, 0, len(runners))

	for _, runner := range runners {
		if _, ok := seen[runner.Namespace]; ok {
			continue
		}

		seen[runner.Namespace] = struct{}{}
		namespaces = append(namespaces, runner.Namespace)
	}

	return namespaces
}
