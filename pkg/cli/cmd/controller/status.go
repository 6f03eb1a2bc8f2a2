package controller

import (
	"fmt"

	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/cli/ui/table"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates and returns the controller status command.
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the ARC controller release and its pods",
		Long: `Show the Helm release state of the controller and the pods it runs, ` +
			`equivalent to helm status plus kubectl get pods.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runStatus(cmd, manager)
	}

	return cmd
}

func runStatus(cmd *cobra.Command, manager *configmanager.ConfigManager) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	controllerSpec := cl.Config.Spec.Controller
	out := cmd.OutOrStdout()

	release, err := cl.Helm.GetRelease(
		cmd.Context(),
		controllerSpec.ReleaseName,
		controllerSpec.Namespace,
	)
	if err != nil {
		return fmt.Errorf("failed to get controller release: %w", err)
	}

	notify.Infof(
		out,
		"release %s/%s revision %d status %q chart %s-%s",
		release.Namespace,
		release.Name,
		release.Revision,
		release.Status,
		release.ChartName,
		release.ChartVersion,
	)

	pods, err := k8s.ListPods(cmd.Context(), cl.Clientset, controllerSpec.Namespace, controllerSelector)
	if err != nil {
		return fmt.Errorf("failed to list controller pods: %w", err)
	}

	if len(pods) == 0 {
		notify.Warningf(out, "no controller pods found in namespace %q", controllerSpec.Namespace)

		return nil
	}

	err = table.WritePods(out, pods)
	if err != nil {
		return fmt.Errorf("failed to render pod table: %w", err)
	}

	return nil
}
