package controller

import (
	"fmt"

	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewLogsCmd creates and returns the controller logs command.
func NewLogsCmd() *cobra.Command {
	opts := k8s.LogOptions{}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Stream logs from the ARC controller",
		Long: `Stream logs from the newest controller pod, equivalent to ` +
			`kubectl logs against the controller deployment.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.Flags().BoolVarP(&opts.Follow, "follow", "f", false, "follow the log stream")
	cmd.Flags().Int64Var(&opts.TailLines, "tail", 0, "show only the last N lines")
	cmd.Flags().StringVarP(&opts.Container, "container", "c", "", "container to read logs from")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runLogs(cmd, manager, opts)
	}

	return cmd
}

func runLogs(cmd *cobra.Command, manager *configmanager.ConfigManager, opts k8s.LogOptions) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	controllerSpec := cl.Config.Spec.Controller

	err = k8s.StreamPodLogs(
		cmd.Context(),
		cl.Clientset,
		controllerSpec.Namespace,
		controllerSelector,
		opts,
		cmd.OutOrStdout(),
	)
	if err != nil {
		return fmt.Errorf("failed to stream controller logs: %w", err)
	}

	return nil
}
