package runners

import (
	"fmt"

	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	scalesetinstaller "github.com/arcops/arcctl/pkg/svc/installer/scaleset"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates and returns the runners uninstall command.
func NewUninstallCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:          "uninstall",
		Short:        "Uninstall runner scale sets",
		Long:         `Remove the Helm releases of the configured runner scale sets.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)
	cmd.Flags().StringVar(&nameFilter, "name", "", "uninstall only the named scale set")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runUninstall(cmd, manager, nameFilter)
	}

	return cmd
}

func runUninstall(cmd *cobra.Command, manager *configmanager.ConfigManager, nameFilter string) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	selected, err := selectRunners(cl.Config, nameFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	notify.Titlef(out, "Uninstall runner scale sets...")

	secretName := cl.Config.Spec.Auth.SecretName
	timeout := helpers.TimeoutFor(cl.Config)

	for _, runner := range selected {
		tmr.NewStage()
		notify.Activityf(out, "removing scale set %q from namespace %q", runner.Name, runner.Namespace)

		inst := scalesetinstaller.NewInstaller(cl.Helm, cl.Clientset, runner, secretName, timeout)

		err = inst.Uninstall(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to uninstall scale set %q: %w", runner.Name, err)
		}

		notify.SuccessWithTimerf(out, tmr, "scale set %q removed", runner.Name)
	}

	return nil
}
