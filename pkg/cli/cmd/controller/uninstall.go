package controller

import (
	"fmt"

	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	controllerinstaller "github.com/arcops/arcctl/pkg/svc/installer/controller"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewUninstallCmd creates and returns the controller uninstall command.
func NewUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "uninstall",
		Short:        "Uninstall the ARC controller",
		Long:         `Remove the gha-runner-scale-set-controller Helm release.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runUninstall(cmd, manager)
	}

	return cmd
}

func runUninstall(cmd *cobra.Command, manager *configmanager.ConfigManager) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	controllerSpec := cl.Config.Spec.Controller
	out := cmd.OutOrStdout()

	notify.Titlef(out, "Uninstall ARC controller...")
	tmr.NewStage()
	notify.Activityf(
		out,
		"removing release %q from namespace %q",
		controllerSpec.ReleaseName,
		controllerSpec.Namespace,
	)

	inst := controllerinstaller.NewInstaller(
		cl.Helm,
		cl.Clientset,
		controllerSpec,
		helpers.TimeoutFor(cl.Config),
	)

	err = inst.Uninstall(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to uninstall controller: %w", err)
	}

	notify.SuccessWithTimerf(out, tmr, "controller release %q removed", controllerSpec.ReleaseName)

	return nil
}
