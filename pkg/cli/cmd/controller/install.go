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

// NewInstallCmd creates and returns the controller install command.
func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the ARC controller",
		Long: `Install the gha-runner-scale-set-controller chart into the controller ` +
			`namespace and wait for its deployment to become ready. An existing ` +
			`release is upgraded in place.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runInstall(cmd, manager, "Install ARC controller...")
	}

	return cmd
}

func runInstall(cmd *cobra.Command, manager *configmanager.ConfigManager, title string) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	controllerSpec := cl.Config.Spec.Controller
	out := cmd.OutOrStdout()

	notify.Titlef(out, "%s", title)
	tmr.NewStage()
	notify.Activityf(
		out,
		"applying chart %q into namespace %q",
		controllerSpec.Chart,
		controllerSpec.Namespace,
	)

	inst := controllerinstaller.NewInstaller(
		cl.Helm,
		cl.Clientset,
		controllerSpec,
		helpers.TimeoutFor(cl.Config),
	)

	err = inst.Install(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to install controller: %w", err)
	}

	notify.SuccessWithTimerf(out, tmr, "controller release %q is ready", controllerSpec.ReleaseName)

	return nil
}
