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

// NewInstallCmd creates and returns the runners install command.
func NewInstallCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install runner scale sets",
		Long: `Install the configured gha-runner-scale-set charts, one Helm release ` +
			`per scale set. Each install verifies the GitHub auth secret exists ` +
			`first. Existing releases are upgraded in place.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)
	cmd.Flags().StringVar(&nameFilter, "name", "", "install only the named scale set")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runInstall(cmd, manager, nameFilter)
	}

	return cmd
}

func runInstall(cmd *cobra.Command, manager *configmanager.ConfigManager, nameFilter string) error {
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
	notify.Titlef(out, "Install runner scale sets...")

	secretName := cl.Config.Spec.Auth.SecretName
	timeout := helpers.TimeoutFor(cl.Config)

	for _, runner := range selected {
		tmr.NewStage()
		notify.Activityf(out, "installing scale set %q into namespace %q", runner.Name, runner.Namespace)

		inst := scalesetinstaller.NewInstaller(cl.Helm, cl.Clientset, runner, secretName, timeout)

		err = inst.Install(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to install scale set %q: %w", runner.Name, err)
		}

		notify.SuccessWithTimerf(out, tmr, "scale set %q installed", runner.Name)
	}

	return nil
}
