// Package runners contains commands for managing runner scale set Helm
// releases.
package runners

import (
	"errors"
	"fmt"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/spf13/cobra"
)

var (
	// ErrNoRunnersConfigured is returned when the configuration defines no
	// runner scale sets.
	ErrNoRunnersConfigured = errors.New("no runner scale sets configured (set spec.runners in arcctl.yaml)")
	// ErrRunnerNotConfigured is returned when --name selects a scale set the
	// configuration does not define.
	ErrRunnerNotConfigured = errors.New("runner scale set not configured")
)

// NewRunnersCmd creates the parent runners command and wires scale set
// subcommands beneath it.
func NewRunnersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runners",
		Short: "Manage runner scale sets",
		Long: `Manage gha-runner-scale-set Helm releases: install, uninstall, and ` +
			`list the runner scale sets defined in the configuration.`,
		Args:         cobra.NoArgs,
		RunE:         handleRunnersRunE,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewInstallCmd())
	cmd.AddCommand(NewUninstallCmd())
	cmd.AddCommand(NewListCmd())

	return cmd
}

func handleRunnersRunE(cmd *cobra.Command, _ []string) error {
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying runners command help: %w", err)
	}

	return nil
}

// selectRunners returns the configured scale sets, narrowed to nameFilter when
// it is non-empty.
func selectRunners(config *v1alpha1.Deployment, nameFilter string) ([]v1alpha1.ScaleSetSpec, error) {
	if len(config.Spec.Runners) == 0 {
		return nil, ErrNoRunnersConfigured
	}

	if nameFilter == "" {
		return config.Spec.Runners, nil
	}

	for _, runner := range config.Spec.Runners {
		if runner.Name == nameFilter {
			return []v1alpha1.ScaleSetSpec{runner}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrRunnerNotConfigured, nameFilter)
}
