// Package secret contains commands for managing the GitHub auth secret the
// runner scale sets reference.
package secret

import (
	"errors"
	"fmt"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/spf13/cobra"
)

var (
	// ErrTokenRequired is returned when creating a PAT secret without a token.
	ErrTokenRequired = errors.New("a personal access token is required (--token)")
	// ErrAppCredentialsRequired is returned when creating a GitHub App secret
	// without the full credential set.
	ErrAppCredentialsRequired = errors.New(
		"github app credentials are required (--app-id, --installation-id, --private-key-file)",
	)
)

// NewSecretCmd creates the parent secret command and wires subcommands
// beneath it.
func NewSecretCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the GitHub auth secret",
		Long: `Manage the Kubernetes Secret runner scale sets authenticate to GitHub ` +
			`with, holding either a personal access token or GitHub App credentials.`,
		Args:         cobra.NoArgs,
		RunE:         handleSecretRunE,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewCreateCmd())
	cmd.AddCommand(NewGetCmd())
	cmd.AddCommand(NewDeleteCmd())

	return cmd
}

func handleSecretRunE(cmd *cobra.Command, _ []string) error {
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying secret command help: %w", err)
	}

	return nil
}

// secretNamespaces returns the distinct namespaces of the configured runner
// scale sets, falling back to the default runner namespace when none are
// configured.
func secretNamespaces(config *v1alpha1.Deployment) []string {
	if len(config.Spec.Runners) == 0 {
		return []string{v1alpha1.DefaultRunnerNamespace}
	}

	seen := make(map[string]struct{}, len(config.Spec.Runners))
	namespaces := make([]string, 0, len(config.Spec.Runners))

	for _, runner := range config.Spec.Runners {
		if _, ok := seen[runner.Namespace]; ok {
			continue
		}

		seen[runner.Namespace] = struct{}{}
		namespaces = append(namespaces, runner.Namespace)
	}

	return namespaces
}
