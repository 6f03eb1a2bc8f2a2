package secret

import (
	"errors"
	"fmt"

	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewDeleteCmd creates and returns the secret delete command.
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete",
		Short:        "Delete the GitHub auth secret",
		Long:         `Delete the GitHub auth secret from each runner namespace.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runDelete(cmd, manager)
	}

	return cmd
}

func runDelete(cmd *cobra.Command, manager *configmanager.ConfigManager) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	secretName := cl.Config.Spec.Auth.SecretName
	out := cmd.OutOrStdout()

	for _, namespace := range secretNamespaces(cl.Config) {
		err = k8s.DeleteSecret(cmd.Context(), cl.Clientset, namespace, secretName)
		if errors.Is(err, k8s.ErrSecretNotFound) {
			notify.Warningf(out, "secret %s/%s not found", namespace, secretName)

			continue
		} else if err != nil {
			return fmt.Errorf("failed to delete secret: %w", err)
		}

		notify.Successf(out, "secret %s/%s deleted", namespace, secretName)
	}

	return nil
}
