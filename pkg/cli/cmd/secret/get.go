package secret

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// NewGetCmd creates and returns the secret get command.
func NewGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the GitHub auth secret",
		Long: `Show the GitHub auth secret in each runner namespace. Only key names ` +
			`are printed; secret values never leave the cluster.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runGet(cmd, manager)
	}

	return cmd
}

func runGet(cmd *cobra.Command, manager *configmanager.ConfigManager) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	secretName := cl.Config.Spec.Auth.SecretName
	out := cmd.OutOrStdout()

	for _, namespace := range secretNamespaces(cl.Config) {
		secret, err := k8s.GetSecret(cmd.Context(), cl.Clientset, namespace, secretName)
		if err != nil {
			return fmt.Errorf("failed to get secret: %w", err)
		}

		keys := make([]string, 0, len(secret.Data))
		for key := range secret.Data {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		notify.Infof(
			out,
			"secret %s/%s type %s keys [%s]",
			namespace,
			secretName,
			secret.Type,
			strings.Join(keys, ", "),
		)
	}

	return nil
}
