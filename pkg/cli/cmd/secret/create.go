package secret

import (
	"fmt"
	"os"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/cli/helpers"
	"github.com/arcops/arcctl/pkg/io/configmanager"
	"github.com/arcops/arcctl/pkg/k8s"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// Secret keys the scale set chart reads for each auth method.
const (
	tokenKey             = "github_token"
	appIDKey             = "github_app_id"
	appInstallationIDKey = "github_app_installation_id"
	appPrivateKeyKey     = "github_app_private_key"
)

// createOptions carry the credential flags for secret create.
type createOptions struct {
	method         string
	token          string
	appID          string
	installationID string
	privateKeyFile string
}

// NewCreateCmd creates and returns the secret create command.
func NewCreateCmd() *cobra.Command {
	opts := &createOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update the GitHub auth secret",
		Long: `Create the GitHub auth secret in every runner namespace, replacing an ` +
			`existing secret of the same name. The secret shape follows the ` +
			`configured auth method: a personal access token under github_token, ` +
			`or GitHub App credentials under github_app_id, ` +
			`github_app_installation_id, and github_app_private_key.`,
		SilenceUsage: true,
	}

	manager := configmanager.NewCommandConfigManager(cmd)

	cmd.Flags().StringVar(&opts.method, "method", "", "auth method: pat or github-app (defaults to the configured method)")
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token")
	cmd.Flags().StringVar(&opts.appID, "app-id", "", "GitHub App ID")
	cmd.Flags().StringVar(&opts.installationID, "installation-id", "", "GitHub App installation ID")
	cmd.Flags().StringVar(&opts.privateKeyFile, "private-key-file", "", "path to the GitHub App private key PEM file")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runCreate(cmd, manager, opts)
	}

	return cmd
}

func runCreate(cmd *cobra.Command, manager *configmanager.ConfigManager, opts *createOptions) error {
	tmr := timer.New()
	tmr.Start()

	cl, err := helpers.BuildClients(cmd, manager, tmr)
	if err != nil {
		return err
	}

	method := cl.Config.Spec.Auth.Method
	if opts.method != "" {
		method = v1alpha1.AuthMethod(opts.method)
	}

	if !method.Valid() {
		return fmt.Errorf("%w: %q", v1alpha1.ErrAuthMethodUnknown, method)
	}

	data, err := buildSecretData(method, opts)
	if err != nil {
		return err
	}

	secretName := cl.Config.Spec.Auth.SecretName
	out := cmd.OutOrStdout()
	notify.Titlef(out, "Create GitHub auth secret...")

	for _, namespace := range secretNamespaces(cl.Config) {
		tmr.NewStage()

		err = k8s.EnsureNamespace(cmd.Context(), cl.Clientset, namespace)
		if err != nil {
			return fmt.Errorf("failed to ensure namespace %q: %w", namespace, err)
		}

		err = k8s.ApplySecret(cmd.Context(), cl.Clientset, namespace, secretName, data)
		if err != nil {
			return fmt.Errorf("failed to apply secret in namespace %q: %w", namespace, err)
		}

		notify.SuccessWithTimerf(out, tmr, "secret %s/%s applied", namespace, secretName)
	}

	return nil
}

// buildSecretData assembles the secret payload for the chosen auth method.
func buildSecretData(method v1alpha1.AuthMethod, opts *createOptions) (map[string][]byte, error) {
	switch method {
	case v1alpha1.AuthMethodPAT:
		if opts.token == "" {
			return nil, ErrTokenRequired
		}

		return map[string][]byte{tokenKey: []byte(opts.token)}, nil

	case v1alpha1.AuthMethodGitHubApp:
		if opts.appID == "" || opts.installationID == "" || opts.privateKeyFile == "" {
			return nil, ErrAppCredentialsRequired
		}

		privateKey, err := os.ReadFile(opts.privateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read private key file: %w", err)
		}

		return map[string][]byte{
			appIDKey:             []byte(opts.appID),
			appInstallationIDKey: []byte(opts.installationID),
			appPrivateKeyKey:     privateKey,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", v1alpha1.ErrAuthMethodUnknown, method)
	}
}
