// Package configmanager loads the arcctl Deployment configuration from
// arcctl.yaml, environment variables, and flags.
//
// Configuration priority: defaults < config file < ARCCTL_* environment
// variables < flags.
package configmanager

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/arcops/arcctl/pkg/apis/deployment/v1alpha1"
	"github.com/arcops/arcctl/pkg/ui/notify"
	"github.com/arcops/arcctl/pkg/ui/timer"
	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	configName = "arcctl"
	configType = "yaml"
	envPrefix  = "ARCCTL"

	// ConfigFlagName is the persistent flag selecting an explicit config file.
	ConfigFlagName = "config"
)

// ConfigManager loads and caches the v1alpha1.Deployment configuration.
type ConfigManager struct {
	Viper  *viper.Viper
	Config *v1alpha1.Deployment
	Writer io.Writer

	command      *cobra.Command
	configLoaded bool
}

// NewConfigManager creates a configuration manager writing notifications to
// the provided writer.
func NewConfigManager(writer io.Writer) *ConfigManager {
	return &ConfigManager{
		Viper:  InitializeViper(),
		Config: v1alpha1.NewDeployment(),
		Writer: writer,
	}
}

// NewCommandConfigManager constructs a ConfigManager bound to the provided
// Cobra command. The command's --config flag, when set, selects the config
// file explicitly.
func NewCommandConfigManager(cmd *cobra.Command) *ConfigManager {
	manager := NewConfigManager(cmd.OutOrStdout())
	manager.command = cmd

	if cmd.Flags().Lookup(ConfigFlagName) == nil {
		cmd.Flags().String(ConfigFlagName, "", "path to the arcctl configuration file")
	}

	return manager
}

// InitializeViper creates a Viper instance configured with arcctl's config
// search paths and environment handling.
func InitializeViper() *viper.Viper {
	viperInstance := viper.New()
	viperInstance.SetConfigName(configName)
	viperInstance.SetConfigType(configType)
	viperInstance.AddConfigPath(".")
	viperInstance.AddConfigPath("$HOME/.config/arcctl")
	viperInstance.SetEnvPrefix(envPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	return viperInstance
}

// LoadConfig loads the configuration and notifies about the config source.
// Returns the loaded config, either freshly loaded or previously cached.
func (m *ConfigManager) LoadConfig(tmr timer.Timer) (*v1alpha1.Deployment, error) {
	return m.loadConfig(tmr, false)
}

// LoadConfigSilent loads the configuration without notification output.
func (m *ConfigManager) LoadConfigSilent() (*v1alpha1.Deployment, error) {
	return m.loadConfig(nil, true)
}

func (m *ConfigManager) loadConfig(
	tmr timer.Timer,
	silent bool,
) (*v1alpha1.Deployment, error) {
	if m.configLoaded {
		return m.Config, nil
	}

	explicitPath := m.explicitConfigPath()
	if explicitPath != "" {
		m.Viper.SetConfigFile(explicitPath)
	}

	fileFound := true

	err := m.Viper.ReadInConfig()
	if err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if explicitPath == "" && errors.As(err, &notFoundErr) {
			// No config file anywhere on the search path; defaults,
			// environment, and flags still apply.
			fileFound = false
		} else {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	config := &v1alpha1.Deployment{}

	err = m.Viper.Unmarshal(config, viper.DecodeHook(decodeHooks()))
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	config.SetDefaults()

	m.Config = config
	m.configLoaded = true

	if !silent {
		m.notifyConfigSource(fileFound, tmr)
	}

	return m.Config, nil
}

func (m *ConfigManager) explicitConfigPath() string {
	if m.command == nil {
		return ""
	}

	path, err := m.command.Flags().GetString(ConfigFlagName)
	if err != nil {
		return ""
	}

	return path
}

func (m *ConfigManager) notifyConfigSource(fileFound bool, tmr timer.Timer) {
	if fileFound {
		notify.SuccessWithTimerf(m.Writer, tmr, "config loaded from %q", m.Viper.ConfigFileUsed())

		return
	}

	notify.Warningf(m.Writer, "no arcctl.yaml found, using defaults")
}

// decodeHooks returns the mapstructure hooks needed to decode the Deployment,
// notably metav1.Duration fields expressed as Go duration strings.
func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToMetaDurationHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

func stringToMetaDurationHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(metav1.Duration{}) {
			return data, nil
		}

		value, ok := data.(string)
		if !ok {
			return data, nil
		}

		parsed, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("parse duration %q: %w", value, err)
		}

		return metav1.Duration{Duration: parsed}, nil
	}
}
