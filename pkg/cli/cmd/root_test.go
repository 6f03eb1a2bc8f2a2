package cmd_test

import (
	"bytes"
	"testing"

	"github.com/arcops/arcctl/pkg/cli/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("1.2.3", "abc1234", "2026-08-24")

	assert.Equal(t, "arcctl", rootCmd.Use)
	assert.Contains(t, rootCmd.Version, "1.2.3")
	assert.Contains(t, rootCmd.Version, "abc1234")

	subcommands := make([]string, 0)
	for _, sub := range rootCmd.Commands() {
		subcommands = append(subcommands, sub.Name())
	}

	assert.Contains(t, subcommands, "cluster")
	assert.Contains(t, subcommands, "controller")
	assert.Contains(t, subcommands, "runners")
	assert.Contains(t, subcommands, "secret")
}

func TestRootCmdShowsHelp(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("dev", "none", "unknown")

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	err := cmd.Execute(rootCmd)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "controller")
}

func TestRootCmdUnknownSubcommand(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("dev", "none", "unknown")

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"bogus"})

	err := cmd.Execute(rootCmd)

	require.Error(t, err)
}
