package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"housefactory/domain"
	"housefactory/factory"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with args and returns captured stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})
	err := Execute()
	return out.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestDemonstration_NoArgs(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t,
		"Panel house built\n"+
			"Wooden house built\n"+
			"Brick house built\n"+
			"Foam block house built\n",
		out)
}

func TestDemonstration_RejectsArgs(t *testing.T) {
	out, err := run(t, "straw")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestBuildCommand(t *testing.T) {
	t.Run("single kind", func(t *testing.T) {
		out, err := run(t, "build", "brick")
		require.NoError(t, err)
		assert.Equal(t, "Brick house built\n", out)
	})

	t.Run("kinds in given order", func(t *testing.T) {
		out, err := run(t, "build", "foam-block", "panel")
		require.NoError(t, err)
		assert.Equal(t, "Foam block house built\nPanel house built\n", out)
	})

	t.Run("unknown kind builds nothing", func(t *testing.T) {
		out, err := run(t, "build", "panel", "straw")
		assert.True(t, domain.IsUnknownKindError(err))
		assert.Empty(t, out)
	})

	t.Run("requires a kind", func(t *testing.T) {
		_, err := run(t, "build")
		assert.Error(t, err)
	})
}

func TestVariantsCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := run(t, "variants", "--output", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "panel | PanelCreator | PanelHouse | Panel house built\n")
		assert.Contains(t, out, "foam-block | FoamBlockCreator | FoamBlockHouse | Foam block house built\n")
	})

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "variants", "--output", "json")
		require.NoError(t, err)
		var got []factory.Variant
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, factory.Variants(), got)
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := run(t, "variants", "--output", "yaml")
		require.NoError(t, err)
		var got []factory.Variant
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		assert.Equal(t, factory.Variants(), got)
	})

	t.Run("format does not leak into the next run", func(t *testing.T) {
		t.Run("json first", func(t *testing.T) {
			_, err := run(t, "variants", "--output", "json")
			require.NoError(t, err)
		})

		out, err := run(t, "variants")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "panel | PanelCreator"), "got %q", out)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := run(t, "variants", "--output", "xml")
		assert.ErrorContains(t, err, "unsupported output format")
	})
}

func TestLogLevel(t *testing.T) {
	t.Run("warning alias", func(t *testing.T) {
		out, err := run(t, "--log-level", "warning", "build", "panel")
		require.NoError(t, err)
		assert.Equal(t, "Panel house built\n", out)
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		out, err := run(t, "--log-level", "loud")
		assert.ErrorContains(t, err, "unknown log level")
		assert.Empty(t, out)
	})
}
