// Package cli provides the Cobra-based CLI for housefactory.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"housefactory/domain"
	"housefactory/factory"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var rootCmd = &cobra.Command{
	Use:           "housefactory",
	Short:         "Builds one house with every creator variant",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg := viper.GetString("config"); cfg != "" {
			viper.SetConfigFile(cfg)
			if err := viper.ReadInConfig(); err != nil {
				return err
			}
		}

		lvl, err := parseLevel(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
		))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := factory.Kinds()
		names := make([]string, 0, len(kinds))
		for _, k := range kinds {
			names = append(names, string(k))
		}
		return buildAll(cmd.OutOrStdout(), names)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug|info|warn|error")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("HOUSEFACTORY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// build
	buildCmd := &cobra.Command{
		Use:   "build <kind>...",
		Short: "Build the named house kinds in order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildAll(cmd.OutOrStdout(), args)
		},
	}
	rootCmd.AddCommand(buildCmd)

	// variants
	var output string
	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "List creator and house pairings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeVariants(cmd.OutOrStdout(), output)
		},
	}
	variantsCmd.Flags().StringVar(&output, "output", "text", "output format: text|json|yaml")
	rootCmd.AddCommand(variantsCmd)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level: %s", s)
	}
}

// buildAll parses every kind before building so an unknown kind builds nothing.
func buildAll(w io.Writer, names []string) error {
	kinds := make([]domain.Kind, 0, len(names))
	for _, n := range names {
		k, err := factory.ParseKind(n)
		if err != nil {
			slog.Error("kind lookup failed", "kind", n, "error", err)
			return err
		}
		kinds = append(kinds, k)
	}

	reporter := factory.NewWriterReporter(w)
	for _, k := range kinds {
		if err := buildOne(k, reporter); err != nil {
			return err
		}
	}
	return nil
}

// buildOne owns one creator and its house for the length of the call.
func buildOne(k domain.Kind, r domain.Reporter) error {
	c, err := factory.NewCreator(string(k), r)
	if err != nil {
		return err
	}
	h, err := factory.Build(c)
	if err != nil {
		return err
	}
	slog.Info("house delivered", "house_id", h.ID(), "kind", h.Kind())
	return nil
}

func writeVariants(w io.Writer, format string) error {
	vs := factory.Variants()
	switch strings.ToLower(format) {
	case "json":
		b, err := json.MarshalIndent(vs, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml", "yml":
		b, err := yaml.Marshal(vs)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "", "text":
		for _, v := range vs {
			fmt.Fprintf(w, "%s | %s | %s | %s\n", v.Kind, v.Creator, v.House, v.Message)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
