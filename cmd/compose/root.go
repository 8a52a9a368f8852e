package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	objectName string
	format     string
	execCodecs []string
	ignore     []string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "compose",
	Short: "Load typed documents from folder trees",
	Long: `compose reads JSON, YAML and other documents, alone or assembled from
a folder of sibling files, and writes them back as a single document.

Defaults for --object-name and --format can be set with COMPOSE_OBJECT_NAME
and COMPOSE_FORMAT, in the environment or in a .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to read .env", "error", err)
		}
		applyEnv(cmd, "object-name", "COMPOSE_OBJECT_NAME")
		applyEnv(cmd, "format", "COMPOSE_FORMAT")
	},
}

// applyEnv copies an environment variable into a persistent flag the
// user did not set explicitly.
func applyEnv(cmd *cobra.Command, flag, env string) {
	value, ok := os.LookupEnv(env)
	if !ok || cmd.Flags().Changed(flag) {
		return
	}
	if err := cmd.Flags().Set(flag, strings.TrimSpace(value)); err != nil {
		slog.Warn("ignoring environment default", "env", env, "error", err)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&objectName, "object-name", "object", "Stem of a folder's own document")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "json", "Output format (json or yaml)")
	rootCmd.PersistentFlags().StringArrayVar(&execCodecs, "exec", nil, "Decode an extension by running a program, as ext=program (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&ignore, "ignore", nil, "Skip collection entries matching a pattern (repeatable)")
}
