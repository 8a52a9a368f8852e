package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/aretw0/compose/pkg/adapters/fs"
	"github.com/spf13/cobra"
)

var (
	watchPattern string
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Convert a document or folder again on every change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		run := func() {
			out, err := convert(path)
			if err != nil {
				slog.Error("convert failed", "path", path, "error", err)
				return
			}
			fmt.Print(out)
		}

		run()
		slog.Info("watching", "path", path)
		err := fs.Watch(ctx, path, watchPattern, slog.Default(), func(changed []string) {
			slog.Debug("change detected", "paths", changed)
			run()
		})
		if err != nil {
			fatal("Error watching", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Only react to paths matching this pattern, relative to path")
}
