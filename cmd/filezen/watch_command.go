package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"filezen/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a directory and organize it as files settle",
		Long: `Watch polls the target directory and runs the full pipeline whenever
loose files have stopped changing for the configured settle window. Only one
watcher runs per machine; a second instance exits immediately.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ctx.baseDir(args)
			if err != nil {
				return err
			}
			if err := requireDirectory(dir); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			sortBySize, policy, err := ctx.organizeOptions(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			opts := pipelineOptions{
				dir:        dir,
				sortBySize: sortBySize,
				policy:     policy,
				cleanup:    cfg.Cleanup.Enabled,
				maxAgeDays: cfg.Cleanup.MaxAgeDays,
			}
			pipeline := func(passCtx context.Context) error {
				_, err := ctx.runPipeline(passCtx, cmd, opts)
				return err
			}

			watcher, err := watch.New(cfg, dir, logger, pipeline)
			if err != nil {
				return err
			}

			signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return watcher.Run(signalCtx)
		},
	}
	cmd.Flags().Bool("sort-by-size", false, "move each group smallest file first")
	cmd.Flags().String("collision", "", "destination collision policy (rename, skip, overwrite)")
	return cmd
}
