package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filezen/internal/logging"
	"filezen/internal/organize"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [dir]",
		Short: "Delete files older than the age threshold",
		Long: `Clean removes regular files in the target directory whose age exceeds
the threshold in days. Files exactly at the threshold are kept.`,
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
			days := cfg.Cleanup.MaxAgeDays
			if cmd.Flags().Changed("days") {
				days, _ = cmd.Flags().GetInt("days")
			}

			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			cleanCtx := logging.WithOperation(cmd.Context(), organize.KindClean)
			cleaner := organize.NewCleaner(logger, ctx.progress(cmd))
			report, err := cleaner.CleanOldFiles(cleanCtx, dir, days)
			if err != nil {
				return err
			}

			store, err := ctx.openHistory()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warn: history unavailable: %v\n", err)
			} else if store != nil {
				defer store.Close()
				saveRun(cmd, store, cleanRunRecord(report))
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, report)
			}
			renderCleanReport(cmd, report)
			return nil
		},
	}
	cmd.Flags().Int("days", 0, "age threshold in days (default from config)")
	return cmd
}
