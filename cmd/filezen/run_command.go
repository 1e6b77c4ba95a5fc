package main

import (
	"github.com/spf13/cobra"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [dir]",
		Short: "Run cleanup and organization in one pass",
		Long: `Run executes the full pipeline against the target directory: an
age-based cleanup when enabled in the config, then a scan and organize pass.`,
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
			cleanup := cfg.Cleanup.Enabled
			if cmd.Flags().Changed("cleanup") {
				cleanup, _ = cmd.Flags().GetBool("cleanup")
			}

			result, err := ctx.runPipeline(cmd.Context(), cmd, pipelineOptions{
				dir:        dir,
				sortBySize: sortBySize,
				policy:     policy,
				cleanup:    cleanup,
				maxAgeDays: cfg.Cleanup.MaxAgeDays,
			})
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			if result.Clean != nil {
				renderCleanReport(cmd, result.Clean)
			}
			renderOrganizeReport(cmd, result.Organize)
			return nil
		},
	}
	cmd.Flags().Bool("sort-by-size", false, "move each group smallest file first")
	cmd.Flags().String("collision", "", "destination collision policy (rename, skip, overwrite)")
	cmd.Flags().Bool("cleanup", false, "run the old-file cleanup before organizing")
	return cmd
}
