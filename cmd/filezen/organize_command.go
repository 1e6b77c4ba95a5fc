package main

import (
	"github.com/spf13/cobra"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [dir]",
		Short: "Group files by extension and move them into category folders",
		Long: `Organize scans the target directory, groups regular files by their
lowercase extension, and moves every group into an uppercase folder named
after the extension. Files without an extension go to OTHERS.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ctx.baseDir(args)
			if err != nil {
				return err
			}
			if err := requireDirectory(dir); err != nil {
				return err
			}
			sortBySize, policy, err := ctx.organizeOptions(cmd)
			if err != nil {
				return err
			}
			result, err := ctx.runPipeline(cmd.Context(), cmd, pipelineOptions{
				dir:        dir,
				sortBySize: sortBySize,
				policy:     policy,
			})
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, result.Organize)
			}
			renderOrganizeReport(cmd, result.Organize)
			return nil
		},
	}
	cmd.Flags().Bool("sort-by-size", false, "move each group smallest file first")
	cmd.Flags().String("collision", "", "destination collision policy (rename, skip, overwrite)")
	return cmd
}
