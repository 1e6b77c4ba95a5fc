package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"filezen/internal/history"
	"filezen/internal/logging"
	"filezen/internal/organize"
)

type scanGroup struct {
	Key   string `json:"key"`
	Files int    `json:"files"`
}

type scanSummary struct {
	BaseDir string      `json:"base_dir"`
	Scanned int         `json:"scanned"`
	Groups  []scanGroup `json:"groups"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [dir]",
		Short: "Group a directory's files by extension without moving anything",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ctx.baseDir(args)
			if err != nil {
				return err
			}
			if err := requireDirectory(dir); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			started := time.Now().UTC()
			runID := uuid.NewString()
			scanCtx := logging.WithRunID(logging.WithOperation(cmd.Context(), organize.KindScan), runID)
			scanner := organize.NewScanner(logger, ctx.progress(cmd))
			grouping, err := scanner.Scan(scanCtx, dir)
			if err != nil {
				return err
			}

			summary := summarizeGrouping(grouping)
			if store, herr := ctx.openHistory(); herr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warn: history unavailable: %v\n", herr)
			} else if store != nil {
				defer store.Close()
				saveRun(cmd, store, history.Run{
					RunID:      runID,
					Kind:       organize.KindScan,
					BaseDir:    grouping.BaseDir,
					StartedAt:  started,
					FinishedAt: time.Now().UTC(),
					Scanned:    grouping.Total(),
				})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, summary)
			}
			if len(summary.Groups) > 0 {
				rows := make([][]string, 0, len(summary.Groups))
				for _, group := range summary.Groups {
					rows = append(rows, []string{group.Key, strconv.Itoa(group.Files)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"EXTENSION", "FILES"},
					rows,
					[]columnAlignment{alignLeft, alignRight},
				))
			}
			return nil
		},
	}
}

func summarizeGrouping(grouping *organize.Grouping) scanSummary {
	summary := scanSummary{BaseDir: grouping.BaseDir, Scanned: grouping.Total()}
	for _, key := range grouping.Keys() {
		summary.Groups = append(summary.Groups, scanGroup{Key: key, Files: len(grouping.Groups[key])})
	}
	return summary
}
