package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"filezen/internal/history"
	"filezen/internal/logging"
	"filezen/internal/organize"
)

type pipelineOptions struct {
	dir        string
	sortBySize bool
	policy     organize.CollisionPolicy
	cleanup    bool
	maxAgeDays int
}

type pipelineResult struct {
	Clean    *organize.CleanReport    `json:"clean,omitempty"`
	Scanned  int                      `json:"scanned"`
	Organize *organize.OrganizeReport `json:"organize"`
}

// runPipeline executes the full flow: optional cleanup, then a fresh scan,
// then organize. Each completed stage is recorded in run history.
func (c *commandContext) runPipeline(ctx context.Context, cmd *cobra.Command, opts pipelineOptions) (*pipelineResult, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	progress := c.progress(cmd)

	store, err := c.openHistory()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warn: history unavailable: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	// One correlation ID spans all stages of this pass; each stage logs
	// under its own operation name.
	ctx = logging.WithRunID(ctx, uuid.NewString())

	result := &pipelineResult{}

	if opts.cleanup {
		cleaner := organize.NewCleaner(logger, progress)
		cleanReport, err := cleaner.CleanOldFiles(logging.WithOperation(ctx, organize.KindClean), opts.dir, opts.maxAgeDays)
		if err != nil {
			return nil, err
		}
		result.Clean = cleanReport
		saveRun(cmd, store, cleanRunRecord(cleanReport))
	}

	scanner := organize.NewScanner(logger, progress)
	grouping, err := scanner.Scan(logging.WithOperation(ctx, organize.KindScan), opts.dir)
	if err != nil {
		return nil, err
	}
	result.Scanned = grouping.Total()

	organizer := organize.NewOrganizer(logger, progress, opts.policy)
	report, err := organizer.Organize(logging.WithOperation(ctx, organize.KindOrganize), grouping, opts.sortBySize)
	if err != nil {
		return nil, err
	}
	result.Organize = report
	saveRun(cmd, store, organizeRunRecord(result.Scanned, report))

	return result, nil
}

// organizeOptions merges config defaults with explicitly set flags.
func (c *commandContext) organizeOptions(cmd *cobra.Command) (bool, organize.CollisionPolicy, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return false, "", err
	}
	sortBySize := cfg.Organize.SortBySize
	if cmd.Flags().Changed("sort-by-size") {
		sortBySize, _ = cmd.Flags().GetBool("sort-by-size")
	}
	collision := cfg.Organize.OnCollision
	if cmd.Flags().Changed("collision") {
		collision, _ = cmd.Flags().GetString("collision")
	}
	policy, err := organize.ParseCollisionPolicy(collision)
	if err != nil {
		return false, "", err
	}
	return sortBySize, policy, nil
}

func organizeRunRecord(scanned int, report *organize.OrganizeReport) history.Run {
	return history.Run{
		RunID:      report.RunID,
		Kind:       organize.KindOrganize,
		BaseDir:    report.BaseDir,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Scanned:    scanned,
		Moved:      report.Moved,
		Warnings:   len(report.Warnings),
		DetailJSON: marshalDetail(report),
	}
}

func cleanRunRecord(report *organize.CleanReport) history.Run {
	return history.Run{
		RunID:      report.RunID,
		Kind:       organize.KindClean,
		BaseDir:    report.BaseDir,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Deleted:    len(report.Deleted),
		Warnings:   len(report.Warnings),
		DetailJSON: marshalDetail(report),
	}
}

func marshalDetail(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func renderOrganizeReport(cmd *cobra.Command, report *organize.OrganizeReport) {
	if len(report.Groups) > 0 {
		rows := make([][]string, 0, len(report.Groups))
		for _, group := range report.Groups {
			rows = append(rows, []string{
				group.Key,
				group.Folder,
				strconv.Itoa(group.Moved),
				strconv.Itoa(group.Skipped),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"EXTENSION", "FOLDER", "MOVED", "SKIPPED"},
			rows,
			[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
		))
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: %s: %s\n", warning.Name, warning.Detail)
	}
}

func renderCleanReport(cmd *cobra.Command, report *organize.CleanReport) {
	if len(report.Deleted) > 0 {
		rows := make([][]string, 0, len(report.Deleted))
		for _, deleted := range report.Deleted {
			rows = append(rows, []string{deleted.Name, fmt.Sprintf("%.1f", deleted.AgeDays)})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"DELETED FILE", "AGE (DAYS)"},
			rows,
			[]columnAlignment{alignLeft, alignRight},
		))
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(cmd.OutOrStdout(), "warning: %s: %s\n", warning.Name, warning.Detail)
	}
}
