package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/salsasteve/rainbow/internal/infra/repos/runs"
	"github.com/salsasteve/rainbow/internal/timeutil"
	"github.com/spf13/cobra"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect generation history",
	}

	var limit int
	var status string
	var format string
	var since string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepo := runs.NewSQLiteRepository(runsDBPath)
			if err := runRepo.Init(); err != nil {
				return err
			}
			defer runRepo.Close()

			filter := runs.ListFilter{Limit: limit, Status: status}
			if since != "" {
				cutoff, err := timeutil.ParseSince(since, time.Now())
				if err != nil {
					return err
				}
				filter.Since = cutoff
			}

			list, err := runRepo.Find(filter)
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(list)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCHEMA\tROWS\tTARGET\tOUTPUT\tSTATUS\tSTARTED")
			for _, r := range list {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					shortID(r.ID), r.SchemaName, r.Rows, r.TargetKind, r.Output, r.Status,
					r.StartedAt.Local().Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "Limit results")
	listCmd.Flags().StringVar(&status, "status", "", "Filter by status")
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")
	listCmd.Flags().StringVar(&since, "since", "", "Only runs started after an RFC3339 time or within an age (e.g. 36h, 2d, 1w)")

	showCmd := &cobra.Command{
		Use:   "show <run_id>",
		Short: "Show run details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepo := runs.NewSQLiteRepository(runsDBPath)
			if err := runRepo.Init(); err != nil {
				return err
			}
			defer runRepo.Close()

			run, err := runRepo.Get(args[0])
			if err != nil {
				return err
			}
			if err := printYAML(run); err != nil {
				return err
			}
			if len(run.Stats) > 0 {
				fmt.Printf("stats: %s\n", run.Stats)
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}
