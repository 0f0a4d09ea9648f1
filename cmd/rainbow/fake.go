package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/salsasteve/rainbow/internal/app"
	"github.com/salsasteve/rainbow/internal/config"
	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/infra/repos/runs"
	"github.com/salsasteve/rainbow/internal/infra/repos/schemas"
	"github.com/salsasteve/rainbow/internal/infra/repos/targets"
	"github.com/salsasteve/rainbow/internal/registry"
	"github.com/spf13/cobra"
)

func fakeCmd(cfg *config.Config) *cobra.Command {
	var (
		columns    string
		schemaID   string
		schemaPath string
		rows       int
		filePath   string
		targetID   string
		targetDSN  string
		targetKind string
		table      string
		mode       string
		seed       int64
	)

	cmd := &cobra.Command{
		Use:   "fake",
		Short: "Generate fake rows and write them to a CSV file or a target",
		Example: `  rainbow fake -c first:FirstName,age:Number -r 3 -f people.csv
  rainbow fake --schema users -r 1000 --target-id local --table users --mode truncate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer logger.Sync()

			runRepo := runs.NewSQLiteRepository(runsDBPath)
			if err := runRepo.Init(); err != nil {
				return err
			}
			defer runRepo.Close()

			svc := app.NewGenerateService(
				schemas.NewFileRepository(schemasDir),
				targets.NewFileRepository(targetsDir),
				runRepo,
				registry.DefaultGeneratorRegistry(),
				logger,
				cfg.BatchSize,
			)

			req := &domain.GenerateRequest{
				Columns:    columns,
				SchemaID:   schemaID,
				SchemaPath: schemaPath,
				Rows:       rows,
				OutputPath: filePath,
				TargetID:   targetID,
				Table:      table,
				Mode:       mode,
			}

			if targetDSN != "" {
				if targetKind == "" {
					return fmt.Errorf("--target-kind required when using --target DSN")
				}
				req.Target = &domain.TargetConfig{
					Name: "inline-target",
					Kind: targetKind,
					DSN:  targetDSN,
				}
			}
			if (req.Target != nil || req.TargetID != "") && req.Mode == "" {
				req.Mode = cfg.DefaultMode
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			run, err := svc.Run(req)
			if err != nil {
				if run != nil {
					return fmt.Errorf("run %s failed: %w", shortID(run.ID), err)
				}
				return err
			}

			var stats domain.RunStats
			_ = json.Unmarshal(run.Stats, &stats)

			// keep stdout for the CSV itself
			summary := os.Stdout
			if filePath == app.StdoutPath {
				summary = os.Stderr
			}
			w := tabwriter.NewWriter(summary, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Run:\t%s\n", run.ID)
			fmt.Fprintf(w, "Output:\t%s (%s)\n", run.Output, run.TargetKind)
			fmt.Fprintf(w, "Rows:\t%d\n", stats.RowsGenerated)
			fmt.Fprintf(w, "Seed:\t%d\n", run.Seed)
			fmt.Fprintf(w, "Duration:\t%.2fs\n", stats.DurationSeconds)
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&columns, "columns", "c", "", "Columns as name:Type,name:Type")
	cmd.Flags().StringVar(&schemaID, "schema", "", "Schema ID or name from the schemas directory")
	cmd.Flags().StringVar(&schemaPath, "schema-path", "", "Schema file path (inside the schemas directory)")
	cmd.Flags().IntVarP(&rows, "rows", "r", 0, "Number of rows to generate")
	cmd.Flags().StringVarP(&filePath, "file-path", "f", "", "CSV output file (- for stdout)")
	cmd.Flags().StringVar(&targetID, "target-id", "", "Target ID")
	cmd.Flags().StringVar(&targetDSN, "target", "", "Target DSN")
	cmd.Flags().StringVar(&targetKind, "target-kind", "", "Target kind (required with --target)")
	cmd.Flags().StringVar(&table, "table", "", "Table (or index) name for targets")
	cmd.Flags().StringVar(&mode, "mode", "", "Table mode (create|truncate|append)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Seed for RNG")
	_ = cmd.MarkFlagRequired("rows")

	return cmd
}

func kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List supported column types",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range registry.DefaultGeneratorRegistry().List() {
				fmt.Println(k)
			}
			return nil
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
