package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/salsasteve/rainbow/internal/app"
	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/infra/repos/targets"
	"github.com/salsasteve/rainbow/internal/validation"
	"github.com/spf13/cobra"
)

func loadTarget(repo *targets.FileRepository, arg string) (*domain.TargetConfig, error) {
	if looksLikePath(arg) {
		return repo.GetByPath(arg)
	}
	return repo.Get(arg)
}

func targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage targets",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := targets.NewFileRepository(targetsDir)
			list, err := repo.List()
			if err != nil {
				return err
			}
			list = targets.RedactTargets(list)

			if format == "json" {
				return printJSON(list)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tKIND\tDSN")
			for _, t := range list {
				dsn := t.DSN
				if len(dsn) > 50 {
					dsn = dsn[:47] + "..."
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Kind, dsn)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show target details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := targets.NewFileRepository(targetsDir)
			t, err := repo.Get(args[0])
			if err != nil {
				return err
			}
			return printYAML(targets.RedactTarget(t))
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTarget(targets.NewFileRepository(targetsDir), args[0])
			if err != nil {
				return err
			}

			if err := validation.ValidateTarget(t); err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Target '%s' is valid\n", t.Name)
			return nil
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check <id|path>",
		Short: "Connect to a target and probe its capabilities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTarget(targets.NewFileRepository(targetsDir), args[0])
			if err != nil {
				return err
			}

			check, err := app.CheckTarget(t)
			if check != nil {
				if perr := printJSON(check); perr != nil {
					return perr
				}
			}
			return err
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd, checkCmd)
	return cmd
}
