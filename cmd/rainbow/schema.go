package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/salsasteve/rainbow/internal/domain"
	"github.com/salsasteve/rainbow/internal/infra/repos/schemas"
	"github.com/salsasteve/rainbow/internal/schema"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage schemas",
	}

	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := schemas.NewFileRepository(schemasDir)
			list, err := repo.List()
			if err != nil {
				return err
			}

			if format == "json" {
				return printJSON(list)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCOLUMNS")
			for _, s := range list {
				cols := "invalid"
				if parsed, err := schema.Resolve(s); err == nil {
					cols = schema.Format(parsed)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.Name, cols)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().StringVar(&format, "format", "table", "Output format (table|json)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show schema details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := schemas.NewFileRepository(schemasDir)
			s, err := repo.Get(args[0])
			if err != nil {
				return err
			}
			return printYAML(s)
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate <id|path>",
		Short: "Validate a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := schemas.NewFileRepository(schemasDir)
			var s *domain.Schema
			var err error

			if looksLikePath(args[0]) {
				s, err = repo.GetByPath(args[0])
			} else {
				s, err = repo.Get(args[0])
			}
			if err != nil {
				return err
			}

			columns, err := schema.Resolve(s)
			if err != nil {
				fmt.Printf("Validation failed: %v\n", err)
				return err
			}

			fmt.Printf("Schema '%s' is valid (%d columns)\n", s.Name, len(columns))
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd)
	return cmd
}
