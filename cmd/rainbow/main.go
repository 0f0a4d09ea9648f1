package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/salsasteve/rainbow/internal/config"
	"github.com/salsasteve/rainbow/internal/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	schemasDir string
	targetsDir string
	runsDBPath string
	logLevel   string
)

func main() {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:           "rainbow",
		Short:         "Fake tabular data generator and assorted tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&schemasDir, "schemas-dir", cfg.SchemasDir, "Schemas directory")
	rootCmd.PersistentFlags().StringVar(&targetsDir, "targets-dir", cfg.TargetsDir, "Targets directory")
	rootCmd.PersistentFlags().StringVar(&runsDBPath, "runs-db", cfg.RunsDBPath, "Runs database path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level")

	rootCmd.AddCommand(fakeCmd(cfg))
	rootCmd.AddCommand(kindsCmd())
	rootCmd.AddCommand(schemaCmd())
	rootCmd.AddCommand(targetCmd())
	rootCmd.AddCommand(runsCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(quoteCmd(cfg))
	rootCmd.AddCommand(telegramCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger() *logging.Logger {
	return logging.NewLogger(logLevel)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func looksLikePath(arg string) bool {
	return strings.Contains(arg, "/") ||
		strings.HasSuffix(arg, ".yaml") ||
		strings.HasSuffix(arg, ".yml") ||
		strings.HasSuffix(arg, ".json")
}
