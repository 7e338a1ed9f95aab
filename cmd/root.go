package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/clincase/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "clincase",
	Short: "Clinical case trainer for physicians",
	Long:  "clincase — terminal CME trainer that walks physicians through staged clinical cases with an AI educator.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CLINCASE_DB env var)")
	rootCmd.PersistentFlags().String("cases", "", "Directory of additional case definition files (overrides CLINCASE_CASES env var)")

	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(authorCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CLINCASE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCasesDir returns the directory scanned for authored case files:
// --cases flag, then CLINCASE_CASES, then a "cases" dir next to the database.
func resolveCasesDir(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("cases"); p != "" {
		return p, nil
	}
	if p := os.Getenv("CLINCASE_CASES"); p != "" {
		return p, nil
	}
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(dbPath), "cases"), nil
}
