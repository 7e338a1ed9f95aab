package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/clincase/internal/store"
)

var creditsCmd = &cobra.Command{
	Use:   "credits",
	Short: "List earned CME credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		records, err := s.EventRepo().QueryCredentials(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query credentials: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No credentials earned yet.")
			return nil
		}

		total, err := s.EventRepo().TotalCredits(ctx)
		if err != nil {
			return fmt.Errorf("sum credits: %w", err)
		}

		fmt.Printf("%-19s  %-40s  %7s  %5s  %s\n", "Earned", "Case", "Credits", "Steps", "Title")
		fmt.Println(strings.Repeat("─", 110))
		for _, r := range records {
			fmt.Printf("%-19s  %-40s  %7.1f  %5d  %s\n",
				r.Timestamp.Format("2006-01-02 15:04:05"), r.CaseID, r.Credits, r.StepsTaken, r.CaseTitle)
		}
		fmt.Printf("\nTotal: %.1f CME credits\n", total)
		return nil
	},
}

func init() {
	creditsCmd.Flags().Int("limit", 50, "Maximum number of credentials to list")
}
