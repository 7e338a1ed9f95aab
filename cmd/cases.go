package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/clincase/internal/casedef"
)

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "List available clinical cases",
	RunE: func(cmd *cobra.Command, args []string) error {
		casesDir, err := resolveCasesDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve cases dir: %w", err)
		}
		if err := casedef.LoadDir(casesDir); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: skipping case directory:", err)
		}

		all := casedef.All()
		if len(all) == 0 {
			fmt.Println("No cases available.")
			return nil
		}

		fmt.Printf("%-40s  %-22s  %-12s  %7s  %s\n", "ID", "Specialty", "Difficulty", "Credits", "Title")
		fmt.Println(strings.Repeat("─", 110))
		for _, c := range all {
			fmt.Printf("%-40s  %-22s  %-12s  %7.1f  %s\n",
				c.ID, c.Specialty, c.Difficulty, c.Credits, c.Title)
		}
		return nil
	},
}
