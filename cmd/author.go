package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/clincase/internal/caseauthor"
	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/llm"
	"github.com/abhisek/clincase/internal/store"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Author a new clinical case with the LLM",
	Long: `Generate a new staged clinical case and save it to the cases directory.

The generated case runs through the same validators the trainer uses, so a
saved case is guaranteed to be playable and completable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		specialty, _ := cmd.Flags().GetString("specialty")
		topic, _ := cmd.Flags().GetString("topic")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		creditsValue, _ := cmd.Flags().GetFloat64("credits")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		casesDir, err := resolveCasesDir(cmd)
		if err != nil {
			return fmt.Errorf("resolve cases dir: %w", err)
		}
		if err := casedef.LoadDir(casesDir); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: skipping case directory:", err)
		}

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider required for authoring: %w", err)
		}

		var titles []string
		for _, c := range casedef.All() {
			titles = append(titles, c.Title)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 3*time.Minute)
		defer cancel()

		fmt.Printf("Authoring a %s case on %q...\n", specialty, topic)
		author := caseauthor.New(provider, caseauthor.DefaultConfig())
		c, err := author.Author(ctx, caseauthor.AuthorInput{
			Specialty:      specialty,
			Topic:          topic,
			Difficulty:     difficulty,
			Credits:        creditsValue,
			ExistingTitles: titles,
		})
		if err != nil {
			return fmt.Errorf("author case: %w", err)
		}

		path, err := casedef.SaveFile(casesDir, c)
		if err != nil {
			return fmt.Errorf("save case: %w", err)
		}

		fmt.Printf("Saved %q (%d stages, %.1f credits) to %s\n",
			c.Title, c.StageCount(), c.Credits, path)
		return nil
	},
}

func init() {
	authorCmd.Flags().String("specialty", "Cardiology", "Medical specialty for the case")
	authorCmd.Flags().String("topic", "", "Clinical scenario to build the case around (required)")
	authorCmd.Flags().String("difficulty", "Moderate", "Target difficulty label")
	authorCmd.Flags().Float64("credits", 1.0, "CME credit value awarded on completion")
	_ = authorCmd.MarkFlagRequired("topic")
}
