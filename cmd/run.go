package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/clincase/internal/app"
	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/llm"
	"github.com/abhisek/clincase/internal/narrative"
	"github.com/abhisek/clincase/internal/store"
	"github.com/abhisek/clincase/internal/trainer"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	casesDir, err := resolveCasesDir(cmd)
	if err != nil {
		return fmt.Errorf("resolve cases dir: %w", err)
	}
	if err := casedef.LoadDir(casesDir); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: skipping case directory:", err)
	}

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo:    eventRepo,
		SnapshotRepo: st.SnapshotRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Case sessions will be unavailable.")
	} else {
		narrator := narrative.NewService(provider, narrative.DefaultConfig())
		opts.Trainer = trainer.New(narrator, eventRepo, st.SnapshotRepo())
	}

	return app.Run(opts)
}
