// Package cmd holds the bloom CLI commands.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mayobojhosue-coder/app-bloom/internal/config"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage"
	"github.com/mayobojhosue-coder/app-bloom/internal/storage/sqlite"
	"github.com/mayobojhosue-coder/app-bloom/pkg/logging"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	configFile string
	cfg        *config.Config
	store      storage.Store
}

// Execute runs the bloom command tree against os.Args. The store is closed
// whether or not the command succeeds.
func Execute(ctx context.Context) error {
	a := &app{}
	return execute(ctx, a, newRootCommand(a))
}

func execute(ctx context.Context, a *app, root *cobra.Command) error {
	defer a.close()
	return root.ExecuteContext(ctx)
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bloom",
		Short: "Take attendance for Bloom practice",
		Long: `Bloom reconciles a pasted list of names against the girls, boys and
coaches rosters and prints a copyable attendance report.

Settings come from bloom.yaml, .env files and BLOOM_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return err
			}
			logging.Setup(cfg.LogLevel)
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default ./bloom.yaml)")

	root.AddCommand(newReportCommand(a))
	root.AddCommand(newRosterCommand(a))
	root.AddCommand(newHistoryCommand(a))
	root.AddCommand(newHashPasswordCommand())

	return root
}

// openStore opens the database and seeds the configured rosters on first use.
func (a *app) openStore(ctx context.Context) (storage.Store, error) {
	if a.store != nil {
		return a.store, nil
	}

	store, err := sqlite.New(a.cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if _, err := store.SeedRosters(ctx, a.cfg.Rosters); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed rosters: %w", err)
	}

	a.store = store
	return store, nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
