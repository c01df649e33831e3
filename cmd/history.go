package main

import (
	"context"
	"fmt"
	"time"

	"github.com/purarue/m3u-shuf/internal/repositories"
	"github.com/purarue/m3u-shuf/internal/shared"
	"github.com/urfave/cli/v3"
)

// openHistory opens the configured history database.
func (r *Runner) openHistory() (*repositories.HistoryRepository, func() error, error) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}
	return repositories.NewHistoryRepository(db), db.Close, nil
}

// HistoryList prints recorded shuffle runs, newest first.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	if !r.config.History.Enabled {
		r.logger.Warn("history recording is disabled in config, showing existing records")
	}

	repo, closeDB, err := r.openHistory()
	if err != nil {
		return err
	}
	defer closeDB()

	runs, err := repo.List(int(cmd.Int("limit")))
	if err != nil {
		return fmt.Errorf("failed to list shuffle history: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(runs, cmd.Bool("pretty"))
	}

	if len(runs) == 0 {
		return r.writePlain("No shuffle runs recorded.\n")
	}

	for _, run := range runs {
		r.writePlain("%s  %s → %s  (%d tracks)\n",
			run.CreatedAt.Local().Format(time.DateTime), run.Source, run.Destination, run.TrackCount)
	}
	return nil
}

// HistoryClear deletes all recorded shuffle runs.
func (r *Runner) HistoryClear(ctx context.Context, cmd *cli.Command) error {
	repo, closeDB, err := r.openHistory()
	if err != nil {
		return err
	}
	defer closeDB()

	deleted, err := repo.Clear()
	if err != nil {
		return fmt.Errorf("failed to clear shuffle history: %w", err)
	}

	r.logger.Info("cleared shuffle history", "deleted", deleted)
	return r.writePlain("Cleared %d shuffle run(s).\n", deleted)
}

// historyCommand inspects and clears recorded shuffle runs.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect recorded shuffle runs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded shuffle runs, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to show (0 = all)",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.HistoryList,
			},
			{
				Name:   "clear",
				Usage:  "Delete all recorded shuffle runs",
				Action: r.HistoryClear,
			},
		},
	}
}
