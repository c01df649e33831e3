package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/purarue/m3u-shuf/internal/playlist"
	"github.com/purarue/m3u-shuf/internal/shared"
	"github.com/purarue/m3u-shuf/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive preview: parse, shuffle, then let the user
// reshuffle until they write the result or quit.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("%w: the TUI needs a playlist file (stdin is owned by the terminal)", shared.ErrMissingArgument)
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = path
	}

	pl, err := r.readPlaylist(path)
	if err != nil {
		return err
	}
	pl.Shuffle()

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/m3u-shuf-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(pl, outputPath, func(p *playlist.Playlist) error {
		if err := r.writePlaylist(p, outputPath); err != nil {
			return err
		}
		r.recordRun(path, outputPath, p.Len())
		return nil
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// tuiCommand returns the top-level TUI command for interactive shuffling.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Aliases:   []string{"interactive"},
		Usage:     "Interactively shuffle a playlist before writing it",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file to write to (defaults to overwriting FILE)",
			},
		},
		Action: r.TUI,
	}
}
