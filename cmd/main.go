package main

import (
	"context"
	"os"

	"github.com/purarue/m3u-shuf/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{Config: config, Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// newApp wires the CLI surface: the root action shuffles a playlist, and
// subcommands handle setup, history and the interactive preview.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "m3u-shuf",
		Usage:     "Shuffle an m3u playlist. If no file given, reads from STDIN",
		Version:   "1.0.0",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file to write to (defaults to STDOUT)",
			},
		},
		Action:   r.Shuffle,
		Commands: r.register(),
	}
}
