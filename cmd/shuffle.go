package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/purarue/m3u-shuf/internal/playlist"
	"github.com/purarue/m3u-shuf/internal/repositories"
	"github.com/purarue/m3u-shuf/internal/shared"
	"github.com/urfave/cli/v3"
)

// Shuffle is the root action: parse the playlist, shuffle it, write it out.
//
// The input is fully read and closed before the output is created, so a
// parse failure never truncates an existing output file. Any failure aborts
// the whole run; there is no partial output.
func (r *Runner) Shuffle(ctx context.Context, cmd *cli.Command) error {
	inputPath := cmd.Args().First()
	outputPath := cmd.String("output")

	pl, err := r.readPlaylist(inputPath)
	if err != nil {
		return err
	}

	r.logger.Debug("parsed playlist", "source", streamName(inputPath, "stdin"), "tracks", pl.Len())

	pl.Shuffle()

	if err := r.writePlaylist(pl, outputPath); err != nil {
		return err
	}

	r.recordRun(inputPath, outputPath, pl.Len())
	return nil
}

// readPlaylist parses the named file, or the runner's input stream when path
// is empty. The file is closed before readPlaylist returns.
func (r *Runner) readPlaylist(path string) (*playlist.Playlist, error) {
	in := r.input
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", shared.ErrOpenInput, path, err)
		}
		defer f.Close()
		in = f
	}

	pl, err := playlist.Parse(in)
	if err != nil {
		return nil, fmt.Errorf("failed to parse m3u from %s: %w", streamName(path, "stdin"), err)
	}
	return pl, nil
}

// writePlaylist serializes pl to the named file (created or truncated), or to
// the runner's output stream when path is empty. Output is flushed before
// returning. When configured, an existing file is renamed to <path>.bak
// before it is replaced.
func (r *Runner) writePlaylist(pl *playlist.Playlist, path string) error {
	if path == "" {
		return flushTo(r.output, pl, "stdout")
	}

	if r.config.Output.Backup {
		if _, err := os.Stat(path); err == nil {
			if err := os.Rename(path, path+".bak"); err != nil {
				return fmt.Errorf("%w %q: failed to back up existing file: %v", shared.ErrCreateOutput, path, err)
			}
			r.logger.Debug("backed up existing output", "path", path+".bak")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %q: %v", shared.ErrCreateOutput, path, err)
	}

	if err := flushTo(f, pl, path); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w %q: %v", shared.ErrWriteOutput, path, err)
	}
	return nil
}

func flushTo(w io.Writer, pl *playlist.Playlist, name string) error {
	bw := bufio.NewWriter(w)
	if _, err := pl.WriteTo(bw); err != nil {
		return fmt.Errorf("%w %q: %v", shared.ErrWriteOutput, name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w %q: %v", shared.ErrWriteOutput, name, err)
	}
	return nil
}

// recordRun appends the shuffle to the history database when enabled.
// History is an observer: failures are logged, never returned.
func (r *Runner) recordRun(inputPath, outputPath string, trackCount int) {
	if !r.config.History.Enabled {
		return
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		r.logger.Warn("skipping history record", "error", err)
		return
	}
	defer db.Close()

	repo := repositories.NewHistoryRepository(db)
	run := &repositories.ShuffleRun{
		Source:      streamName(inputPath, "stdin"),
		Destination: streamName(outputPath, "stdout"),
		TrackCount:  trackCount,
	}
	if err := repo.Create(run); err != nil {
		r.logger.Warn("failed to record shuffle run, is the database initialized? (m3u-shuf setup)", "error", err)
		return
	}

	r.logger.Debug("recorded shuffle run", "id", run.ID)
}

// streamName names a resource for diagnostics and history rows.
func streamName(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
