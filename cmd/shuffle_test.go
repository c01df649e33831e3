package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/purarue/m3u-shuf/internal/playlist"
	"github.com/purarue/m3u-shuf/internal/repositories"
	"github.com/purarue/m3u-shuf/internal/shared"
	tu "github.com/purarue/m3u-shuf/internal/testing"
)

const sampleM3U = "#EXTM3U\n" +
	"#EXTINF:0,Artist1 - Title1\npath/to/file1.mp3\n" +
	"#EXTINF:0,Artist2 - Title2\npath/to/file2.mp3\n" +
	"#EXTINF:0,Artist3 - Title3\npath/to/file3.mp3\n"

func newTestRunner(t *testing.T, input string) (*Runner, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Logger: shared.NewLogger(io.Discard),
		Input:  strings.NewReader(input),
		Output: out,
	})
	return runner, out
}

// sameTracks checks the multiset of tracks matches the sample playlist.
func sameTracks(t *testing.T, text string) {
	t.Helper()

	pl, err := playlist.ParseString(text)
	if err != nil {
		t.Fatalf("output is not a valid playlist: %v", err)
	}
	want, _ := playlist.ParseString(sampleM3U)

	if pl.Len() != want.Len() {
		t.Fatalf("expected %d tracks, got %d", want.Len(), pl.Len())
	}
	counts := make(map[playlist.Track]int)
	for _, tr := range want.Tracks {
		counts[tr]++
	}
	for _, tr := range pl.Tracks {
		counts[tr]--
	}
	for tr, c := range counts {
		if c != 0 {
			t.Errorf("track %q duplicated or dropped (delta %d)", tr.Path, c)
		}
	}
}

func TestShuffleCommand(t *testing.T) {
	t.Run("stdin to stdout", func(t *testing.T) {
		runner, out := newTestRunner(t, sampleM3U)

		if err := newApp(runner).Run(context.Background(), []string{"m3u-shuf"}); err != nil {
			t.Fatalf("shuffle failed: %v", err)
		}

		if !strings.HasPrefix(out.String(), "#EXTM3U\n") {
			t.Errorf("output missing header: %q", out.String())
		}
		sameTracks(t, out.String())
	})

	t.Run("file to file", func(t *testing.T) {
		tmpDir := t.TempDir()
		inPath := filepath.Join(tmpDir, "in.m3u")
		outPath := filepath.Join(tmpDir, "out.m3u")
		tu.MustWriteFile(t, inPath, sampleM3U)

		runner, _ := newTestRunner(t, "")
		if err := newApp(runner).Run(context.Background(), []string{"m3u-shuf", "--output", outPath, inPath}); err != nil {
			t.Fatalf("shuffle failed: %v", err)
		}

		tu.AssertFileExists(t, outPath)
		sameTracks(t, tu.MustReadFile(t, outPath))
	})

	t.Run("missing header aborts before output is created", func(t *testing.T) {
		tmpDir := t.TempDir()
		inPath := filepath.Join(tmpDir, "in.m3u")
		outPath := filepath.Join(tmpDir, "out.m3u")
		tu.MustWriteFile(t, inPath, "path/to/file.mp3\n")

		runner, _ := newTestRunner(t, "")
		err := newApp(runner).Run(context.Background(), []string{"m3u-shuf", "--output", outPath, inPath})
		if !errors.Is(err, shared.ErrMissingHeader) {
			t.Errorf("expected ErrMissingHeader, got %v", err)
		}

		tu.AssertNoFile(t, outPath)
	})

	t.Run("unopenable input", func(t *testing.T) {
		runner, _ := newTestRunner(t, "")
		err := newApp(runner).Run(context.Background(), []string{"m3u-shuf", filepath.Join(t.TempDir(), "nope.m3u")})
		if !errors.Is(err, shared.ErrOpenInput) {
			t.Errorf("expected ErrOpenInput, got %v", err)
		}
	})

	t.Run("unwritable output sink", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{
			Config: shared.DefaultConfig(),
			Logger: shared.NewLogger(io.Discard),
			Input:  strings.NewReader(sampleM3U),
			Output: &tu.FWriter{},
		})

		err := newApp(runner).Run(context.Background(), []string{"m3u-shuf"})
		if !errors.Is(err, shared.ErrWriteOutput) {
			t.Errorf("expected ErrWriteOutput, got %v", err)
		}
	})

	t.Run("backup renames existing output", func(t *testing.T) {
		tmpDir := t.TempDir()
		inPath := filepath.Join(tmpDir, "in.m3u")
		outPath := filepath.Join(tmpDir, "out.m3u")
		tu.MustWriteFile(t, inPath, sampleM3U)
		tu.MustWriteFile(t, outPath, "#EXTM3U\nold.mp3\n")

		runner, _ := newTestRunner(t, "")
		runner.config.Output.Backup = true

		if err := newApp(runner).Run(context.Background(), []string{"m3u-shuf", "--output", outPath, inPath}); err != nil {
			t.Fatalf("shuffle failed: %v", err)
		}

		if got := tu.MustReadFile(t, outPath+".bak"); got != "#EXTM3U\nold.mp3\n" {
			t.Errorf("backup content = %q", got)
		}
		sameTracks(t, tu.MustReadFile(t, outPath))
	})

	t.Run("records history when enabled", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "history.db")

		db, err := shared.NewDatabase(dbPath)
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		if err := shared.RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		db.Close()

		runner, _ := newTestRunner(t, sampleM3U)
		runner.config.History.Enabled = true
		runner.config.Database.Path = dbPath

		if err := newApp(runner).Run(context.Background(), []string{"m3u-shuf"}); err != nil {
			t.Fatalf("shuffle failed: %v", err)
		}

		db, err = shared.NewDatabase(dbPath)
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer db.Close()

		runs, err := repositories.NewHistoryRepository(db).List(0)
		if err != nil {
			t.Fatalf("failed to list history: %v", err)
		}
		if len(runs) != 1 {
			t.Fatalf("expected 1 recorded run, got %d", len(runs))
		}
		if runs[0].Source != "stdin" || runs[0].Destination != "stdout" {
			t.Errorf("unexpected run endpoints: %s → %s", runs[0].Source, runs[0].Destination)
		}
		if runs[0].TrackCount != 3 {
			t.Errorf("expected 3 tracks recorded, got %d", runs[0].TrackCount)
		}
	})

	t.Run("history failure does not fail the shuffle", func(t *testing.T) {
		runner, out := newTestRunner(t, sampleM3U)
		runner.config.History.Enabled = true
		runner.config.Database.Path = filepath.Join(t.TempDir(), "uninitialized.db")

		if err := newApp(runner).Run(context.Background(), []string{"m3u-shuf"}); err != nil {
			t.Fatalf("shuffle should succeed despite history failure: %v", err)
		}
		sameTracks(t, out.String())
	})
}
