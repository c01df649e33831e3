package playlist

import (
	"bytes"
	"testing"

	tu "github.com/purarue/m3u-shuf/internal/testing"
)

func TestSerialize(t *testing.T) {
	t.Run("WriteTo", func(t *testing.T) {
		pl := &Playlist{Tracks: []Track{
			{Extinf: "#EXTINF:123,Some Artist - Some Title", Path: "music/some.mp3"},
			{Path: "https://example.com/stream"},
		}}

		var buf bytes.Buffer
		n, err := pl.WriteTo(&buf)
		if err != nil {
			t.Fatalf("failed to write: %v", err)
		}

		want := "#EXTM3U\n#EXTINF:123,Some Artist - Some Title\nmusic/some.mp3\nhttps://example.com/stream\n"
		if buf.String() != want {
			t.Errorf("serialized = %q, want %q", buf.String(), want)
		}
		if n != int64(buf.Len()) {
			t.Errorf("reported %d bytes written, buffer has %d", n, buf.Len())
		}
	})

	t.Run("empty playlist is header only", func(t *testing.T) {
		pl := &Playlist{}
		if got := pl.String(); got != "#EXTM3U\n" {
			t.Errorf("serialized = %q, want %q", got, "#EXTM3U\n")
		}
	})

	t.Run("failing writer", func(t *testing.T) {
		pl := &Playlist{Tracks: []Track{{Path: "a.mp3"}}}
		if _, err := pl.WriteTo(&tu.FWriter{}); err == nil {
			t.Error("expected write error")
		}
	})

	t.Run("writer that fails mid-playlist", func(t *testing.T) {
		pl := &Playlist{Tracks: []Track{{Path: "a.mp3"}, {Path: "b.mp3"}}}
		var buf bytes.Buffer
		lw := tu.NewLimitedWriter(1, 0, &buf)
		if _, err := pl.WriteTo(&lw); err == nil {
			t.Error("expected write error after limit")
		}
	})
}

func TestTrackString(t *testing.T) {
	tc := []struct {
		name  string
		track Track
		want  string
	}{
		{
			name:  "with extinf",
			track: Track{Extinf: "#EXTINF:0,A", Path: "a.mp3"},
			want:  "#EXTINF:0,A\na.mp3",
		},
		{
			name:  "without extinf",
			track: Track{Path: "a.mp3"},
			want:  "a.mp3",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
