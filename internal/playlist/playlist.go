package playlist

import (
	"fmt"
	"io"
	"strings"
)

const (
	// HeaderMarker begins every valid playlist. Matched by prefix.
	HeaderMarker = "#EXTM3U"
	// ExtinfMarker begins a metadata directive line. Matched by prefix.
	ExtinfMarker = "#EXTINF"
)

// Track is one playlist entry: a mandatory path (or URL) and the raw text of
// the #EXTINF directive that preceded it, if any. Extinf is stored verbatim,
// marker included, with no line terminators; the empty string means the track
// had no directive.
type Track struct {
	Extinf string
	Path   string
}

// HasExtinf reports whether the track carries a metadata directive.
func (t Track) HasExtinf() bool { return t.Extinf != "" }

// String renders the track as it appears in a playlist file, without a
// trailing terminator on the path line.
func (t Track) String() string {
	if t.HasExtinf() {
		return t.Extinf + "\n" + t.Path
	}
	return t.Path
}

// Playlist is an ordered sequence of tracks. Order is the playback order;
// it is exactly what [Playlist.Shuffle] randomizes.
type Playlist struct {
	Tracks []Track
}

// Len returns the number of tracks.
func (p *Playlist) Len() int { return len(p.Tracks) }

// WriteTo serializes the playlist: the header line, then for each track the
// optional directive line followed by the path line, every line terminated
// with "\n". No blank lines are emitted. Implements [io.WriterTo].
func (p *Playlist) WriteTo(w io.Writer) (int64, error) {
	var written int64

	n, err := fmt.Fprintln(w, HeaderMarker)
	written += int64(n)
	if err != nil {
		return written, err
	}

	for _, track := range p.Tracks {
		n, err := fmt.Fprintln(w, track.String())
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// String returns the full serialized playlist text.
func (p *Playlist) String() string {
	var sb strings.Builder
	p.WriteTo(&sb) // strings.Builder never errors
	return sb.String()
}
