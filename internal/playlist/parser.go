package playlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/purarue/m3u-shuf/internal/shared"
)

// Parse reads an extended-m3u playlist from r.
//
// The first line must start with [HeaderMarker] or Parse fails with
// [shared.ErrMissingHeader] (an empty input fails the same way). After the
// header, lines are scanned in order with a single piece of state, the
// pending #EXTINF directive:
//
//   - blank or whitespace-only lines are skipped entirely; they neither clear
//     the pending directive nor break its attachment to the next path line
//   - a line starting with [ExtinfMarker] replaces the pending directive
//   - any other line becomes a [Track], consuming the pending directive
//
// A trailing directive with no path line after it is dropped. Line
// terminators, including the "\r" of Windows line endings, never appear in
// track fields. A read failure from the underlying source aborts with
// [shared.ErrUnreadableLine]; no partial playlist is returned.
func Parse(r io.Reader) (*Playlist, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrUnreadableLine, err)
		}
		return nil, fmt.Errorf("%w: empty input", shared.ErrMissingHeader)
	}
	if !strings.HasPrefix(scanner.Text(), HeaderMarker) {
		return nil, shared.ErrMissingHeader
	}

	tracks := []Track{}
	extinf := ""
	for scanner.Scan() {
		ln := scanner.Text()
		switch {
		case strings.TrimSpace(ln) == "":
			// transparent: blank lines don't clear a pending directive
		case strings.HasPrefix(ln, ExtinfMarker):
			extinf = ln
		default:
			tracks = append(tracks, Track{Extinf: extinf, Path: ln})
			extinf = ""
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnreadableLine, err)
	}

	return &Playlist{Tracks: tracks}, nil
}

// ParseString parses a playlist held in memory.
func ParseString(s string) (*Playlist, error) {
	return Parse(strings.NewReader(s))
}
