package ui

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/purarue/m3u-shuf/internal/playlist"
)

var _ list.Item = trackItem{}

// trackItem wraps [playlist.Track] to implement [list.Item].
type trackItem struct {
	track playlist.Track
}

func (i trackItem) FilterValue() string { return i.track.Path }
func (i trackItem) Title() string       { return filepath.Base(i.track.Path) }
func (i trackItem) Description() string {
	if i.track.HasExtinf() {
		return i.track.Extinf
	}
	return i.track.Path
}

// trackItems converts the playlist's current order into list items.
func trackItems(pl *playlist.Playlist) []list.Item {
	items := make([]list.Item, pl.Len())
	for i, track := range pl.Tracks {
		items[i] = trackItem{track: track}
	}
	return items
}
