package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/purarue/m3u-shuf/internal/playlist"
)

// SaveFunc persists the playlist in its current order.
type SaveFunc func(*playlist.Playlist) error

// Model represents the TUI application state: the playlist being previewed,
// where a write would go, and the track list widget.
type Model struct {
	pl        *playlist.Playlist
	dest      string
	save      SaveFunc
	trackList list.Model
	width     int
	height    int
	shuffles  int
	saved     bool
	err       error
	help      help.Model
	keys      keyMap
}

// NewModel creates a TUI model previewing pl. The playlist arrives already
// shuffled once; dest names the file a write goes to.
func NewModel(pl *playlist.Playlist, dest string, save SaveFunc) *Model {
	trackList := list.New(trackItems(pl), list.NewDefaultDelegate(), 0, 0)
	trackList.Title = fmt.Sprintf("%d tracks → %s", pl.Len(), dest)
	trackList.SetShowHelp(false)

	return &Model{
		pl:        pl,
		dest:      dest,
		save:      save,
		trackList: trackList,
		shuffles:  1,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trackList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.shuffle):
			m.pl.Shuffle()
			m.shuffles++
			m.saved = false
			m.trackList.SetItems(trackItems(m.pl))
			return m, nil

		case key.Matches(msg, m.keys.write):
			if err := m.save(m.pl); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.saved = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

// View renders the track list with a status line and help.
func (m *Model) View() string {
	status := fmt.Sprintf("shuffle #%d", m.shuffles)
	switch {
	case m.err != nil:
		status = styles.err.Render(fmt.Sprintf("write failed: %v", m.err))
	case m.saved:
		status = styles.ok.Render(fmt.Sprintf("written to %s", m.dest))
	default:
		status = styles.warn.Render(status + " (unsaved)")
	}

	return fmt.Sprintf("%s\n%s\n%s",
		m.trackList.View(),
		status,
		styles.help.Render(m.help.View(m.keys)),
	)
}

// Saved reports whether the current order has been written to the destination.
func (m *Model) Saved() bool { return m.saved }
