// Package app is the Bubble Tea view controller: it maps the selected
// sidebar view to a filtered song list and wires the controls to the
// library and the playback session.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/aria/internal/config"
	"github.com/llehouerou/aria/internal/library"
	"github.com/llehouerou/aria/internal/playback"
)

// inputMode tracks what the text input at the bottom is prompting for.
type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputNewPlaylist
	inputAddToPlaylist
	inputOpenFolder
)

type Model struct {
	Lib     *library.Library
	Session *playback.Session
	Cfg     *config.Config

	width  int
	height int

	view       library.View
	rows       []library.Song // songs currently displayed
	cursor     int
	searchText string

	input       textinput.Model
	inputMode   inputMode
	pendingSong *library.Song // selection captured for the add-to-playlist prompt

	statusMsg string
	loading   bool
}

// New creates the application model.
func New(lib *library.Library, session *playback.Session, cfg *config.Config) Model {
	input := textinput.New()
	input.CharLimit = 128

	m := Model{
		Lib:     lib,
		Session: session,
		Cfg:     cfg,
		view:    library.View{Kind: library.ViewAllMusic},
		input:   input,
		loading: cfg.MusicFolder != "",
	}
	m.refreshRows()
	return m
}

// Init starts the event loop: the periodic tick, the track-finished
// watcher, and the initial folder load when one is configured.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(), m.watchTrackFinished()}
	if m.Cfg.MusicFolder != "" {
		cmds = append(cmds, loadFolderCmd(m.Lib.BeginLoad(), m.Cfg.MusicFolder))
	}
	return tea.Batch(cmds...)
}

// refreshRows recomputes the displayed song list from the active view and
// search query, keeping the cursor in range.
func (m *Model) refreshRows() {
	m.rows = library.Filter(m.Lib.Select(m.view), m.searchText)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// sidebarViews returns the navigable views: the four built-ins followed by
// the playlists in creation order.
func (m *Model) sidebarViews() []library.View {
	views := []library.View{
		{Kind: library.ViewAllMusic},
		{Kind: library.ViewRecentlyAdded},
		{Kind: library.ViewFavorites},
		{Kind: library.ViewRecentlyPlayed},
	}
	for _, name := range m.Lib.PlaylistNames() {
		views = append(views, library.View{Kind: library.ViewPlaylist, Playlist: name})
	}
	return views
}

// selectView activates a sidebar view and resets the cursor.
func (m *Model) selectView(v library.View) {
	m.view = v
	m.cursor = 0
	m.refreshRows()
}

// cycleView moves the active view forward or backward through the sidebar.
func (m *Model) cycleView(delta int) {
	views := m.sidebarViews()
	current := 0
	for i, v := range views {
		if v == m.view {
			current = i
			break
		}
	}
	next := (current + delta + len(views)) % len(views)
	m.selectView(views[next])
}

// selectedSong returns the song under the cursor, or nil.
func (m *Model) selectedSong() *library.Song {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}
