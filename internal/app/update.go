package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/aria/internal/errmsg"
	"github.com/llehouerou/aria/internal/library"
)

// Update is the single event dispatcher: every key press, tick and
// settled load flows through here, so model mutations never race.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m, TickCmd()

	case TrackFinishedMsg:
		if err := m.Session.HandleTrackFinished(); err != nil {
			m.statusMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
		return m, m.watchTrackFinished()

	case LibraryLoadedMsg:
		return m.handleLibraryLoaded(msg)

	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleLibraryLoaded installs a settled ingestion batch, unless a newer
// load has superseded it. A superseded batch must not touch the loading
// indicator: the newer load is still running.
func (m Model) handleLibraryLoaded(msg LibraryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if !m.Lib.IsCurrentLoad(msg.Generation) {
			return m, nil
		}
		m.loading = false
		m.statusMsg = errmsg.Format(errmsg.OpLibraryLoad, msg.Err)
		return m, nil
	}
	if !m.Lib.Install(msg.Generation, msg.Songs) {
		return m, nil
	}
	m.loading = false
	if err := m.Session.LibraryReplaced(); err != nil {
		m.statusMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
	} else {
		m.statusMsg = fmt.Sprintf("Loaded %s songs", humanize.Comma(int64(len(msg.Songs))))
	}
	m.selectView(library.View{Kind: library.ViewAllMusic})
	return m, nil
}

// handleInputKey routes key presses while the text input is focused.
// Playback shortcuts are suspended so typing never triggers them.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.inputMode == inputSearch {
			m.searchText = ""
			m.refreshRows()
		}
		m.closeInput()
		return m, nil
	case "enter":
		return m.submitInput()
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.inputMode == inputSearch {
		m.searchText = m.input.Value()
		m.refreshRows()
	}
	return m, cmd
}

// submitInput commits the prompted value for the active input mode.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	value := m.input.Value()
	mode := m.inputMode
	m.closeInput()

	switch mode {
	case inputSearch:
		m.searchText = value
		m.refreshRows()

	case inputNewPlaylist:
		if value == "" {
			return m, nil
		}
		if !m.Lib.CreatePlaylist(value) {
			m.statusMsg = fmt.Sprintf("Playlist '%s' already exists", value)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Created playlist '%s'", value)

	case inputAddToPlaylist:
		song := m.pendingSong
		m.pendingSong = nil
		if value == "" || song == nil {
			return m, nil
		}
		if !m.Lib.AddToPlaylist(value, song) {
			m.statusMsg = fmt.Sprintf("Could not add to '%s'", value)
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Added '%s' to '%s'", song.Title, value)

	case inputOpenFolder:
		if value == "" {
			return m, nil
		}
		log.Info("loading music folder", "dir", value)
		return m, m.startLoad(value)
	}
	return m, nil
}

// handleKey routes key presses while no text input is focused.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Transport.
	case " ":
		if err := m.Session.TogglePlayPause(); err != nil {
			m.statusMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	case "left":
		m.Session.SeekBy(-seekStep)
	case "right":
		m.Session.SeekBy(seekStep)
	case "shift+left", "ctrl+left":
		if err := m.Session.PlayPrevious(); err != nil {
			m.statusMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	case "shift+right", "ctrl+right":
		if err := m.Session.PlayNext(); err != nil {
			m.statusMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	case "up":
		m.Session.AdjustVolume(volumeStep)
	case "down":
		m.Session.AdjustVolume(-volumeStep)
	case "m":
		m.Session.ToggleMute()
	case "s":
		m.Session.ToggleShuffle()
	case "r":
		m.Session.CycleRepeatMode()

	// List navigation.
	case "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.rows) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "enter":
		if song := m.selectedSong(); song != nil {
			if err := m.Session.PlayIndex(m.Lib.IndexOf(song.Path)); err != nil {
				m.statusMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, song.Title, err)
			}
		}

	// Library actions.
	case "f":
		if song := m.selectedSong(); song != nil {
			if m.Lib.ToggleFavorite(song) {
				m.statusMsg = fmt.Sprintf("Added '%s' to favorites", song.Title)
			} else {
				m.statusMsg = fmt.Sprintf("Removed '%s' from favorites", song.Title)
			}
			m.refreshRows()
		}
	case "n":
		m.openInput(inputNewPlaylist, "New playlist name")
	case "a":
		if song := m.selectedSong(); song != nil {
			m.pendingSong = song
			m.openInput(inputAddToPlaylist, "Add to playlist")
		}
	case "o":
		m.openInput(inputOpenFolder, "Music folder path")
	case "/":
		m.openInput(inputSearch, "Search")
		m.input.SetValue(m.searchText)

	// View navigation.
	case "tab":
		m.cycleView(1)
	case "shift+tab":
		m.cycleView(-1)
	}

	return m, nil
}

// openInput focuses the text input in the given mode.
func (m *Model) openInput(mode inputMode, placeholder string) {
	m.inputMode = mode
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
}

// closeInput blurs and clears the text input.
func (m *Model) closeInput() {
	m.inputMode = inputNone
	m.input.Blur()
	m.input.SetValue("")
}
