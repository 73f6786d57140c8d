package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/aria/internal/library"
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchTrackFinished returns a command that waits for the player to finish
// a track naturally and reports it as TrackFinishedMsg. The command is
// re-armed after each message.
func (m Model) watchTrackFinished() tea.Cmd {
	ch := m.Session.FinishedChan()
	return func() tea.Msg {
		<-ch
		return TrackFinishedMsg{}
	}
}

// startLoad begins a folder load and returns the command that runs the
// ingestion off the update loop. The generation is captured before the
// command starts so a newer load supersedes this one.
func (m *Model) startLoad(dir string) tea.Cmd {
	m.loading = true
	return loadFolderCmd(m.Lib.BeginLoad(), dir)
}

func loadFolderCmd(gen int, dir string) tea.Cmd {
	return func() tea.Msg {
		songs, err := library.LoadFolder(dir)
		return LibraryLoadedMsg{Generation: gen, Songs: songs, Err: err}
	}
}
