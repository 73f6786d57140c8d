package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/aria/internal/playback"
	"github.com/llehouerou/aria/internal/ui/playerbar"
	"github.com/llehouerou/aria/internal/ui/render"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSongList())
	b.WriteString("\n")
	if bar := m.renderPlayerBar(); bar != "" {
		b.WriteString(bar)
		b.WriteString("\n")
	}
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader shows the sidebar views as tabs with the active one
// highlighted, playlists included.
func (m Model) renderHeader() string {
	var tabs []string
	for _, v := range m.sidebarViews() {
		title := v.Title()
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, tabStyle.Render(title))
		}
	}
	line := strings.Join(tabs, "  ")

	var right string
	if m.loading {
		right = statusStyle.Render("Loading…")
	} else if m.searchText != "" {
		right = statusStyle.Render(fmt.Sprintf("filter: %s", m.searchText))
	}
	return render.Row(line, right, m.width) + "\n" + render.Separator(m.width)
}

// renderSongList renders the visible rows of the active view, scrolled so
// the cursor stays on screen.
func (m Model) renderSongList() string {
	visible := m.listHeight()
	if visible < 1 {
		visible = 1
	}

	if len(m.rows) == 0 {
		return emptyStyle.Render(m.emptyMessage())
	}

	offset := 0
	if m.cursor >= visible {
		offset = m.cursor - visible + 1
	}
	end := min(offset+visible, len(m.rows))

	durWidth := 6
	colWidth := max((m.width-durWidth-6)/3, 8)

	var b strings.Builder
	for i := offset; i < end; i++ {
		song := &m.rows[i]

		marker := "  "
		if current := m.Session.CurrentSong(); current != nil && current.Path == song.Path {
			marker = playingMarker
		}
		fav := " "
		if m.Lib.IsFavorite(song.Path) {
			fav = favoriteMarker
		}

		line := fmt.Sprintf("%s%s %s %s %s %s",
			marker,
			fav,
			render.TruncateAndPadEllipsis(song.Title, colWidth),
			render.TruncateAndPadEllipsis(song.Artist, colWidth),
			render.TruncateAndPadEllipsis(song.Album, colWidth),
			playerbar.FormatDuration(song.Duration),
		)
		if i == m.cursor {
			line = cursorStyle.Render(render.Pad(line, m.width))
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	// Pad the remaining rows so the bar stays anchored at the bottom.
	for i := end - offset; i < visible; i++ {
		b.WriteString("\n")
	}
	return b.String()
}

// emptyMessage explains why the list is empty.
func (m Model) emptyMessage() string {
	if m.Lib.Len() == 0 {
		return "No music loaded. Press 'o' to open a folder."
	}
	if m.searchText != "" {
		return fmt.Sprintf("No songs match '%s'.", m.searchText)
	}
	return "Nothing here yet."
}

// renderPlayerBar maps the session onto the player bar state.
func (m Model) renderPlayerBar() string {
	if m.Session.State() == playback.Empty {
		return ""
	}
	song := m.Session.CurrentSong()
	if song == nil {
		return ""
	}
	return playerbar.Render(playerbar.State{
		Playing:  m.Session.IsPlaying(),
		Paused:   !m.Session.IsPlaying(),
		Title:    song.Title,
		Artist:   song.Artist,
		Album:    song.Album,
		Position: m.Session.Position(),
		Duration: m.Session.Duration(),
		Volume:   m.Session.Volume(),
		Muted:    m.Session.Muted(),
		Shuffle:  m.Session.Shuffle(),
		Repeat:   m.Session.Repeat().String(),
	}, m.width)
}

// renderFooter shows the focused text input, or the status and help lines.
func (m Model) renderFooter() string {
	if m.inputMode != inputNone {
		return m.input.View()
	}
	var b strings.Builder
	if m.statusMsg != "" {
		b.WriteString(statusStyle.Render(render.TruncateEllipsis(m.statusMsg, m.width)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(render.TruncateEllipsis(helpLine, m.width)))
	return b.String()
}

// listHeight is the number of song rows that fit between the header and
// the footer.
func (m Model) listHeight() int {
	h := m.height - 2 - 2 // header + footer
	if m.Session.State() != playback.Empty && m.Session.CurrentSong() != nil {
		h -= playerbar.Height
	}
	if m.statusMsg != "" {
		h--
	}
	return h
}
