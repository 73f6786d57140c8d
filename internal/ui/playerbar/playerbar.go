// Package playerbar renders the transport bar at the bottom of the UI.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/aria/internal/ui/render"
)

// State holds everything needed to render the player bar.
type State struct {
	Playing  bool
	Paused   bool
	Title    string
	Artist   string
	Album    string
	Position time.Duration
	Duration time.Duration
	Volume   float64 // remembered level in [0, 1]
	Muted    bool
	Shuffle  bool
	Repeat   string // "none", "one" or "all"
}

// Height is the rendered height of the bar including its border.
const Height = 3

// Render returns the player bar for the given width.
// Returns an empty string when nothing is loaded.
func Render(s State, width int) string {
	if !s.Playing && !s.Paused {
		return ""
	}

	innerWidth := max(width-6, 0)

	status := playSymbol
	if s.Paused {
		status = pauseSymbol
	}

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	info := strings.Join(infoParts, " · ")

	timeStr := fmt.Sprintf("%s / %s", FormatDuration(s.Position), FormatDuration(s.Duration))
	modes := modeIndicators(s)

	separator := "   "
	sepWidth := lipgloss.Width(separator)
	fixedWidth := lipgloss.Width(status+"  ") + lipgloss.Width(timeStr) + lipgloss.Width(modes) + sepWidth*3

	minBarWidth := 10
	availableForContent := innerWidth - fixedWidth - minBarWidth

	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	var styledTitle, styledInfo string
	var usedContentWidth int
	switch {
	case titleWidth+sepWidth+infoWidth <= availableForContent:
		styledTitle = titleStyle.Render(title)
		styledInfo = infoStyle.Render(info)
		usedContentWidth = titleWidth + sepWidth + infoWidth
	case titleWidth+sepWidth <= availableForContent && info != "":
		maxInfo := availableForContent - titleWidth - sepWidth
		styledTitle = titleStyle.Render(title)
		styledInfo = infoStyle.Render(render.TruncateEllipsis(info, maxInfo))
		usedContentWidth = titleWidth + sepWidth + maxInfo
	default:
		maxTitle := max(availableForContent, 10)
		styledTitle = titleStyle.Render(render.TruncateEllipsis(title, maxTitle))
		usedContentWidth = min(titleWidth, maxTitle)
	}

	barWidth := max(innerWidth-usedContentWidth-fixedWidth, 5)

	var ratio float64
	if s.Duration > 0 {
		ratio = float64(s.Position) / float64(s.Duration)
	}
	filled := min(int(float64(barWidth)*ratio), barWidth)
	progressBar := filledStyle.Render(strings.Repeat("━", filled)) +
		emptyStyle.Render(strings.Repeat("─", barWidth-filled))

	var content strings.Builder
	content.WriteString(styledTitle)
	if styledInfo != "" {
		content.WriteString(separator)
		content.WriteString(styledInfo)
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(progressBar)
	content.WriteString(separator)
	content.WriteString(timeStyle.Render(timeStr))
	content.WriteString(separator)
	content.WriteString(modeStyle.Render(modes))

	return barStyle.Padding(0, 2).Width(width - 2).Render(content.String())
}

// modeIndicators builds the volume/shuffle/repeat suffix, e.g. "80% ⇄ ↻1".
func modeIndicators(s State) string {
	var parts []string
	if s.Muted {
		parts = append(parts, mutedSymbol)
	} else {
		parts = append(parts, fmt.Sprintf("%d%%", int(s.Volume*100+0.5)))
	}
	if s.Shuffle {
		parts = append(parts, shuffleSymbol)
	}
	switch s.Repeat {
	case "one":
		parts = append(parts, repeatSymbol+"1")
	case "all":
		parts = append(parts, repeatSymbol)
	}
	return strings.Join(parts, " ")
}

// FormatDuration renders a duration as m:ss.
func FormatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
