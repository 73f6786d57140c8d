package library

import "strings"

// ViewKind names a filter over the library.
type ViewKind int

const (
	ViewAllMusic ViewKind = iota
	ViewRecentlyAdded
	ViewFavorites
	ViewRecentlyPlayed
	ViewPlaylist
)

// View selects a named filter, with Playlist set when Kind is ViewPlaylist.
type View struct {
	Kind     ViewKind
	Playlist string
}

// Title returns the display name of the view.
func (v View) Title() string {
	switch v.Kind {
	case ViewAllMusic:
		return "All Music"
	case ViewRecentlyAdded:
		return "Recently Added"
	case ViewFavorites:
		return "Favorites"
	case ViewRecentlyPlayed:
		return "Recently Played"
	case ViewPlaylist:
		return v.Playlist
	default:
		return ""
	}
}

// Select returns the songs the view displays. It is a pure filter over the
// library and its derived sets; nothing is mutated.
func (l *Library) Select(v View) []Song {
	switch v.Kind {
	case ViewAllMusic:
		return l.songs
	case ViewRecentlyAdded:
		return l.recentlyAdded
	case ViewFavorites:
		out := make([]Song, 0)
		for i := range l.songs {
			if l.favorites[l.songs[i].Path] {
				out = append(out, l.songs[i])
			}
		}
		return out
	case ViewRecentlyPlayed:
		// Most recent first, skipping paths absent from the current load.
		out := make([]Song, 0, len(l.recent))
		for _, path := range l.recent {
			if i := l.IndexOf(path); i >= 0 {
				out = append(out, l.songs[i])
			}
		}
		return out
	case ViewPlaylist:
		return l.playlistSongs(v.Playlist)
	default:
		return nil
	}
}

// Filter narrows a song list to entries whose title, artist or album
// contains the query, case-insensitively. An empty query returns the
// input unchanged.
func Filter(songs []Song, query string) []Song {
	if query == "" {
		return songs
	}
	q := strings.ToLower(query)
	out := make([]Song, 0, len(songs))
	for i := range songs {
		s := &songs[i]
		if strings.Contains(strings.ToLower(s.Title), q) ||
			strings.Contains(strings.ToLower(s.Artist), q) ||
			strings.Contains(strings.ToLower(s.Album), q) {
			out = append(out, songs[i])
		}
	}
	return out
}
