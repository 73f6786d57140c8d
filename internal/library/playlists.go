package library

import (
	"github.com/charmbracelet/log"

	"github.com/llehouerou/aria/internal/settings"
)

// Playlists returns the playlists in creation order.
func (l *Library) Playlists() []settings.Playlist {
	return l.playlists
}

// PlaylistNames returns the playlist names in creation order.
func (l *Library) PlaylistNames() []string {
	names := make([]string, len(l.playlists))
	for i, p := range l.playlists {
		names[i] = p.Name
	}
	return names
}

// CreatePlaylist adds an empty playlist and persists the mapping.
// Empty and duplicate names are rejected silently (returns false).
func (l *Library) CreatePlaylist(name string) bool {
	if name == "" {
		return false
	}
	for _, p := range l.playlists {
		if p.Name == name {
			return false
		}
	}
	l.playlists = append(l.playlists, settings.Playlist{Name: name})
	l.savePlaylists()
	return true
}

// AddToPlaylist appends the song to the named playlist and persists.
// Returns false when the playlist does not exist or already has the song.
func (l *Library) AddToPlaylist(name string, song *Song) bool {
	if song == nil {
		return false
	}
	for i := range l.playlists {
		if l.playlists[i].Name != name {
			continue
		}
		for _, path := range l.playlists[i].Paths {
			if path == song.Path {
				return false
			}
		}
		l.playlists[i].Paths = append(l.playlists[i].Paths, song.Path)
		l.savePlaylists()
		return true
	}
	return false
}

// playlistSongs resolves a playlist's paths against the loaded songs,
// keeping the playlist's order. Paths missing from the current load are
// skipped.
func (l *Library) playlistSongs(name string) []Song {
	for _, p := range l.playlists {
		if p.Name != name {
			continue
		}
		out := make([]Song, 0, len(p.Paths))
		for _, path := range p.Paths {
			if idx := l.IndexOf(path); idx >= 0 {
				out = append(out, l.songs[idx])
			}
		}
		return out
	}
	return nil
}

func (l *Library) savePlaylists() {
	if err := l.store.SavePlaylists(l.playlists); err != nil {
		log.Warn("failed to persist playlists", "err", err)
	}
}
