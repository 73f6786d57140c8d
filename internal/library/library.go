// Package library holds the in-memory song list and its derived views:
// all music, recently added, favorites, recently played and named playlists.
package library

import (
	"github.com/charmbracelet/log"

	"github.com/llehouerou/aria/internal/settings"
)

// Storage is the slice of the settings store the library needs.
// Reads happen once at construction; every mutation writes back immediately.
type Storage interface {
	Favorites() []string
	SaveFavorites([]string) error
	RecentlyPlayed() []string
	SaveRecentlyPlayed([]string) error
	Playlists() []settings.Playlist
	SavePlaylists([]settings.Playlist) error
}

// Library is the full set of loaded songs plus derived views.
// It lives for the whole process; a folder load replaces the song list
// wholesale but favorites, recently-played and playlists survive.
type Library struct {
	songs         []Song
	recentlyAdded []Song

	favorites  map[string]bool
	recent     []string // most recent first
	recentSet  map[string]bool
	playlists  []settings.Playlist
	recentMax  int // 0 = unbounded
	generation int

	store Storage
}

// New creates a library, restoring persisted favorites, recently-played
// paths and playlists from the store.
func New(store Storage, recentLimit int) *Library {
	l := &Library{
		favorites: make(map[string]bool),
		recentSet: make(map[string]bool),
		recentMax: recentLimit,
		store:     store,
	}
	for _, path := range store.Favorites() {
		l.favorites[path] = true
	}
	for _, path := range store.RecentlyPlayed() {
		if !l.recentSet[path] {
			l.recent = append(l.recent, path)
			l.recentSet[path] = true
		}
	}
	l.playlists = store.Playlists()
	l.trimRecent()
	return l
}

// Songs returns the full ordered song list.
func (l *Library) Songs() []Song {
	return l.songs
}

// Len returns the number of loaded songs.
func (l *Library) Len() int {
	return len(l.songs)
}

// Song returns the song at the given index, or nil if out of bounds.
func (l *Library) Song(index int) *Song {
	if index < 0 || index >= len(l.songs) {
		return nil
	}
	return &l.songs[index]
}

// IndexOf returns the index of the song with the given path, or -1.
func (l *Library) IndexOf(path string) int {
	for i := range l.songs {
		if l.songs[i].Path == path {
			return i
		}
	}
	return -1
}

// BeginLoad marks the start of a folder load and returns its generation.
// A batch installed with a stale generation is discarded, so a newer load
// always wins over one that settles late.
func (l *Library) BeginLoad() int {
	l.generation++
	return l.generation
}

// IsCurrentLoad reports whether the generation belongs to the most
// recent load. A failed load is only worth reporting when it is current.
func (l *Library) IsCurrentLoad(generation int) bool {
	return generation == l.generation
}

// Install replaces the song list with a settled ingestion batch.
// Returns false when the batch belongs to a superseded load.
func (l *Library) Install(generation int, songs []Song) bool {
	if generation != l.generation {
		log.Debug("discarding stale load batch", "generation", generation, "current", l.generation)
		return false
	}
	l.songs = songs
	l.recentlyAdded = songs
	return true
}

// IsFavorite returns whether the song at path is favorited.
func (l *Library) IsFavorite(path string) bool {
	return l.favorites[path]
}

// ToggleFavorite flips favorites membership for the song and persists the
// set. Calling it twice restores the original membership.
func (l *Library) ToggleFavorite(song *Song) bool {
	if song == nil {
		return false
	}
	nowFavorite := !l.favorites[song.Path]
	if nowFavorite {
		l.favorites[song.Path] = true
	} else {
		delete(l.favorites, song.Path)
	}
	l.saveFavorites()
	return nowFavorite
}

func (l *Library) saveFavorites() {
	paths := make([]string, 0, len(l.favorites))
	for i := range l.songs {
		if l.favorites[l.songs[i].Path] {
			paths = append(paths, l.songs[i].Path)
		}
	}
	// Keep favorites whose songs are not in the current load.
	for path := range l.favorites {
		if l.IndexOf(path) == -1 {
			paths = append(paths, path)
		}
	}
	if err := l.store.SaveFavorites(paths); err != nil {
		log.Warn("failed to persist favorites", "err", err)
	}
}

// RecordPlayed moves the song to the front of the recently-played list,
// trims it to the configured bound and persists it.
func (l *Library) RecordPlayed(song *Song) {
	if song == nil {
		return
	}
	if l.recentSet[song.Path] {
		for i, path := range l.recent {
			if path == song.Path {
				l.recent = append(l.recent[:i], l.recent[i+1:]...)
				break
			}
		}
	}
	l.recent = append([]string{song.Path}, l.recent...)
	l.recentSet[song.Path] = true
	l.trimRecent()

	if err := l.store.SaveRecentlyPlayed(l.recent); err != nil {
		log.Warn("failed to persist recently played", "err", err)
	}
}

func (l *Library) trimRecent() {
	if l.recentMax <= 0 || len(l.recent) <= l.recentMax {
		return
	}
	for _, path := range l.recent[l.recentMax:] {
		delete(l.recentSet, path)
	}
	l.recent = l.recent[:l.recentMax]
}

// RecentlyPlayed returns the recently-played paths, most recent first.
func (l *Library) RecentlyPlayed() []string {
	return l.recent
}
