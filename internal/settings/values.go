package settings

import (
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/log"
)

// Defaults returned when a key is absent or its stored value is malformed.
const (
	DefaultVolume     = 1.0
	DefaultRepeatMode = "none"
)

// Repeat mode values stored on disk.
const (
	RepeatNone = "none"
	RepeatOne  = "one"
	RepeatAll  = "all"
)

// Playlist is a named ordered list of song paths, persisted as a
// [name, paths] pair.
type Playlist struct {
	Name  string
	Paths []string
}

// Volume returns the persisted volume level in [0, 1].
func (s *Store) Volume() float64 {
	raw, ok, err := s.getLogged(keyVolume)
	if !ok || err != nil {
		return DefaultVolume
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 1 {
		log.Warn("ignoring malformed stored volume", "value", raw)
		return DefaultVolume
	}
	return v
}

// SaveVolume persists the volume level, serialized as a decimal string.
func (s *Store) SaveVolume(v float64) error {
	return s.set(keyVolume, strconv.FormatFloat(v, 'f', -1, 64))
}

// RepeatMode returns the persisted repeat mode ("none", "one" or "all").
func (s *Store) RepeatMode() string {
	raw, ok, err := s.getLogged(keyRepeatMode)
	if !ok || err != nil {
		return DefaultRepeatMode
	}
	switch raw {
	case RepeatNone, RepeatOne, RepeatAll:
		return raw
	}
	log.Warn("ignoring malformed stored repeat mode", "value", raw)
	return DefaultRepeatMode
}

// SaveRepeatMode persists the repeat mode.
func (s *Store) SaveRepeatMode(mode string) error {
	return s.set(keyRepeatMode, mode)
}

// Favorites returns the persisted set of favorited song paths.
func (s *Store) Favorites() []string {
	return s.stringList(keyFavorites)
}

// SaveFavorites persists the favorites set as a JSON array.
func (s *Store) SaveFavorites(paths []string) error {
	return s.setJSON(keyFavorites, paths)
}

// RecentlyPlayed returns the persisted recently-played paths,
// most recent first.
func (s *Store) RecentlyPlayed() []string {
	return s.stringList(keyRecentlyPlayed)
}

// SaveRecentlyPlayed persists the recently-played paths as a JSON array.
func (s *Store) SaveRecentlyPlayed(paths []string) error {
	return s.setJSON(keyRecentlyPlayed, paths)
}

// Playlists returns the persisted playlists in their saved order.
func (s *Store) Playlists() []Playlist {
	raw, ok, err := s.getLogged(keyPlaylists)
	if !ok || err != nil {
		return nil
	}

	// Stored as an array of [name, paths] pairs.
	var pairs [][]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		log.Warn("ignoring malformed stored playlists", "err", err)
		return nil
	}

	playlists := make([]Playlist, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			log.Warn("ignoring malformed playlist entry", "fields", len(pair))
			continue
		}
		var p Playlist
		if err := json.Unmarshal(pair[0], &p.Name); err != nil {
			log.Warn("ignoring malformed playlist name", "err", err)
			continue
		}
		if err := json.Unmarshal(pair[1], &p.Paths); err != nil {
			log.Warn("ignoring malformed playlist songs", "playlist", p.Name, "err", err)
			continue
		}
		playlists = append(playlists, p)
	}
	return playlists
}

// SavePlaylists persists playlists as an array of [name, paths] pairs.
func (s *Store) SavePlaylists(playlists []Playlist) error {
	pairs := make([][]any, 0, len(playlists))
	for _, p := range playlists {
		paths := p.Paths
		if paths == nil {
			paths = []string{}
		}
		pairs = append(pairs, []any{p.Name, paths})
	}
	data, err := json.Marshal(pairs)
	if err != nil {
		return err
	}
	return s.set(keyPlaylists, string(data))
}

// stringList reads a JSON string array, falling back to nil when the key
// is absent or the value is malformed.
func (s *Store) stringList(key string) []string {
	raw, ok, err := s.getLogged(key)
	if !ok || err != nil {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Warn("ignoring malformed stored value", "key", key, "err", err)
		return nil
	}
	return list
}

func (s *Store) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.set(key, string(data))
}

func (s *Store) getLogged(key string) (string, bool, error) {
	raw, ok, err := s.get(key)
	if err != nil {
		log.Warn("failed to read setting", "key", key, "err", err)
	}
	return raw, ok, err
}
