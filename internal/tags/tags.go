// Package tags provides tag metadata and cover art extraction for music files.
package tags

import (
	"path/filepath"
	"strings"
)

// File extensions admitted into the library. The set matches what the
// player can decode; admitting more would ingest tracks that can never
// play.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtWAV  = ".wav"
	ExtOGG  = ".ogg"
)

// Fallback values used when a file carries no usable metadata.
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
)

// Tag contains the metadata displayed for a song.
type Tag struct {
	Path   string
	Title  string
	Artist string
	Album  string

	// Embedded cover art, empty when the file has none.
	CoverArt  []byte
	CoverMIME string
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	ext := strings.ToLower(path)
	if idx := strings.LastIndex(ext, "."); idx >= 0 {
		ext = ext[idx:]
	} else {
		return false
	}
	return ext == ExtMP3 || ext == ExtFLAC || ext == ExtWAV || ext == ExtOGG
}

// TitleFromPath derives a display title from a file path: the base name
// without its extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Fallback returns a Tag built purely from the file path, used when
// metadata extraction fails entirely.
func Fallback(path string) *Tag {
	return &Tag{
		Path:   path,
		Title:  TitleFromPath(path),
		Artist: UnknownArtist,
		Album:  UnknownAlbum,
	}
}
