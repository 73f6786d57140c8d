package library

import (
	"encoding/base64"
	"time"
)

// Song is one playable entry in the library. Identity is the Path;
// a Song is never mutated after its ingestion batch is installed.
type Song struct {
	Title    string
	Artist   string
	Album    string
	Duration time.Duration // 0 when unknown
	Path     string

	// Cover art as raw bytes plus MIME type; empty means "use placeholder".
	CoverArt  []byte
	CoverMIME string
}

// ArtworkURI returns the cover art as an embedded-image data URI, or the
// default placeholder reference when the song has no art.
func (s *Song) ArtworkURI() string {
	if len(s.CoverArt) == 0 {
		return DefaultArtworkURI
	}
	mime := s.CoverMIME
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(s.CoverArt)
}

// DefaultArtworkURI is a 1x1 transparent PNG used when a song has no cover.
const DefaultArtworkURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
