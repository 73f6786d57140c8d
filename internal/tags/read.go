package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Read reads tag metadata from a music file.
// Missing fields are filled with fallbacks (title from the file name,
// "Unknown Artist", "Unknown Album") so the result is always displayable.
func Read(path string) (*Tag, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// dhowden/tag has issues with some UTF-16 encoded ID3 tags
		if strings.EqualFold(filepath.Ext(path), ExtMP3) {
			return readMP3WithID3v2Fallback(path)
		}
		return nil, err
	}

	t := &Tag{
		Path:   path,
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}
	if pic := m.Picture(); pic != nil {
		t.CoverArt = pic.Data
		t.CoverMIME = pic.MIMEType
	}
	applyFallbacks(t)
	return t, nil
}

// applyFallbacks fills empty display fields in place.
func applyFallbacks(t *Tag) {
	if t.Title == "" {
		t.Title = TitleFromPath(t.Path)
	}
	if t.Artist == "" {
		t.Artist = UnknownArtist
	}
	if t.Album == "" {
		t.Album = UnknownAlbum
	}
}
