package tags

import (
	"os"
	"path/filepath"
	"strings"
)

// Common cover art filenames to look for in album folders.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
}

// ResolveCoverArt fills in folder art when a tag has no embedded picture.
// It looks for common cover image files (cover.jpg, folder.png, ...) in the
// same directory as the audio file.
func ResolveCoverArt(t *Tag) {
	if t.CoverArt != nil {
		return
	}
	data, mime := findFolderArt(filepath.Dir(t.Path))
	t.CoverArt = data
	t.CoverMIME = mime
}

// findFolderArt looks for common cover art files in the given directory.
func findFolderArt(dir string) (data []byte, mimeType string) {
	for _, name := range coverArtFilenames {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return data, mimeFromExt(path)
	}
	return nil, ""
}

func mimeFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}
