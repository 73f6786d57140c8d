package tags

import (
	"github.com/bogem/id3v2/v2"
)

// readMP3WithID3v2Fallback reads MP3 metadata using only the id3v2 library.
// This is used as a fallback when dhowden/tag fails (e.g., on some UTF-16 encoded tags).
func readMP3WithID3v2Fallback(path string) (*Tag, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	t := &Tag{
		Path:   path,
		Title:  id3tag.Title(),
		Artist: id3tag.Artist(),
		Album:  id3tag.Album(),
	}

	// Attached picture frame, front cover preferred
	frames := id3tag.GetFrames(id3tag.CommonID("Attached picture"))
	for _, frame := range frames {
		pic, ok := frame.(id3v2.PictureFrame)
		if !ok {
			continue
		}
		if t.CoverArt == nil || pic.PictureType == id3v2.PTFrontCover {
			t.CoverArt = pic.Picture
			t.CoverMIME = pic.MimeType
		}
		if pic.PictureType == id3v2.PTFrontCover {
			break
		}
	}

	applyFallbacks(t)
	return t, nil
}
