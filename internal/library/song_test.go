package library

import (
	"strings"
	"testing"
)

func TestArtworkURI(t *testing.T) {
	s := &Song{CoverArt: []byte{0x01, 0x02}, CoverMIME: "image/png"}
	if uri := s.ArtworkURI(); !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("ArtworkURI() = %q, want data:image/png;base64 prefix", uri)
	}

	noMIME := &Song{CoverArt: []byte{0x01}}
	if uri := noMIME.ArtworkURI(); !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Errorf("ArtworkURI() without MIME = %q, want jpeg default", uri)
	}

	bare := &Song{}
	if uri := bare.ArtworkURI(); uri != DefaultArtworkURI {
		t.Errorf("ArtworkURI() without art = %q, want placeholder", uri)
	}
}
