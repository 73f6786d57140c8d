package tags

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/music/song.mp3", true},
		{"/music/song.MP3", true},
		{"/music/song.flac", true},
		{"/music/song.wav", true},
		{"/music/song.ogg", true},
		{"/music/song.m4a", false}, // no decode path, must not be ingested
		{"/music/song.mp4", false},
		{"/music/cover.jpg", false},
		{"/music/noextension", false},
		{"/music/notes.txt", false},
	}

	for _, tt := range tests {
		if got := IsMusicFile(tt.path); got != tt.want {
			t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	if got := TitleFromPath("/music/My Song.mp3"); got != "My Song" {
		t.Errorf("TitleFromPath() = %q, want %q", got, "My Song")
	}
	if got := TitleFromPath("noext"); got != "noext" {
		t.Errorf("TitleFromPath() = %q, want %q", got, "noext")
	}
}

func TestFallback(t *testing.T) {
	tag := Fallback("/music/track01.flac")

	if tag.Title != "track01" {
		t.Errorf("Title = %q, want %q", tag.Title, "track01")
	}
	if tag.Artist != UnknownArtist {
		t.Errorf("Artist = %q, want %q", tag.Artist, UnknownArtist)
	}
	if tag.Album != UnknownAlbum {
		t.Errorf("Album = %q, want %q", tag.Album, UnknownAlbum)
	}
}

func TestResolveCoverArt_FolderImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cover.png"), []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	tag := &Tag{Path: filepath.Join(dir, "song.mp3")}
	ResolveCoverArt(tag)

	if string(tag.CoverArt) != "png-bytes" {
		t.Errorf("CoverArt = %q, want folder image contents", tag.CoverArt)
	}
	if tag.CoverMIME != "image/png" {
		t.Errorf("CoverMIME = %q, want image/png", tag.CoverMIME)
	}
}

func TestResolveCoverArt_KeepsEmbedded(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("folder-art"), 0o644); err != nil {
		t.Fatal(err)
	}

	tag := &Tag{Path: filepath.Join(dir, "song.mp3"), CoverArt: []byte("embedded"), CoverMIME: "image/jpeg"}
	ResolveCoverArt(tag)

	if string(tag.CoverArt) != "embedded" {
		t.Errorf("CoverArt = %q, embedded art should win over folder art", tag.CoverArt)
	}
}
