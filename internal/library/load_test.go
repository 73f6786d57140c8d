package library

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDiscoverFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "album")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.mp3", "b.flac", "notes.txt", "album/c.ogg", "album/cover.jpg"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := discoverFiles(dir)
	if err != nil {
		t.Fatalf("discoverFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("discovered %d files, want 3 music files: %v", len(files), files)
	}
}

func TestDiscoverFiles_MissingDir(t *testing.T) {
	if _, err := discoverFiles("/does/not/exist"); err == nil {
		t.Error("discoverFiles on missing dir should fail")
	}
}

func TestProcessFiles_SortedByTitle(t *testing.T) {
	dir := t.TempDir()
	// Junk content: metadata extraction fails per file, titles fall back to
	// file names. Case must not affect ordering.
	for _, name := range []string{"banana.mp3", "Apple.mp3", "cherry.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("junk"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	paths, err := discoverFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	probe := func(string) (time.Duration, error) { return 3 * time.Minute, nil }
	songs := processFiles(paths, probe)

	if len(songs) != 3 {
		t.Fatalf("processFiles returned %d songs, want 3", len(songs))
	}
	want := []string{"Apple", "banana", "cherry"}
	for i, title := range want {
		if songs[i].Title != title {
			t.Errorf("songs[%d].Title = %q, want %q (case-insensitive title order)", i, songs[i].Title, title)
		}
	}
}

func TestProcessFiles_FallbacksNeverAbortBatch(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"good.mp3", "bad.mp3"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("junk"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	paths, err := discoverFiles(dir)
	if err != nil {
		t.Fatal(err)
	}

	probe := func(path string) (time.Duration, error) {
		if filepath.Base(path) == "bad.mp3" {
			return 0, errors.New("undecodable")
		}
		return 2 * time.Minute, nil
	}
	songs := processFiles(paths, probe)

	if len(songs) != 2 {
		t.Fatalf("processFiles returned %d songs, want both kept", len(songs))
	}
	for _, s := range songs {
		if s.Title == "" || s.Artist == "" || s.Album == "" {
			t.Errorf("song %q has empty display fields: %+v", s.Path, s)
		}
		if s.Duration < 0 {
			t.Errorf("song %q has negative duration", s.Path)
		}
		if filepath.Base(s.Path) == "bad.mp3" && s.Duration != 0 {
			t.Errorf("failed probe should resolve duration 0, got %v", s.Duration)
		}
	}
}

func TestProcessFiles_Empty(t *testing.T) {
	songs := processFiles(nil, func(string) (time.Duration, error) { return 0, nil })
	if len(songs) != 0 {
		t.Errorf("processFiles(nil) = %v, want empty batch", songs)
	}
}

func TestSortSongs_LocaleAware(t *testing.T) {
	songs := []Song{
		{Title: "école"},
		{Title: "Zebra"},
		{Title: "apple"},
	}
	sortSongs(songs)

	// Loose collation ignores case and treats accented letters by base
	// letter: apple < école < Zebra.
	if songs[0].Title != "apple" || songs[1].Title != "école" || songs[2].Title != "Zebra" {
		t.Errorf("sortSongs order = [%s %s %s]", songs[0].Title, songs[1].Title, songs[2].Title)
	}
}
