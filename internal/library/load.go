package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/llehouerou/aria/internal/player"
	"github.com/llehouerou/aria/internal/tags"
)

const numWorkers = 8

// LoadFolder ingests every music file under dir and returns the settled,
// title-sorted batch. Per-file failures are logged and recovered with
// fallback values; they never abort the batch. The error is only non-nil
// when the directory itself cannot be read.
func LoadFolder(dir string) ([]Song, error) {
	files, err := discoverFiles(dir)
	if err != nil {
		return nil, err
	}
	return processFiles(files, player.ProbeDuration), nil
}

// discoverFiles walks dir and returns all music file paths found.
// Unreadable subtrees are skipped, not fatal.
func discoverFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Debug("skipping unreadable path", "path", path, "err", walkErr)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !tags.IsMusicFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, nil
}

// processFiles resolves metadata and duration for each file on a worker
// pool. Each file settles independently; the batch is assembled only once
// every resolution has completed, then sorted by title.
func processFiles(paths []string, probe func(string) (time.Duration, error)) []Song {
	if len(paths) == 0 {
		return []Song{}
	}

	workCh := make(chan string, len(paths))
	resultCh := make(chan Song, len(paths))

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Go(func() {
			for path := range workCh {
				resultCh <- resolveSong(path, probe)
			}
		})
	}

	go func() {
		for _, path := range paths {
			workCh <- path
		}
		close(workCh)
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	songs := make([]Song, 0, len(paths))
	for song := range resultCh {
		songs = append(songs, song)
	}

	sortSongs(songs)
	return songs
}

// resolveSong builds a Song from one file. Metadata failures fall back to
// filename-derived values; duration failures resolve to 0. Both are
// logged and swallowed so the song is still added.
func resolveSong(path string, probe func(string) (time.Duration, error)) Song {
	t, err := tags.Read(path)
	if err != nil {
		log.Warn("metadata extraction failed", "file", filepath.Base(path), "err", err)
		t = tags.Fallback(path)
	}
	tags.ResolveCoverArt(t)

	duration, err := probe(path)
	if err != nil {
		log.Warn("duration probe failed", "file", filepath.Base(path), "err", err)
		duration = 0
	}

	return Song{
		Title:     t.Title,
		Artist:    t.Artist,
		Album:     t.Album,
		Duration:  duration,
		Path:      path,
		CoverArt:  t.CoverArt,
		CoverMIME: t.CoverMIME,
	}
}

// sortSongs orders the batch by title, locale-aware and case-insensitive.
func sortSongs(songs []Song) {
	c := collate.New(language.Und, collate.Loose)
	sort.SliceStable(songs, func(i, j int) bool {
		return c.CompareString(songs[i].Title, songs[j].Title) < 0
	})
}
