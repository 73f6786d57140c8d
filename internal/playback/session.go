// Package playback owns the current track pointer and transport state:
// play/pause, shuffle, repeat, volume and mute. It is the only component
// that issues commands to the player handle.
package playback

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/aria/internal/library"
	"github.com/llehouerou/aria/internal/player"
)

// previousRestartThreshold: within this playback position, "previous"
// moves to the prior track; past it, it restarts the current one.
const previousRestartThreshold = 3 * time.Second

// Settings is the slice of the settings store the session persists to.
type Settings interface {
	SaveVolume(float64) error
	SaveRepeatMode(string) error
}

// Session drives the player against the library's song list.
type Session struct {
	player player.Interface
	lib    *library.Library
	store  Settings

	currentIndex int
	shuffle      bool
	repeat       RepeatMode
	volume       float64 // remembered level, survives mute
	muted        bool

	// randIndex draws the shuffle target; injectable for tests.
	randIndex func(n int) int
}

// New creates a session and applies the persisted volume and repeat mode.
func New(p player.Interface, lib *library.Library, store Settings, volume float64, repeatMode string) *Session {
	s := &Session{
		player:       p,
		lib:          lib,
		store:        store,
		currentIndex: -1,
		repeat:       ParseRepeatMode(repeatMode),
		volume:       clampVolume(volume),
		randIndex:    rand.IntN,
	}
	p.SetVolume(s.volume)
	return s
}

// State returns the session state.
func (s *Session) State() State {
	if s.lib.Len() == 0 || s.currentIndex < 0 {
		return Empty
	}
	if s.player.State() == player.Playing {
		return Playing
	}
	return Paused
}

// IsPlaying returns true when a track is audibly playing.
func (s *Session) IsPlaying() bool {
	return s.State() == Playing
}

// CurrentIndex returns the index of the current track, -1 when empty.
func (s *Session) CurrentIndex() int {
	if s.lib.Len() == 0 {
		return -1
	}
	return s.currentIndex
}

// CurrentSong returns the current song, or nil when empty.
func (s *Session) CurrentSong() *library.Song {
	if s.currentIndex < 0 {
		return nil
	}
	return s.lib.Song(s.currentIndex)
}

// LibraryReplaced reacts to a folder load: with at least one song the
// session moves to the first track and immediately begins playback;
// with none it returns to Empty.
func (s *Session) LibraryReplaced() error {
	if s.lib.Len() == 0 {
		s.currentIndex = -1
		s.player.Stop()
		return nil
	}
	return s.playIndex(0)
}

// playIndex starts playback of the track at index and records the play.
func (s *Session) playIndex(index int) error {
	song := s.lib.Song(index)
	if song == nil {
		return nil
	}
	if err := s.player.Play(song.Path); err != nil {
		return err
	}
	s.currentIndex = index
	s.lib.RecordPlayed(song)
	return nil
}

// PlayIndex jumps to the given library index and starts playback.
// Out-of-range indices are ignored.
func (s *Session) PlayIndex(index int) error {
	if index < 0 || index >= s.lib.Len() {
		return nil
	}
	return s.playIndex(index)
}

// TogglePlayPause switches between Playing and Paused. No-op when Empty.
func (s *Session) TogglePlayPause() error {
	if s.State() == Empty {
		return nil
	}
	if s.player.State() == player.Stopped {
		// Track was never started (or fully stopped): start the current one.
		return s.playIndex(s.currentIndex)
	}
	s.player.Toggle()
	return nil
}

// PlayNext advances to the next track and starts playback. With shuffle
// the target is drawn uniformly at random, and may repeat the current
// track. No-op when Empty.
func (s *Session) PlayNext() error {
	n := s.lib.Len()
	if n == 0 {
		return nil
	}
	if s.shuffle {
		return s.playIndex(s.randIndex(n))
	}
	return s.playIndex((s.currentIndex + 1) % n)
}

// PlayPrevious restarts the current track when more than three seconds
// in; otherwise it moves to the previous track (circularly) and starts
// playback. No-op when Empty.
func (s *Session) PlayPrevious() error {
	n := s.lib.Len()
	if n == 0 {
		return nil
	}
	if s.player.Position() > previousRestartThreshold {
		s.player.SeekTo(0)
		return nil
	}
	return s.playIndex((s.currentIndex - 1 + n) % n)
}

// HandleTrackFinished dispatches on the repeat mode when the player
// reports a track has played to its end.
func (s *Session) HandleTrackFinished() error {
	n := s.lib.Len()
	if n == 0 || s.currentIndex < 0 {
		return nil
	}

	switch s.repeat {
	case RepeatOne:
		return s.playIndex(s.currentIndex)
	case RepeatAll:
		return s.playIndex((s.currentIndex + 1) % n)
	default: // RepeatNone
		if s.currentIndex < n-1 {
			return s.PlayNext()
		}
		// Last track: stop at position 0, stay loaded but paused.
		return s.reloadPaused()
	}
}

// reloadPaused loads the current track paused at position zero.
func (s *Session) reloadPaused() error {
	song := s.lib.Song(s.currentIndex)
	if song == nil {
		return nil
	}
	if err := s.player.Play(song.Path); err != nil {
		return err
	}
	s.player.Pause()
	return nil
}

// Shuffle returns whether shuffle is enabled.
func (s *Session) Shuffle() bool {
	return s.shuffle
}

// ToggleShuffle flips shuffle without touching the play/pause state.
func (s *Session) ToggleShuffle() bool {
	s.shuffle = !s.shuffle
	return s.shuffle
}

// Repeat returns the current repeat mode.
func (s *Session) Repeat() RepeatMode {
	return s.repeat
}

// CycleRepeatMode advances none → one → all → none and persists the new
// mode. The play/pause state is untouched.
func (s *Session) CycleRepeatMode() RepeatMode {
	s.repeat = s.repeat.Cycle()
	if err := s.store.SaveRepeatMode(s.repeat.String()); err != nil {
		log.Warn("failed to persist repeat mode", "err", err)
	}
	return s.repeat
}

// Volume returns the remembered volume level.
func (s *Session) Volume() float64 {
	return s.volume
}

// SetVolume clamps to [0, 1], applies the level to the player, unmutes
// and persists.
func (s *Session) SetVolume(v float64) {
	s.volume = clampVolume(v)
	s.muted = false
	s.player.SetMuted(false)
	s.player.SetVolume(s.volume)
	if err := s.store.SaveVolume(s.volume); err != nil {
		log.Warn("failed to persist volume", "err", err)
	}
}

// AdjustVolume changes the volume by delta, clamped.
func (s *Session) AdjustVolume(delta float64) {
	s.SetVolume(s.volume + delta)
}

// Muted returns whether output is muted.
func (s *Session) Muted() bool {
	return s.muted
}

// ToggleMute silences the player without overwriting the remembered
// volume; a second toggle restores it. Muting is transient and never
// persisted.
func (s *Session) ToggleMute() {
	if !s.muted && s.volume > 0 {
		s.muted = true
		s.player.SetMuted(true)
		return
	}
	s.muted = false
	s.player.SetMuted(false)
	s.player.SetVolume(s.volume)
}

// SeekToFraction seeks to fraction·duration. No-op when the duration is
// unknown. The fraction is clamped to [0, 1].
func (s *Session) SeekToFraction(fraction float64) {
	d := s.player.Duration()
	if d <= 0 {
		return
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	s.player.SeekTo(time.Duration(fraction * float64(d)))
}

// SeekBy moves the position by delta. No-op when the duration is unknown.
func (s *Session) SeekBy(delta time.Duration) {
	if s.player.Duration() <= 0 {
		return
	}
	pos := s.player.Position() + delta
	if pos < 0 {
		pos = 0
	}
	s.player.SeekTo(pos)
}

// Position returns the current playback position.
func (s *Session) Position() time.Duration {
	return s.player.Position()
}

// Duration returns the current track duration, 0 when unknown.
func (s *Session) Duration() time.Duration {
	return s.player.Duration()
}

// FinishedChan exposes the player's track-end signal for the event loop.
func (s *Session) FinishedChan() <-chan struct{} {
	return s.player.FinishedChan()
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
