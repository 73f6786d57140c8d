package playback

// State represents the session state.
//
// The state machine has three states:
//
//	Empty ── library loaded (≥1 song) ──▶ Playing
//	Playing ◀── toggle ──▶ Paused
//	any ── library replaced with no songs ──▶ Empty
//
// Empty means no songs are loaded; Playing and Paused both imply a valid
// current index into the library.
type State int

const (
	Empty State = iota
	Paused
	Playing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return "Unknown"
	}
}

// RepeatMode defines the behavior when a track finishes.
type RepeatMode int

const (
	RepeatNone RepeatMode = iota
	RepeatOne
	RepeatAll
)

// String returns the repeat mode name as persisted.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOne:
		return "one"
	case RepeatAll:
		return "all"
	default:
		return "none"
	}
}

// ParseRepeatMode maps a persisted repeat mode string back to its value.
// Unknown strings map to RepeatNone.
func ParseRepeatMode(s string) RepeatMode {
	switch s {
	case "one":
		return RepeatOne
	case "all":
		return RepeatAll
	default:
		return RepeatNone
	}
}

// Cycle advances none → one → all → none.
func (m RepeatMode) Cycle() RepeatMode {
	switch m {
	case RepeatNone:
		return RepeatOne
	case RepeatOne:
		return RepeatAll
	default:
		return RepeatNone
	}
}
