package app

import (
	"time"

	"github.com/llehouerou/aria/internal/library"
)

// TickMsg is sent periodically to refresh the progress bar.
type TickMsg time.Time

// TrackFinishedMsg is sent when the player reports a track played to its
// end naturally. Manual stops do not produce it.
type TrackFinishedMsg struct{}

// LibraryLoadedMsg carries a settled folder ingestion batch back to the
// update loop. Generation ties the batch to the load that produced it so
// a superseded load can be discarded.
type LibraryLoadedMsg struct {
	Generation int
	Songs      []library.Song
	Err        error
}
