package app

import "time"

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.05
)

// helpLine is the one-line key reference shown in the footer.
const helpLine = "space play/pause · ←/→ seek · shift+←/→ track · ↑/↓ vol · m mute · s shuffle · r repeat · f fav · n/a playlist · / search · o open · tab view · q quit"
