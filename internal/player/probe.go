package player

import (
	"os"
	"time"
)

// ProbeDuration decodes a file on a throwaway streamer to determine its
// duration without touching the speaker. Returns an error when the file
// cannot be decoded; callers treat that as "duration unknown".
func ProbeDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	streamer, format, err := decode(f, path)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}
