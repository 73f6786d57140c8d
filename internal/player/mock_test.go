package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMock_PlayResetsPosition(t *testing.T) {
	m := NewMock()
	m.SetPosition(30 * time.Second)

	err := m.Play("/a.mp3")

	assert.NoError(t, err)
	assert.Equal(t, time.Duration(0), m.Position())
	assert.Equal(t, []string{"/a.mp3"}, m.PlayCalls())
}

func TestMock_SeekRecordsAndMoves(t *testing.T) {
	m := NewMock()

	m.SeekTo(10 * time.Second)
	m.SeekTo(25 * time.Second)

	assert.Equal(t, []time.Duration{10 * time.Second, 25 * time.Second}, m.SeekCalls())
	assert.Equal(t, 25*time.Second, m.Position())
}

func TestMock_SimulateFinishedSignalsOnce(t *testing.T) {
	m := NewMock()

	m.SimulateFinished()
	m.SimulateFinished() // buffered channel holds one signal, second is dropped

	select {
	case <-m.FinishedChan():
	default:
		t.Fatal("no finished signal delivered")
	}
	select {
	case <-m.FinishedChan():
		t.Fatal("duplicate finished signal delivered")
	default:
	}
}
