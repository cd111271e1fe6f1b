// Package audio maps game events to procedurally generated sound effects.
// No asset files: every effect is a short synthesized streamer mixed into
// a single speaker stream.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/spacefold/galaxy/pkg/game"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager owns the speaker and a mixer of active effects.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
	volume      float64
}

// NewSoundManager creates a manager; call Initialize before use.
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
		volume:  volume,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call once at
// scene setup, outside the frame loop.
func (m *SoundManager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and detaches all effects.
func (m *SoundManager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// SetEnabled toggles all sound output.
func (m *SoundManager) SetEnabled(v bool) {
	m.mu.Lock()
	m.enabled = v
	m.mu.Unlock()
}

// HandleEvent is the game.Listener entry point. Fire-and-forget: the game
// never waits on audio.
func (m *SoundManager) HandleEvent(e game.Event) {
	m.mu.Lock()
	if !m.initialized || !m.enabled {
		m.mu.Unlock()
		return
	}
	volume := m.volume
	m.mu.Unlock()

	var s beep.Streamer
	switch e {
	case game.EventGameStarted:
		s = sweep(220, 660, 300*time.Millisecond, volume)
	case game.EventScoreMilestone:
		s = sweep(660, 880, 150*time.Millisecond, volume)
	case game.EventCollision:
		s = sweep(440, 55, 500*time.Millisecond, volume)
	default:
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// sweep returns a sine streamer gliding between two frequencies with a
// linear fade-out over the duration.
func sweep(fromHz, toHz float64, dur time.Duration, gain float64) beep.Streamer {
	total := sampleRate.N(dur)
	pos := 0
	phase := 0.0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			progress := float64(pos) / float64(total)
			freq := fromHz + (toHz-fromHz)*progress
			phase += 2 * math.Pi * freq / float64(sampleRate)
			v := math.Sin(phase) * gain * (1 - progress)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}
