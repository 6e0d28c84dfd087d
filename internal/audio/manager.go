package audio

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Manager owns the audio device and the demo's loaded sound effects.
//
// A single player pulls from the Sampler for the whole run; the Sampler
// synthesizes silence whenever no sample is active, so the player never
// reaches the end of its stream.
type Manager struct {
	context *audio.Context
	player  *audio.Player
	sampler *Sampler

	samples [SndCount]*Sample

	// Volume controls (0.0 to 1.0)
	sfxVolume float64
	muted     bool
}

// NewManager creates a new audio manager.
func NewManager() *Manager {
	return &Manager{
		sampler:   NewSampler(),
		sfxVolume: 1.0,
	}
}

// Init opens the audio context and creates the pull stream player. The
// player stays paused until Start is called.
func (m *Manager) Init() error {
	m.context = audio.NewContext(SampleRate)

	player, err := m.context.NewPlayer(m.sampler)
	if err != nil {
		return fmt.Errorf("failed to create audio player: %w", err)
	}
	m.player = player
	m.player.SetVolume(m.sfxVolume)

	log.Println("Audio manager initialized")
	return nil
}

// Start unpauses the device. From here on the playback goroutine pulls
// from the sampler continuously.
func (m *Manager) Start() {
	if m.player == nil {
		return
	}
	m.player.Play()
	log.Println("Audio playback started")
}

// LoadSample registers a decoded sample under the given sound effect ID.
func (m *Manager) LoadSample(id int, sample *Sample) error {
	if id < 0 || id >= SndCount {
		return fmt.Errorf("invalid sound effect ID: %d", id)
	}
	m.samples[id] = sample
	log.Printf("Sound effect loaded: %s (ID: %d, %d bytes)", sample.Name, id, len(sample.PCM))
	return nil
}

// Play makes the sample with the given ID the active one. Any unfinished
// sample is cut off; there is no queue.
func (m *Manager) Play(id int) {
	if m.muted || id < 0 || id >= SndCount {
		return
	}

	sample := m.samples[id]
	if sample == nil {
		log.Printf("Warning: sound effect ID %d not loaded", id)
		return
	}

	m.sampler.Assign(sample.PCM)
}

// SetVolume sets the sound effects volume (0.0 to 1.0).
func (m *Manager) SetVolume(volume float64) {
	if volume < 0.0 {
		volume = 0.0
	} else if volume > 1.0 {
		volume = 1.0
	}

	m.sfxVolume = volume
	if m.player != nil && !m.muted {
		m.player.SetVolume(volume)
	}
}

// SetMuted sets the mute state. Muting silences the output and drops any
// further Play calls until unmuted.
func (m *Manager) SetMuted(muted bool) {
	m.muted = muted
	if m.player == nil {
		return
	}
	if muted {
		m.player.SetVolume(0.0)
	} else {
		m.player.SetVolume(m.sfxVolume)
	}
}

// IsMuted returns the current mute state.
func (m *Manager) IsMuted() bool {
	return m.muted
}

// MemoryUsage returns the total size of the loaded samples in bytes.
func (m *Manager) MemoryUsage() int {
	var total int
	for _, sample := range m.samples {
		if sample != nil {
			total += len(sample.PCM)
		}
	}
	return total
}

// Cleanup closes the player and releases the device.
func (m *Manager) Cleanup() {
	if m.player != nil {
		m.player.Close()
		m.player = nil
	}
	log.Println("Audio manager cleaned up")
}
