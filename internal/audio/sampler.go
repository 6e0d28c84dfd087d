package audio

import "sync"

// Sampler is the single-slot sample source that feeds the playback device.
// At most one sample is active at a time; assigning a new one replaces any
// unfinished playback immediately (last write wins, hard cut - this matches
// the original demo and is intentional, not a missing queue).
//
// Assign is called from the game loop when an input event triggers a sound.
// Read is called from the playback goroutine whenever the device pulls more
// data. The mutex is held only for the copy itself, never across I/O.
type Sampler struct {
	mu     sync.Mutex
	sample []byte
	pos    int
}

// NewSampler creates an idle sampler. Until a sample is assigned it
// produces silence.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Assign replaces the active sample and rewinds the cursor to the start.
func (s *Sampler) Assign(sample []byte) {
	s.mu.Lock()
	s.sample = sample
	s.pos = 0
	s.mu.Unlock()
}

// Read copies the remaining sample bytes into p and pads the rest with
// silence. It always fills all of p and never returns an error, so the
// player treats the sampler as an endless stream and keeps pulling.
func (s *Sampler) Read(p []byte) (int, error) {
	s.mu.Lock()
	n := copy(p, s.sample[s.pos:])
	s.pos += n
	s.mu.Unlock()

	// Zero-fill outside the lock; p belongs to the caller.
	tail := p[n:]
	for i := range tail {
		tail[i] = 0
	}
	return len(p), nil
}

// Remaining reports how many bytes of the active sample have not yet been
// delivered to the device.
func (s *Sampler) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sample) - s.pos
}

// Len reports the length of the active sample.
func (s *Sampler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sample)
}
