package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Settings configure the audio device.
type Settings struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// BeepPlayer plays cues through the system speaker. All cues are mixed
// into one beep.Mixer that the speaker drains continuously.
type BeepPlayer struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// New opens the speaker. When audio is disabled it returns Nop. When the
// device cannot be opened it returns Nop together with the error, so the
// caller can log it and carry on silently.
func New(s Settings) (Player, error) {
	if !s.Enabled {
		return Nop{}, nil
	}
	if s.SampleRate <= 0 {
		s.SampleRate = 44100
	}

	rate := beep.SampleRate(s.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return Nop{}, fmt.Errorf("audio: init speaker: %w", err)
	}

	p := &BeepPlayer{
		rate:   rate,
		volume: min(max(s.MasterVolume, 0), 1),
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Play queues c on the mixer.
func (p *BeepPlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	s := Synth(c, p.rate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(s, p.volume))
	speaker.Unlock()
}

// Stop drops every cue still playing.
func (p *BeepPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// Close stops playback and releases the speaker. It is safe to call twice.
func (p *BeepPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	return nil
}
