package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type tone struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// newTone returns a streamer producing one wave for d.
func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		noise: rand.New(rand.NewSource(int64(freq) + 1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	s        beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  rate.N(attack),
		release: rate.N(release),
		total:   rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales a streamer linearly. Zero or less is silent;
// effects.Volume works in log2 steps.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq float64
	dur  time.Duration
	wave Wave
}

func notes(rate beep.SampleRate, ns ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(ns))
	for i, n := range ns {
		attack := min(5*time.Millisecond, n.dur/4)
		release := n.dur / 3
		parts[i] = newEnvelope(newTone(n.freq, n.dur, n.wave, rate), n.dur, attack, release, rate)
	}
	return beep.Seq(parts...)
}

const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteB5 = 987.77
	noteC6 = 1046.50
	noteE6 = 1318.51
	noteG4 = 392.00
	noteE4 = 329.63
	noteC4 = 261.63
)

// Synth returns the streamer for c at the given sample rate, or nil for an
// unknown cue.
func Synth(c Cue, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch c {
	case CueCountdown:
		return notes(rate, note{660, 90 * ms, WaveSine})
	case CueGo:
		return notes(rate, note{990, 180 * ms, WaveSine})
	case CueAccept:
		return notes(rate, note{noteB5, 50 * ms, WaveSine}, note{noteE6, 110 * ms, WaveSine})
	case CueReject:
		return notes(rate, note{110, 150 * ms, WaveSaw})
	case CuePenalty:
		return notes(rate, note{220, 90 * ms, WaveSquare}, note{165, 140 * ms, WaveSquare})
	case CueErase:
		return notes(rate, note{0, 120 * ms, WaveNoise})
	case CueHint:
		return beep.Mix(
			withVolume(notes(rate, note{noteE6, 200 * ms, WaveSine}), 0.7),
			withVolume(notes(rate, note{noteE6 * 2, 200 * ms, WaveSine}), 0.3),
		)
	case CueWordComplete:
		return notes(rate,
			note{noteC5, 90 * ms, WaveSine},
			note{noteE5, 90 * ms, WaveSine},
			note{noteG5, 90 * ms, WaveSine},
			note{noteC6, 220 * ms, WaveSine},
		)
	case CueGameOver:
		return notes(rate,
			note{noteG4, 180 * ms, WaveSaw},
			note{noteE4, 180 * ms, WaveSaw},
			note{noteC4, 360 * ms, WaveSaw},
		)
	case CueVictory:
		chord := beep.Mix(
			withVolume(notes(rate, note{noteC5, 500 * ms, WaveSine}), 0.4),
			withVolume(notes(rate, note{noteE5, 500 * ms, WaveSine}), 0.3),
			withVolume(notes(rate, note{noteG5, 500 * ms, WaveSine}), 0.3),
		)
		return beep.Seq(Synth(CueWordComplete, rate), chord)
	}
	return nil
}
