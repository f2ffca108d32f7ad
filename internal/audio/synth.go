package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// silenceFloor is the gain an exponential decay ends on; zero is unreachable.
const silenceFloor = 0.001

// sweep is an oscillator whose frequency glides exponentially from one
// value to another over its lifetime.
type sweep struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
}

// NewSweep creates an oscillator gliding from one frequency to another.
// Equal frequencies give a plain tone.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(duration),
	}
}

func (s *sweep) freq() float64 {
	if s.total == 0 || s.from <= 0 || s.to <= 0 {
		return s.from
	}
	progress := float64(s.position) / float64(s.total)
	return s.from * math.Pow(s.to/s.from, progress)
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (s.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq() / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// pluck shapes a stream with a short linear attack up to peak, then an
// exponential decay to silenceFloor at the end of the duration.
type pluck struct {
	streamer beep.Streamer
	peak     float64
	attack   int
	total    int
	position int
}

// NewPluck wraps s in an attack/exponential-decay envelope.
func NewPluck(s beep.Streamer, peak float64, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	if att > total {
		att = total
	}
	return &pluck{streamer: s, peak: peak, attack: att, total: total}
}

func (p *pluck) gain() float64 {
	if p.position < p.attack {
		return p.peak * float64(p.position) / float64(p.attack)
	}
	decay := p.total - p.attack
	if decay <= 0 {
		return p.peak
	}
	progress := float64(p.position-p.attack) / float64(decay)
	return p.peak * math.Pow(silenceFloor/p.peak, progress)
}

func (p *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if p.position >= p.total {
			return i, i > 0
		}
		g := p.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		p.position++
	}
	return n, ok
}

func (p *pluck) Err() error { return p.streamer.Err() }

// noiseBurst is white noise fading out quadratically.
type noiseBurst struct {
	rng      *rand.Rand
	total    int
	position int
}

// NewNoiseBurst creates a decaying noise burst. The seed makes it repeatable.
func NewNoiseBurst(duration time.Duration, rate beep.SampleRate, seed int64) beep.Streamer {
	return &noiseBurst{
		rng:   rand.New(rand.NewSource(seed)),
		total: rate.N(duration),
	}
}

func (b *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, i > 0
		}
		fade := 1 - float64(b.position)/float64(b.total)
		val := (b.rng.Float64()*2 - 1) * fade * fade

		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *noiseBurst) Err() error { return nil }

// newVolume scales a stream linearly.
// math.Log2(0) is -Inf, so zero volume is handled as silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
