package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns every sample. limit guards
// against streamers that never finish.
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("streamer did not finish within %d samples", limit)
	return nil
}

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

func TestSweepLength(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		wave     WaveType
	}{
		{"short square", 100 * time.Millisecond, WaveSquare},
		{"long saw", 500 * time.Millisecond, WaveSaw},
		{"sine", 50 * time.Millisecond, WaveSine},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSweep(400, 200, tc.duration, tc.wave, testRate)
			out := drain(t, s, testRate.N(time.Second))
			if len(out) != testRate.N(tc.duration) {
				t.Errorf("Expected %d samples, got %d", testRate.N(tc.duration), len(out))
			}
			if s.Err() != nil {
				t.Errorf("Expected no error, got: %v", s.Err())
			}
		})
	}
}

func TestSweepSquareValues(t *testing.T) {
	out := drain(t, NewSweep(400, 200, 10*time.Millisecond, WaveSquare, testRate), testRate.N(time.Second))

	for i, s := range out {
		if s[0] != -1.0 && s[0] != 1.0 {
			t.Fatalf("Square sample %d should be -1.0 or 1.0, got %f", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("Sample %d differs between channels", i)
		}
	}
}

func TestSweepFrequencyGlide(t *testing.T) {
	s := NewSweep(400, 100, time.Second, WaveSaw, testRate).(*sweep)

	if f := s.freq(); f != 400 {
		t.Errorf("Start frequency = %f, expected 400", f)
	}
	s.position = s.total / 2
	if f := s.freq(); math.Abs(f-200) > 0.01 {
		t.Errorf("Midpoint frequency = %f, expected 200 (geometric mean)", f)
	}
	s.position = s.total
	if f := s.freq(); math.Abs(f-100) > 0.01 {
		t.Errorf("End frequency = %f, expected 100", f)
	}
}

func TestPluckEnvelope(t *testing.T) {
	p := NewPluck(NewSweep(300, 300, 100*time.Millisecond, WaveSquare, testRate), 0.3, 100*time.Millisecond, 10*time.Millisecond, testRate).(*pluck)

	if g := p.gain(); g != 0 {
		t.Errorf("Gain at start = %f, expected 0", g)
	}
	p.position = p.attack
	if g := p.gain(); math.Abs(g-0.3) > 1e-9 {
		t.Errorf("Gain after attack = %f, expected 0.3", g)
	}
	p.position = p.total
	if g := p.gain(); math.Abs(g-silenceFloor) > 1e-9 {
		t.Errorf("Gain at end = %f, expected %f", g, silenceFloor)
	}

	p.position = 0
	out := drain(t, p, testRate.N(time.Second))
	if m := peak(out); m > 0.3+1e-9 {
		t.Errorf("Peak %f exceeds envelope peak 0.3", m)
	}
}

func TestNoiseBurst(t *testing.T) {
	a := drain(t, NewNoiseBurst(HitDuration, testRate, 7), testRate.N(time.Second))
	b := drain(t, NewNoiseBurst(HitDuration, testRate, 7), testRate.N(time.Second))

	if len(a) != testRate.N(HitDuration) {
		t.Fatalf("Expected %d samples, got %d", testRate.N(HitDuration), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed diverged at sample %d", i)
		}
	}

	head, tail := peak(a[:len(a)/10]), peak(a[len(a)*9/10:])
	if tail >= head {
		t.Errorf("Noise should fade out: head peak %f, tail peak %f", head, tail)
	}
	if head > 1 {
		t.Errorf("Noise out of range: %f", head)
	}
}

func TestNewVolume(t *testing.T) {
	tests := []struct {
		vol      float64
		expected float64
	}{
		{1, 1},
		{0.5, 0.5},
		{0, 0},
	}

	for _, tc := range tests {
		src := NewSweep(100, 100, 10*time.Millisecond, WaveSquare, testRate)
		out := drain(t, newVolume(src, tc.vol), testRate.N(time.Second))
		if m := peak(out); math.Abs(m-tc.expected) > 1e-9 {
			t.Errorf("Volume %f: peak %f, expected %f", tc.vol, m, tc.expected)
		}
	}
}
