package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SoundType identifies a game sound.
type SoundType int

const (
	SoundFlap SoundType = iota
	SoundScore
	SoundHit
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

const envelopeAttack = 10 * time.Millisecond

// Durations of the generated sounds.
const (
	FlapDuration     = 100 * time.Millisecond
	HitDuration      = 100 * time.Millisecond
	GameOverDuration = 500 * time.Millisecond
)

// Score arpeggio: C5, E5, G5 started 50ms apart.
var scoreNotes = []struct {
	freq     float64
	delay    time.Duration
	duration time.Duration
}{
	{523, 0, 100 * time.Millisecond},
	{659, 50 * time.Millisecond, 100 * time.Millisecond},
	{784, 100 * time.Millisecond, 200 * time.Millisecond},
}

// CreateFlapSound is a short square chirp falling from 400Hz to 200Hz.
func CreateFlapSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(400, 200, FlapDuration, WaveSquare, rate)
	return NewPluck(osc, 0.3, FlapDuration, envelopeAttack, rate)
}

// CreateScoreSound is a rising three-note sine arpeggio.
func CreateScoreSound(rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(scoreNotes))
	for _, note := range scoreNotes {
		tone, err := generators.SineTone(rate, note.freq)
		if err != nil {
			// Sample rate too low for the note
			continue
		}
		shaped := NewPluck(beep.Take(rate.N(note.duration), tone), 0.2, note.duration, envelopeAttack, rate)
		voices = append(voices, beep.Seq(beep.Silence(rate.N(note.delay)), shaped))
	}
	return beep.Mix(voices...)
}

// CreateHitSound is a burst of fading noise.
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(NewNoiseBurst(HitDuration, rate, time.Now().UnixNano()), 0.5)
}

// CreateGameOverSound is a long sawtooth falling from 400Hz to 100Hz.
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(400, 100, GameOverDuration, WaveSaw, rate)
	return NewPluck(osc, 0.4, GameOverDuration, envelopeAttack, rate)
}

// GetSoundEffect returns the streamer for the given sound at master volume.
func GetSoundEffect(st SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch st {
	case SoundFlap:
		s = CreateFlapSound(rate)
	case SoundScore:
		s = CreateScoreSound(rate)
	case SoundHit:
		s = CreateHitSound(rate)
	case SoundGameOver:
		s = CreateGameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
