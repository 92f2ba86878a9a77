// Package audio synthesizes the short feedback tones played on movement.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate every tone is rendered at
const SampleRate = beep.SampleRate(44100)

// Tone names a feedback sound
type Tone int

const (
	ToneMove Tone = iota
	ToneWall
	ToneWin
)

func (t Tone) String() string {
	switch t {
	case ToneMove:
		return "move"
	case ToneWall:
		return "wall"
	case ToneWin:
		return "win"
	}
	return "unknown"
}

// ToneSpec describes how a tone sounds
type ToneSpec struct {
	Frequency float64
	Gain      float64
	Duration  time.Duration
}

const (
	toneDuration = 100 * time.Millisecond
	toneAttack   = 5 * time.Millisecond
	toneRelease  = 30 * time.Millisecond
)

var toneSpecs = map[Tone]ToneSpec{
	ToneMove: {Frequency: 440, Gain: 0.1, Duration: toneDuration},
	ToneWall: {Frequency: 200, Gain: 0.1, Duration: toneDuration},
	ToneWin:  {Frequency: 660, Gain: 0.2, Duration: toneDuration},
}

// Spec returns the sound of a tone. Unknown tones get the move sound.
func (t Tone) Spec() ToneSpec {
	if s, ok := toneSpecs[t]; ok {
		return s
	}
	return toneSpecs[ToneMove]
}

// sine is a fixed length sine oscillator
type sine struct {
	freq   float64
	phase  float64
	remain int
	rate   beep.SampleRate
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	if s.remain <= 0 {
		return 0, false
	}
	for i := range samples {
		if s.remain == 0 {
			return i, true
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.remain--
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// envelope fades a stream in and out to avoid clicks
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream by a linear gain; zero gain is silent.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// NewToneStreamer renders a tone as a finite beep stream at SampleRate.
func NewToneStreamer(t Tone) beep.Streamer {
	spec := t.Spec()
	total := SampleRate.N(spec.Duration)
	osc := &sine{freq: spec.Frequency, remain: total, rate: SampleRate}
	shaped := &envelope{
		streamer: osc,
		attack:   SampleRate.N(toneAttack),
		release:  SampleRate.N(toneRelease),
		total:    total,
	}
	return newVolume(shaped, spec.Gain)
}
