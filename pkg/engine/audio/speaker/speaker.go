// Package speaker plays tones through the system audio device. It is the only
// package that links the platform sound stack, so only main imports it.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"mazeadventure/pkg/engine/audio"
)

var _ audio.TonePlayer = (*Player)(nil)

// Player mixes tones onto the speaker
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// New opens the audio device and starts the mixer.
func New() (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if err := beepspeaker.Init(audio.SampleRate, audio.SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	beepspeaker.Play(p.mixer)
	return p, nil
}

// PlayTone queues a tone on the mixer. Overlapping tones are mixed.
func (p *Player) PlayTone(t audio.Tone) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	s := audio.NewToneStreamer(t)
	beepspeaker.Lock()
	p.mixer.Add(s)
	beepspeaker.Unlock()
}

// Close stops playback
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	beepspeaker.Lock()
	p.mixer.Clear()
	beepspeaker.Unlock()
	beepspeaker.Close()
}
