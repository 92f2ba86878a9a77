package audio

// TonePlayer plays feedback tones. Implementations must not block the caller.
type TonePlayer interface {
	PlayTone(t Tone)
}

// Silent discards every tone
type Silent struct{}

// PlayTone does nothing
func (Silent) PlayTone(Tone) {}
