package cue

import (
	"encoding/binary"
	"math"
	"time"
)

// Audio parameters for synthesized cues.
const (
	SampleRate   = 44100
	ChannelCount = 1
)

// Tone describes a decaying sine chime.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
	Volume    float64 // 0..1
}

// DefaultTone is a short, quiet high ping.
var DefaultTone = Tone{
	Frequency: 1318.5, // E6
	Duration:  120 * time.Millisecond,
	Volume:    0.25,
}

// PCM renders the tone as mono signed 16-bit little-endian samples.
func (t Tone) PCM() []byte {
	n := int(math.Round(t.Duration.Seconds() * SampleRate))
	if n <= 0 {
		return nil
	}
	vol := math.Max(0, math.Min(1, t.Volume))

	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		pos := float64(i) / SampleRate
		// Exponential decay to about -40 dB at the end.
		env := math.Exp(-4.6 * float64(i) / float64(n))
		s := math.Sin(2*math.Pi*t.Frequency*pos) * env * vol
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(s*math.MaxInt16)))
	}
	return out
}
