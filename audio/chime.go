// Package audio plays the optional clock chime through the system speaker.
// Everything here is best-effort: a machine without audio still gets a
// working clock.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	tickFreq  = 880.0 // minute blip
	chimeLow  = 660.0 // hour chime, first note
	chimeHigh = 990.0 // hour chime, second note

	tickDuration  = 60 * time.Millisecond
	chimeDuration = 180 * time.Millisecond
)

// Chime generates short sine tones on minute and hour rollovers
type Chime struct {
	ready bool
}

// NewChime initializes the speaker. Failure is non-fatal: the returned
// Chime simply stays silent and the error is informational.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, err
	}
	return &Chime{ready: true}, nil
}

// Ready reports whether the speaker opened
func (c *Chime) Ready() bool {
	return c.ready
}

// Tick plays the short minute blip
func (c *Chime) Tick() {
	if !c.ready {
		return
	}
	c.play(tone(tickFreq, tickDuration))
}

// Hour plays a rising two-note chime
func (c *Chime) Hour() {
	if !c.ready {
		return
	}
	c.play(beep.Seq(
		tone(chimeLow, chimeDuration),
		tone(chimeHigh, chimeDuration),
	))
}

func (c *Chime) play(s beep.Streamer) {
	speaker.Play(s)
}

// Close releases the speaker
func (c *Chime) Close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

// tone builds a fixed-length sine streamer; generator errors only happen
// for out-of-range frequencies, which the constants above never are.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}
