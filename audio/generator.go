package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone generates a sine sweep with a linear attack/release envelope
type tone struct {
	startFreq float64
	endFreq   float64
	phase     float64
	position  int
	duration  int
	attack    int
	release   int
	rate      beep.SampleRate
}

// NewTone returns a finite streamer sweeping from startFreq to endFreq
// over duration, shaped by a linear attack/release envelope. Equal
// frequencies produce a plain note.
func NewTone(rate beep.SampleRate, startFreq, endFreq float64, duration, attack, release time.Duration) beep.Streamer {
	return &tone{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		attack:    rate.N(attack),
		release:   rate.N(release),
		rate:      rate,
	}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		val := math.Sin(2 * math.Pi * o.phase)

		// Envelope shaping
		gain := 1.0
		if o.attack > 0 && o.position < o.attack {
			gain = float64(o.position) / float64(o.attack)
		} else if rem := o.duration - o.position; o.release > 0 && rem < o.release {
			gain = float64(rem) / float64(o.release)
		}
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }
