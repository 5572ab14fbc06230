package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain pulls a streamer to exhaustion and returns the sample count
func drain(s beep.Streamer) int {
	var buf [512][2]float64
	total := 0
	for {
		n, ok := s.Stream(buf[:])
		total += n
		if !ok {
			return total
		}
	}
}

// TestToneDuration verifies the generator emits exactly the requested
// number of samples and then terminates
func TestToneDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 60 * time.Millisecond

	s := NewTone(rate, 880, 880, duration, 5*time.Millisecond, 30*time.Millisecond)

	got := drain(s)
	want := rate.N(duration)
	if got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}

	// Exhausted streamer stays exhausted
	var buf [16][2]float64
	if n, ok := s.Stream(buf[:]); ok || n != 0 {
		t.Errorf("Expected drained streamer to stay done, got n=%d ok=%v", n, ok)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Expected nil error, got %v", err)
	}
}

// TestToneEnvelopeBounds verifies the output stays within [-1, 1] and
// starts silent under the attack ramp
func TestToneEnvelopeBounds(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := NewTone(rate, 440, 110, 100*time.Millisecond, 10*time.Millisecond, 50*time.Millisecond)

	var buf [4096][2]float64
	first := true
	for {
		n, ok := s.Stream(buf[:])
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v < -1 || v > 1 {
				t.Fatalf("Sample %f out of range", v)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatal("Expected identical left/right channels")
			}
		}
		if first && n > 0 {
			if buf[0][0] != 0 {
				t.Errorf("Expected attack ramp to start at silence, got %f", buf[0][0])
			}
			first = false
		}
		if !ok {
			break
		}
	}
}
