package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager owns the speaker and mixes the game's two effects.
// Initialization failure is non-fatal; the game runs silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds. beep exposes no speaker Close; clearing
// the mixer is enough to avoid audio artifacts on exit.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// PlayEat plays the two-note chirp for a food pickup
func (sm *SoundManager) PlayEat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	chirp := beep.Seq(
		NewTone(sampleRate, parameter.EatSoundFreqLow, parameter.EatSoundFreqLow,
			parameter.EatSoundNoteDuration, parameter.EatSoundAttack, parameter.EatSoundRelease),
		NewTone(sampleRate, parameter.EatSoundFreqHigh, parameter.EatSoundFreqHigh,
			parameter.EatSoundNoteDuration, parameter.EatSoundAttack, parameter.EatSoundRelease),
	)
	sm.mixer.Add(chirp)
}

// PlayGameOver plays the descending end-of-game sweep
func (sm *SoundManager) PlayGameOver() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sweep := NewTone(sampleRate, parameter.GameOverSoundFreqHi, parameter.GameOverSoundFreqLo,
		parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease)
	sm.mixer.Add(sweep)
}
