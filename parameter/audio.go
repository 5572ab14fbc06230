package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100
)

// AudioBufferDuration determines speaker latency
const AudioBufferDuration = 100 * time.Millisecond

// Eat Sound (short two-note chirp)
const (
	EatSoundNoteDuration = 60 * time.Millisecond
	EatSoundAttack       = 5 * time.Millisecond
	EatSoundRelease      = 30 * time.Millisecond
	EatSoundFreqLow      = 880.0
	EatSoundFreqHigh     = 1320.0
)

// Game Over Sound (descending sweep)
const (
	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
	GameOverSoundFreqHi   = 440.0
	GameOverSoundFreqLo   = 110.0
)
