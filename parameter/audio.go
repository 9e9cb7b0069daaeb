package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer, trades latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond
)

// Crash Sound
const (
	CrashSoundDuration  = 700 * time.Millisecond
	CrashSoundDecayRate = 5.0  // envelope exp(-t*rate)
	CrashRumbleFreq     = 55.0 // Hz
)

// Spawn Chirp
const (
	SpawnSoundDuration = 90 * time.Millisecond
	SpawnStartFreq     = 600.0 // Hz
	SpawnEndFreq       = 1200.0
)

// Restart Two-Tone
const (
	RestartNoteDuration = 120 * time.Millisecond
	RestartNote1Freq    = 523.25 // C5
	RestartNote2Freq    = 783.99 // G5
)

// Engine Drone (continuous)
const (
	EngineDroneFreq      = 70.0 // Hz
	EngineDroneVolume    = 0.08
	EngineWobbleRate     = 6.0 // Hz
	EngineWobbleFraction = 0.05
)
