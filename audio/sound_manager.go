package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sky-dodger/component"
	"github.com/lixenwraith/sky-dodger/parameter"
	"github.com/lixenwraith/sky-dodger/system"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager manages all game audio and doubles as a simulation listener
// Every method is a no-op until Initialize succeeds, the game runs silent without a device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	engineCtrl  *beep.Ctrl
	drone       *DroneGenerator
	initialized bool
	muted       bool
	played      map[string]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		played: make(map[string]int),
	}
}

// Initialize opens the speaker and starts the mixer
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

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.engineCtrl != nil {
		sm.engineCtrl.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.engineCtrl = nil
	sm.drone = nil

	// beep has no speaker close, an empty mixer is silent
	sm.initialized = false
}

// SetMuted silences one-shot effects and pauses the engine drone
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.engineCtrl != nil {
		speaker.Lock()
		sm.engineCtrl.Paused = muted
		speaker.Unlock()
	}
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayCrash plays the impact burst
func (sm *SoundManager) PlayCrash() {
	sm.playOnce("crash", func() beep.Streamer {
		return beep.Take(sampleRate.N(parameter.CrashSoundDuration), NewCrashGenerator(sampleRate, time.Now().UnixNano()))
	})
}

// PlaySpawn plays a short rising chirp
func (sm *SoundManager) PlaySpawn() {
	sm.playOnce("spawn", func() beep.Streamer {
		return NewChirpGeneratorStream(parameter.SpawnStartFreq, parameter.SpawnEndFreq, parameter.SpawnSoundDuration)
	})
}

// PlayRestart plays a rising two-note cue
func (sm *SoundManager) PlayRestart() {
	sm.playOnce("restart", func() beep.Streamer {
		n := sampleRate.N(parameter.RestartNoteDuration)
		return beep.Seq(
			beep.Take(n, NewToneGenerator(sampleRate, parameter.RestartNote1Freq, parameter.RestartNoteDuration)),
			beep.Take(n, NewToneGenerator(sampleRate, parameter.RestartNote2Freq, parameter.RestartNoteDuration)),
		)
	})
}

// StartEngine starts the looping engine drone, no-op if already running
func (sm *SoundManager) StartEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.engineCtrl != nil {
		return
	}

	sm.drone = NewDroneGenerator(sampleRate)
	ctrl := &beep.Ctrl{Streamer: sm.drone, Paused: sm.muted}
	sm.engineCtrl = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopEngine pauses the drone, it stays paused across a crash until StartEngine
func (sm *SoundManager) StopEngine() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.engineCtrl == nil {
		return
	}
	speaker.Lock()
	sm.engineCtrl.Paused = true
	speaker.Unlock()
	sm.engineCtrl = nil
	sm.drone = nil
}

// SetEngineSpeed adjusts the drone pitch, speed normalized to [0, 1]
func (sm *SoundManager) SetEngineSpeed(speed float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.drone != nil {
		sm.drone.SetSpeed(speed)
	}
}

// Played returns how many times a named effect was requested while audible
func (sm *SoundManager) Played(name string) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[name]
}

// OnSpawn implements the simulation listener
func (sm *SoundManager) OnSpawn(component.ObstacleComponent) {
	sm.PlaySpawn()
}

// OnCrash implements the simulation listener
func (sm *SoundManager) OnCrash(system.Collision, int) {
	sm.StopEngine()
	sm.PlayCrash()
}

// OnRestart implements the simulation listener
func (sm *SoundManager) OnRestart() {
	sm.PlayRestart()
	sm.StartEngine()
}

// playOnce counts the request and mixes the streamer when audible
func (sm *SoundManager) playOnce(name string, build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	sm.played[name]++

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// NewChirpGeneratorStream bounds a chirp to its duration
func NewChirpGeneratorStream(from, to float64, d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), NewChirpGenerator(sampleRate, from, to, d))
}
