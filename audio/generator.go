package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/sky-dodger/parameter"
)

// CrashGenerator is a noise burst over a low rumble with exponential decay
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{sr: sr, seed: seed}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * parameter.CrashSoundDecayRate)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*parameter.CrashRumbleFreq*t)

		sample := envelope * (0.3*noise + rumble)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}

// ChirpGenerator sweeps linearly between two frequencies over a fixed length
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to, length: max(sr.N(d), 1)}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the sweep click-free
		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		sample := 0.12 * (1 - progress) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// ToneGenerator is a sine with a short linear fade in and out
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, length: max(sr.N(d), 1)}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	fade := max(g.length/10, 1)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if g.pos < fade {
			envelope = float64(g.pos) / float64(fade)
		} else if remaining := g.length - g.pos; remaining < fade {
			envelope = math.Max(float64(remaining)/float64(fade), 0)
		}

		sample := 0.15 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// DroneGenerator is the continuous engine hum, pitch wobbles slightly with speed
type DroneGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64

	// float64 bits of speed in [0, 1], read on the speaker goroutine
	speed atomic.Uint64
}

func NewDroneGenerator(sr beep.SampleRate) *DroneGenerator {
	return &DroneGenerator{sr: sr}
}

// SetSpeed sets the normalized airspeed, clamped to [0, 1]
func (g *DroneGenerator) SetSpeed(v float64) {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	g.speed.Store(math.Float64bits(math.Min(v, 1)))
}

func (g *DroneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	speed := math.Float64frombits(g.speed.Load())
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		wobble := 1 + parameter.EngineWobbleFraction*math.Sin(2*math.Pi*parameter.EngineWobbleRate*t)
		freq := parameter.EngineDroneFreq * (1 + speed) * wobble

		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}

		// Fundamental plus a soft second harmonic
		sample := parameter.EngineDroneVolume * (math.Sin(2*math.Pi*g.phase) + 0.3*math.Sin(4*math.Pi*g.phase))
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *DroneGenerator) Err() error {
	return nil
}
