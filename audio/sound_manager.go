package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/escape/engine"
	"github.com/lixenwraith/escape/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays short cues on generation turnover
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with linear volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: math.Max(0, math.Min(1, volume)),
	}
}

// Initialize sets up the speaker; safe to call twice
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

// Cleanup drops queued cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayGeneration plays the turnover tick
func (sm *SoundManager) PlayGeneration() {
	sm.play(beep.Take(sampleRate.N(parameter.AudioGenerationDuration),
		NewToneGenerator(sampleRate, parameter.AudioGenerationTone, sm.volume)))
}

// PlaySolved plays the rising sweep for the first completed candidate
func (sm *SoundManager) PlaySolved() {
	sm.play(beep.Take(sampleRate.N(parameter.AudioSolvedDuration),
		NewSweepGenerator(sampleRate, parameter.AudioSolvedBaseTone, parameter.AudioSolvedDuration, sm.volume)))
}

// Cue is an engine.Controller hook
func (sm *SoundManager) Cue(r engine.Report) {
	if r.FirstSolve {
		sm.PlaySolved()
		return
	}
	sm.PlayGeneration()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToneGenerator generates a sine tone with a short fade-in
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

// NewToneGenerator creates a tone generator
func NewToneGenerator(sr beep.SampleRate, freq, volume float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq, volume: volume}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack avoids a click
		envelope := math.Min(t/0.005, 1.0)
		sample := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator rises one octave over its duration and decays
type SweepGenerator struct {
	sr       beep.SampleRate
	base     float64
	volume   float64
	duration float64
	phase    float64
	pos      int
}

// NewSweepGenerator creates a sweep from base to twice base
func NewSweepGenerator(sr beep.SampleRate, base float64, d time.Duration, volume float64) *SweepGenerator {
	return &SweepGenerator{
		sr:       sr,
		base:     base,
		volume:   volume,
		duration: d.Seconds(),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(t/g.duration, 1.0)

		freq := g.base * (1 + progress)
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := 1.0 - progress
		sample := g.volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
