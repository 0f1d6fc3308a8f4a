package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioGenerationTone is the frequency of the per-generation tick
	AudioGenerationTone = 660.0

	// AudioGenerationDuration is the length of the per-generation tick
	AudioGenerationDuration = 40 * time.Millisecond

	// AudioSolvedBaseTone is the starting frequency of the first-solve sweep
	AudioSolvedBaseTone = 440.0

	// AudioSolvedDuration is the length of the first-solve sweep
	AudioSolvedDuration = 400 * time.Millisecond

	// AudioVolume is the linear amplitude of generated tones (0-1)
	AudioVolume = 0.25
)
