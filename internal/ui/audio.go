package ui

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/hailam/chessview/internal/assets"
)

// Cue names a sound the viewer plays.
type Cue int

const (
	CueMove   Cue = iota // a move was pushed
	CueReject            // a destination click was discarded
	CueToggle            // sound was switched back on
)

var voices = map[Cue]assets.Voice{
	CueMove:   {Freq: 440, Duration: 0.08, Gain: 0.3, Decay: 30},
	CueReject: {Freq: 150, Duration: 0.1, Gain: 0.25, Decay: 10, Square: true},
	CueToggle: {Freq: 660, Duration: 0.05, Gain: 0.2, Decay: 45},
}

// AudioManager plays the viewer's cues. Only one may exist per process.
type AudioManager struct {
	context *audio.Context
	cues    map[Cue][]byte
	enabled bool
}

// NewAudioManager renders every cue up front.
func NewAudioManager(enabled bool) *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(assets.SampleRate),
		cues:    make(map[Cue][]byte, len(voices)),
		enabled: enabled,
	}
	for cue, v := range voices {
		am.cues[cue] = v.PCM()
	}
	return am
}

// Play starts cue without waiting for it. Overlapping cues mix.
func (am *AudioManager) Play(cue Cue) {
	if !am.enabled {
		return
	}
	if data, ok := am.cues[cue]; ok {
		am.context.NewPlayerFromBytes(data).Play()
	}
}

// SetEnabled follows the sound preference. Turning sound on is confirmed
// with a short chirp.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
	if enabled {
		am.Play(CueToggle)
	}
}
