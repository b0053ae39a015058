package assets

import (
	"encoding/binary"
	"math"
)

// SampleRate is the PCM rate of every synthesized sound.
const SampleRate = 44100

// Voice is the recipe for one procedurally synthesized sound.
type Voice struct {
	Freq     float64 // Hz
	Duration float64 // seconds
	Gain     float64
	Decay    float64 // exponential envelope rate
	Square   bool
}

// PCM renders the voice as 16-bit little-endian stereo at SampleRate.
func (v Voice) PCM() []byte {
	n := int(SampleRate * v.Duration)
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		wave := math.Sin(2 * math.Pi * v.Freq * t)
		if v.Square {
			wave = math.Copysign(0.7, wave)
		} else {
			// octave partial gives the click some body
			wave += 0.3 * math.Sin(4*math.Pi*v.Freq*t)
		}
		s := wave * math.Exp(-t*v.Decay) * v.Gain
		s = math.Max(-1, math.Min(1, s))
		sample := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
