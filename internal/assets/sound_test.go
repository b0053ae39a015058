package assets

import (
	"encoding/binary"
	"testing"
)

func TestVoicePCMLength(t *testing.T) {
	v := Voice{Freq: 440, Duration: 0.1, Gain: 0.3, Decay: 30}
	pcm := v.PCM()
	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("frame %d: left and right differ", i/4)
		}
	}
}

func TestVoicePCMEnvelope(t *testing.T) {
	v := Voice{Freq: 150, Duration: 0.1, Gain: 0.25, Decay: 10, Square: true}
	pcm := v.PCM()

	peak := func(from, to int) int {
		m := 0
		for i := from; i < to; i += 4 {
			s := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
			if s < 0 {
				s = -s
			}
			if s > m {
				m = s
			}
		}
		return m
	}
	head := peak(0, len(pcm)/4)
	tail := peak(len(pcm)*3/4, len(pcm))
	if head == 0 {
		t.Fatal("silent voice")
	}
	if tail >= head {
		t.Errorf("envelope does not decay: head %d tail %d", head, tail)
	}
	// gain 0.25 of a 0.7 square wave stays well inside int16
	if head > 32767/4 {
		t.Errorf("peak %d exceeds gain", head)
	}
}

func TestVoiceZeroDuration(t *testing.T) {
	if pcm := (Voice{Freq: 440}).PCM(); pcm != nil {
		t.Errorf("PCM = %d bytes, want nil", len(pcm))
	}
}
