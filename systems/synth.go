package systems

import (
	"math"
	"math/rand"

	cfg "github.com/palegrove/cardfan/config"
)

var sfxCache = map[cfg.SoundID][]byte{}

// sfxPCM returns one effect as 16-bit stereo PCM, rendering it on first
// use. Fixed seeds keep the noise-based effects identical between runs.
func sfxPCM(id cfg.SoundID) []byte {
	if pcm, ok := sfxCache[id]; ok {
		return pcm
	}
	var pcm []byte
	switch id {
	case cfg.SoundFlip:
		pcm = renderFlip()
	case cfg.SoundFocus:
		pcm = renderFocus()
	case cfg.SoundDeal:
		pcm = renderDeal()
	case cfg.SoundDrop:
		pcm = renderDrop()
	}
	sfxCache[id] = pcm
	return pcm
}

// renderFlip is a noise snap with a click on top, a card edge let go
// against the felt.
func renderFlip() []byte {
	sr := float64(cfg.Audio.SampleRate)
	n := int(sr * 0.09)
	rng := rand.New(rand.NewSource(11))
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(n)
		env := math.Exp(-6 * t)
		click := math.Sin(2*math.Pi*900*float64(i)/sr) * math.Exp(-40*t)
		out[i] = (rng.Float64()*2-1)*0.7*env + click*0.5
	}
	return packStereo(out)
}

// renderFocus is a short blip with a slight upward bend.
func renderFocus() []byte {
	sr := float64(cfg.Audio.SampleRate)
	n := int(sr * 0.07)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		freq := 620 + 160*t
		phase += 2 * math.Pi * freq / sr
		out[i] = math.Sin(phase) * math.Exp(-8*t) * 0.8
	}
	return packStereo(out)
}

// renderDeal is a swelling whoosh for the cards sliding in.
func renderDeal() []byte {
	sr := float64(cfg.Audio.SampleRate)
	n := int(sr * 0.25)
	rng := rand.New(rand.NewSource(23))
	out := make([]float64, n)
	prev := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		env := math.Sin(math.Pi * t)
		// One-pole lowpass keeps the whoosh breathy instead of hissy.
		prev += 0.18 * ((rng.Float64()*2 - 1) - prev)
		out[i] = prev * env * 1.6
	}
	return packStereo(out)
}

// renderDrop is a low sine with a downward pitch bend, the card landing on
// the slot.
func renderDrop() []byte {
	sr := float64(cfg.Audio.SampleRate)
	n := int(sr * 0.16)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(n)
		freq := 220 - 90*t
		phase += 2 * math.Pi * freq / sr
		out[i] = math.Sin(phase) * math.Exp(-5*t) * 0.9
	}
	return packStereo(out)
}

// packStereo clamps and interleaves mono samples into 16-bit LE stereo.
func packStereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		v := int16(s * 32767)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}
