package systems

import (
	"bytes"
	"testing"

	cfg "github.com/palegrove/cardfan/config"
)

// TestEffectPCM verifies every effect renders nonempty whole-frame stereo
// PCM and the cache hands back identical bytes on reuse.
func TestEffectPCM(t *testing.T) {
	ids := []cfg.SoundID{cfg.SoundFlip, cfg.SoundFocus, cfg.SoundDeal, cfg.SoundDrop}
	for _, id := range ids {
		first := sfxPCM(id)
		if len(first) == 0 {
			t.Fatalf("Expected PCM for sound %d", id)
		}
		if len(first)%4 != 0 {
			t.Errorf("Expected whole 16-bit stereo frames for sound %d, got %d bytes", id, len(first))
		}
		if again := sfxPCM(id); !bytes.Equal(first, again) {
			t.Errorf("Expected identical PCM from the cache for sound %d", id)
		}
	}
}

// TestEffectPCMStereo verifies both channels carry the same signal.
func TestEffectPCMStereo(t *testing.T) {
	pcm := sfxPCM(cfg.SoundFocus)
	for i := 0; i+3 < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("Expected mirrored channels at frame %d", i/4)
		}
	}
}

// TestQueuedSoundsStayQueued verifies queuing sounds never opens the audio
// device; only the audio system drains the queue.
func TestQueuedSoundsStayQueued(t *testing.T) {
	tt := newTestTable(3)

	PlaySound(tt.ecs, cfg.SoundFlip)
	PlaySound(tt.ecs, cfg.SoundFocus)

	audioData := GetOrCreateAudio(tt.ecs)
	if got := len(audioData.PendingSFX); got != 2 {
		t.Fatalf("Expected 2 queued sounds, got %d", got)
	}
	if audioData.Context != nil {
		t.Error("Expected no audio device from queuing alone")
	}
}

// TestMutedQueueDrains verifies muting drops queued sounds without touching
// the device.
func TestMutedQueueDrains(t *testing.T) {
	tt := newTestTable(3)
	st := GetOrCreateSettings(tt.ecs)
	st.Muted = true

	PlaySound(tt.ecs, cfg.SoundDeal)
	UpdateAudio(tt.ecs)

	audioData := GetOrCreateAudio(tt.ecs)
	if got := len(audioData.PendingSFX); got != 0 {
		t.Errorf("Expected the muted queue drained, got %d pending", got)
	}
	if audioData.Context != nil {
		t.Error("Expected no audio device while muted")
	}
}
