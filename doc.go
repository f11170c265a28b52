// SPDX-License-Identifier: EPL-2.0

// Package audmix mixes two audio tracks into one stereo result.
//
// Each track passes through the same pipeline before the two are summed:
//
//	Gain -> Pan -> Alignment -> Overlay
//
// The processing lives in the audio subpackage and works on immutable
// audio.Buffer values. This package ties it to the file formats under
// formats/ so callers can mix files directly:
//
//	mixed, err := audmix.MixFiles("voice.wav", "music.mp3",
//	    audmix.Controls{Volume: 100, Pan: -30},
//	    audmix.Controls{Volume: 40, Pan: 30},
//	)
//	if err != nil {
//	    return err
//	}
//	err = audmix.ExportFile("out.wav", mixed)
//
// # Supported Formats
//
// DefaultRegistry decodes:
//   - WAV (8/16/24/32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (8/16/24/32-bit PCM) via formats/aiff
//   - FLAC via formats/flac
//
// Export writes WAV only.
//
// # Controls
//
// Volume runs from 0 to 100 and maps linearly onto -20..0 dB, so 0 is
// quiet but not silent. Pan runs from -100 (hard left) to 100 (hard right);
// the opposite channel is attenuated by up to 20 dB.
//
// Both tracks must share a sample rate. Resampling is left to the caller.
//
// See the player, session and segment packages for playback, a stateful
// two-slot mixer and the random segment mode.
package audmix
