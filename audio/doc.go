// SPDX-License-Identifier: EPL-2.0

// Package audio provides the buffer type and the two-track mixing pipeline.
//
// This package contains:
//   - Buffer, an immutable block of decoded PCM audio
//   - the Gain, Pan, Alignment and Overlay stages
//   - Mixer, which chains the stages for two tracks
//   - Source, Decoder and Registry for getting decoded audio into a Buffer
//
// # Buffers
//
// A Buffer holds interleaved float32 samples in the range [-1.0, 1.0],
// one or two channels, a sample rate and the SampleFormat it came from:
//
//	buf, err := audio.ReadAll(source)
//	fmt.Println(buf.Frames(), buf.Channels(), buf.Duration())
//
// Buffers are never modified. Every stage returns a new Buffer, so the
// decoded tracks can be mixed again with different controls.
//
// # Gain
//
// ApplyGain maps a 0..100 volume to an attenuation that is linear in dB:
// 100 leaves the audio untouched and 0 removes GainRangeDB (20 dB).
//
//	quieter, err := audio.ApplyGain(buf, 50) // -10 dB
//
// # Pan
//
// ApplyPan takes a value in [-100, 100]. Negative values attenuate the
// right channel, positive values the left, by up to PanRangeDB (20 dB).
// The other side is never touched. Mono input is duplicated to stereo
// first, so the result is always stereo.
//
//	right, err := audio.ApplyPan(buf, 100, audio.PanOptions{})
//
// PanOptions.Normalize additionally brings each channel to its own peak.
//
// # Alignment and Overlay
//
// AlignLengths pads the shorter buffer with silence; Overlay adds two
// aligned buffers sample by sample and saturates the result to the
// representable range of the wider SampleFormat:
//
//	a, b, _ = audio.AlignLengths(a, b)
//	sum, err := audio.Overlay(a, b)
//
// # Mixing
//
// Mix runs the whole pipeline for two tracks:
//
//	mixed, err := audio.Mix(trackA, 100, -30, trackB, 80, 40)
//
// A Mixer built with NewMixer carries options such as WithNormalize. It
// holds no state between calls and may be shared between goroutines.
//
// # Error Handling
//
// Errors are package sentinels wrapped with context; test them with
// errors.Is:
//
//	if errors.Is(err, audio.ErrInvalidControlRange) {
//	    // volume or pan outside its bounds
//	}
//
// Source implementations return io.EOF when no more data is available.
package audio
