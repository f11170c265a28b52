// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Track is one mixer input together with its controls.
type Track struct {
	Buffer *Buffer
	Volume int // 0..100
	Pan    int // -PanLimit..PanLimit
}

// Validate checks the buffer and both controls of t.
func (t Track) Validate() error {
	if isEmpty(t.Buffer) {
		return ErrEmptyInput
	}
	if err := ValidateVolume(t.Volume); err != nil {
		return err
	}
	return ValidatePan(t.Pan)
}

// Mixer combines two tracks into one stereo buffer. It holds no state
// between calls and is safe for concurrent use.
type Mixer struct {
	pan PanOptions
}

// Option configures a Mixer.
type Option func(*Mixer)

// WithNormalize enables per-channel normalisation after panning.
func WithNormalize(on bool) Option {
	return func(m *Mixer) {
		m.pan.Normalize = on
	}
}

func NewMixer(opts ...Option) *Mixer {
	m := &Mixer{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PanOptions reports the pan configuration the mixer applies.
func (m *Mixer) PanOptions() PanOptions { return m.pan }

// Mix runs each track through gain and pan, pads the shorter one with
// silence and overlays the two. The result is stereo and as long as the
// longer track.
func (m *Mixer) Mix(a, b Track) (*Buffer, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("track A: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("track B: %w", err)
	}
	if a.Buffer.sampleRate != b.Buffer.sampleRate {
		return nil, fmt.Errorf("track A %d Hz, track B %d Hz: %w",
			a.Buffer.sampleRate, b.Buffer.sampleRate, ErrSampleRateMismatch)
	}

	pa, err := m.process(a)
	if err != nil {
		return nil, fmt.Errorf("track A: %w", err)
	}
	pb, err := m.process(b)
	if err != nil {
		return nil, fmt.Errorf("track B: %w", err)
	}

	pa, pb, err = AlignLengths(pa, pb)
	if err != nil {
		return nil, err
	}

	mixed, err := Overlay(pa, pb)
	if err != nil {
		// Alignment guarantees matching layouts, reaching this is a bug
		return nil, fmt.Errorf("mixing aligned tracks: %w", err)
	}
	return mixed, nil
}

func (m *Mixer) process(t Track) (*Buffer, error) {
	gained, err := ApplyGain(t.Buffer, t.Volume)
	if err != nil {
		return nil, err
	}
	return ApplyPan(gained, t.Pan, m.pan)
}

var defaultMixer = NewMixer()

// Mix mixes two buffers with the default Mixer.
func Mix(a *Buffer, volA, panA int, b *Buffer, volB, panB int) (*Buffer, error) {
	return defaultMixer.Mix(
		Track{Buffer: a, Volume: volA, Pan: panA},
		Track{Buffer: b, Volume: volB, Pan: panB},
	)
}
