// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ik5/audmix/internal/audiotest"
)

func TestMix_SilenceOfDifferentLengths(t *testing.T) {
	t.Parallel()

	rate := 44100
	a, _ := Silence(rate, 2, Int16, FramesFor(rate, 2000*time.Millisecond))
	b, _ := Silence(rate, 2, Int16, FramesFor(rate, 1000*time.Millisecond))

	got, err := Mix(a, 100, 0, b, 100, 0)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if got.Duration() != 2*time.Second {
		t.Errorf("Duration() = %v, want 2s", got.Duration())
	}
	if got.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", got.Channels())
	}
	if got.Peak() != 0 {
		t.Errorf("Peak() = %v, want silence", got.Peak())
	}
}

func TestMix_PipelineOrder(t *testing.T) {
	t.Parallel()

	// Track A: mono 0.5, -10 dB, full right. Track B: stereo 0.2, full volume, centred.
	a := mustBuffer(t, 8000, 1, Int16, audiotest.Constant(1, 100, 0.5))
	b := mustBuffer(t, 8000, 2, Int16, audiotest.Stereo(40, 0.2, 0.2))

	got, err := Mix(a, 50, 100, b, 100, 0)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if got.Frames() != 100 || got.Channels() != 2 {
		t.Fatalf("layout = %d frames %d ch, want 100 frames 2 ch", got.Frames(), got.Channels())
	}

	gained := 0.5 * DBToLinear(-10)
	wantLeft := gained*DBToLinear(-20) + 0.2
	wantRight := gained + 0.2

	if l := float64(got.Sample(0, 0)); !approx(l, wantLeft, 1e-5) {
		t.Errorf("left while both play = %v, want %v", l, wantLeft)
	}
	if r := float64(got.Sample(0, 1)); !approx(r, wantRight, 1e-5) {
		t.Errorf("right while both play = %v, want %v", r, wantRight)
	}

	// After track B ends only track A is heard
	if r := float64(got.Sample(99, 1)); !approx(r, gained, 1e-5) {
		t.Errorf("right after B ends = %v, want %v", r, gained)
	}
}

func TestMix_InputsUntouched(t *testing.T) {
	t.Parallel()

	a := mustBuffer(t, 8000, 2, Int16, audiotest.Tone(8000, 2, 300, 200, 0.6))
	b := mustBuffer(t, 8000, 1, Int16, audiotest.Tone(8000, 1, 100, 500, 0.6))
	aCopy, bCopy := a.clone(), b.clone()

	if _, err := Mix(a, 30, -70, b, 80, 45); err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	if !a.Equal(aCopy) || !b.Equal(bCopy) {
		t.Error("Mix() modified its inputs")
	}
}

func TestMix_Errors(t *testing.T) {
	t.Parallel()

	ok := mustBuffer(t, 8000, 2, Int16, audiotest.Constant(2, 10, 0.1))
	empty, _ := Silence(8000, 2, Int16, 0)
	other := mustBuffer(t, 22050, 2, Int16, audiotest.Constant(2, 10, 0.1))

	tests := []struct {
		name    string
		a, b    Track
		wantErr error
	}{
		{"nil A", Track{Buffer: nil, Volume: 100}, Track{Buffer: ok, Volume: 100}, ErrEmptyInput},
		{"empty B", Track{Buffer: ok, Volume: 100}, Track{Buffer: empty, Volume: 100}, ErrEmptyInput},
		{"volume", Track{Buffer: ok, Volume: 101}, Track{Buffer: ok, Volume: 100}, ErrInvalidControlRange},
		{"pan", Track{Buffer: ok, Volume: 100}, Track{Buffer: ok, Volume: 100, Pan: -150}, ErrInvalidControlRange},
		{"sample rate", Track{Buffer: ok, Volume: 100}, Track{Buffer: other, Volume: 100}, ErrSampleRateMismatch},
	}

	m := NewMixer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Mix(tt.a, tt.b); !errors.Is(err, tt.wantErr) {
				t.Errorf("Mix() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMixer_WithNormalize(t *testing.T) {
	t.Parallel()

	a := mustBuffer(t, 8000, 2, Int16, audiotest.Stereo(50, 0.1, 0.1))
	b, _ := Silence(8000, 2, Int16, 50)

	m := NewMixer(WithNormalize(true))
	if !m.PanOptions().Normalize {
		t.Fatal("WithNormalize(true) not applied")
	}

	got, err := m.Mix(Track{Buffer: a, Volume: 100, Pan: 100}, Track{Buffer: b, Volume: 100})
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	want := DBToLinear(-NormalizeHeadroomDB) * float64(Int16.Max())
	if l := float64(got.ChannelPeak(0)); !approx(l, want, 1e-5) {
		t.Errorf("normalised left peak = %v, want %v", l, want)
	}
}

func TestMixer_Concurrent(t *testing.T) {
	t.Parallel()

	a := mustBuffer(t, 8000, 2, Int16, audiotest.Tone(8000, 2, 1000, 200, 0.5))
	b := mustBuffer(t, 8000, 2, Int16, audiotest.Tone(8000, 2, 800, 300, 0.5))
	want, err := Mix(a, 70, 20, b, 40, -60)
	if err != nil {
		t.Fatalf("Mix() error = %v", err)
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Mix(a, 70, 20, b, 40, -60)
			if err != nil || !got.Equal(want) {
				t.Errorf("concurrent Mix() differs (err = %v)", err)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkMix(b *testing.B) {
	ta := mustBuffer(b, 44100, 2, Int16, audiotest.Tone(44100, 2, 44100, 440, 0.5))
	tb := mustBuffer(b, 44100, 1, Int16, audiotest.Tone(44100, 1, 22050, 660, 0.5))

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Mix(ta, 80, -30, tb, 60, 50)
	}
}
