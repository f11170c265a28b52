// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/ik5/audmix/internal/audiotest"
)

// mockDecoder is a test decoder implementation
type mockDecoder struct {
	name string
}

func (d *mockDecoder) Decode(r io.Reader) (Source, error) {
	return audiotest.NewSilentSource(44100, 2, 100), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	wavDecoder := &mockDecoder{name: "wav"}
	mp3Decoder := &mockDecoder{name: "mp3"}

	registry.Register("wav", wavDecoder)
	registry.Register("mp3", mp3Decoder)

	tests := []struct {
		format string
		want   Decoder
		wantOK bool
	}{
		{"wav", wavDecoder, true},
		{"WAV", wavDecoder, true},
		{".wav", wavDecoder, true},
		{"mp3", mp3Decoder, true},
		{"flac", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			got, ok := registry.Get(tt.format)
			if ok != tt.wantOK {
				t.Errorf("Registry.Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if tt.wantOK && got != tt.want {
				t.Errorf("Registry.Get(%q) returned wrong decoder", tt.format)
			}
		})
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &mockDecoder{name: "first"}
	second := &mockDecoder{name: "second"}

	registry.Register("wav", first)
	registry.Register(".WAV", second)

	got, _ := registry.Get("wav")
	if got != second {
		t.Error("Registry.Get() did not return the overwritten decoder")
	}
}

func TestRegistry_Formats(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, f := range []string{"ogg", ".MP3", "wav"} {
		registry.Register(f, &mockDecoder{name: f})
	}

	got := registry.Formats()
	want := []string{"mp3", "ogg", "wav"}
	if !slices.Equal(got, want) {
		t.Errorf("Registry.Formats() = %v, want %v", got, want)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	decoder := &mockDecoder{name: "test"}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("format", decoder)
			done <- true
		}()
		go func() {
			_, _ = registry.Get("format")
			_ = registry.Formats()
			done <- true
		}()
	}
	for range 20 {
		<-done
	}

	if got, ok := registry.Get("format"); !ok || got != decoder {
		t.Error("Registry returned wrong decoder after concurrent operations")
	}
}

func TestReadAll_Stereo(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 10000, func(sample, channel int) float32 {
		if channel == 0 {
			return 0.25
		}
		return -0.25
	})

	buf, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if buf.Frames() != 10000 {
		t.Errorf("Frames() = %d, want 10000", buf.Frames())
	}
	if buf.Channels() != 2 || buf.SampleRate() != 8000 {
		t.Errorf("layout = %d ch @ %d Hz, want 2 ch @ 8000 Hz", buf.Channels(), buf.SampleRate())
	}
	if buf.Format() != Int16 {
		t.Errorf("Format() = %v, want default int16", buf.Format())
	}
	if buf.Sample(9999, 0) != 0.25 || buf.Sample(9999, 1) != -0.25 {
		t.Errorf("last frame = (%v, %v), want (0.25, -0.25)", buf.Sample(9999, 0), buf.Sample(9999, 1))
	}
}

func TestReadAll_OddBufSize(t *testing.T) {
	t.Parallel()

	// A reported size that is not a frame multiple must still read whole frames
	src := audiotest.NewConstantSource(8000, 2, 333, 0.5).WithBufSize(7)

	buf, err := ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if buf.Frames() != 333 {
		t.Errorf("Frames() = %d, want 333", buf.Frames())
	}
}

func TestReadAll_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := audiotest.NewSilentSource(8000, 1, 10).WithError(boom)

	_, err := ReadAll(src)
	if !errors.Is(err, boom) {
		t.Errorf("ReadAll() error = %v, want %v", err, boom)
	}
}

func TestReadAll_UnsupportedChannels(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 4, 10)

	_, err := ReadAll(src)
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("ReadAll() error = %v, want ErrUnsupportedChannels", err)
	}
}

func TestBufferSource_RoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := NewBuffer(16000, 2, Int24, audiotest.Tone(16000, 2, 5000, 440, 0.8))
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	got, err := ReadAll(NewBufferSource(orig))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	if !got.Equal(orig) {
		t.Error("buffer read back through NewBufferSource differs from the original")
	}
}

func TestBufferSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	orig, _ := Silence(8000, 2, Int16, 10)
	src := NewBufferSource(orig)

	_, err := src.ReadSamples(make([]float32, 3))
	if !errors.Is(err, ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

// BenchmarkRegistry_Get benchmarks retrieving decoders
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &mockDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}

func TestReadAll_AwkwardSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  *audiotest.MockSource
	}{
		{"short reads", audiotest.NewSineSource(8000, 2, 1000, 440).WithMaxRead(3)},
		{"stalls first", audiotest.NewSineSource(8000, 2, 1000, 440).WithStalls(maxEmptyReads - 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf, err := ReadAll(tt.src)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if buf.Frames() != 1000 {
				t.Errorf("Frames() = %d, want 1000", buf.Frames())
			}
			// 440 Hz at 8 kHz: frame 5 is sin(2*pi*440*5/8000)
			if got := buf.Sample(5, 1); got < 0.98 || got > 0.995 {
				t.Errorf("Sample(5, 1) = %v, want about 0.988", got)
			}
		})
	}
}

func TestReadAll_NoProgress(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(8000, 1, 10).WithStalls(maxEmptyReads)

	_, err := ReadAll(src)
	if !errors.Is(err, io.ErrNoProgress) {
		t.Errorf("ReadAll() error = %v, want io.ErrNoProgress", err)
	}
}
