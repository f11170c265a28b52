// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/aiff"
	"github.com/ik5/audmix/formats/flac"
	"github.com/ik5/audmix/formats/mp3"
	"github.com/ik5/audmix/formats/vorbis"
	"github.com/ik5/audmix/formats/wav"
)

// ErrUnsupportedFormat is returned for a file extension with no decoder or
// encoder.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Controls are the per-track mixer settings.
type Controls struct {
	Volume int
	Pan    int
}

// DefaultControls leave a track untouched: full volume, centred.
var DefaultControls = Controls{Volume: audio.MaxVolume, Pan: 0}

// DefaultRegistry returns a registry with every bundled decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// DecodeFile decodes path completely, picking the decoder by extension.
func DecodeFile(reg *audio.Registry, path string) (*audio.Buffer, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", path, ext, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return buf, nil
}

// ExportFile writes b to path. Only .wav is supported.
func ExportFile(path string, b *audio.Buffer) (err error) {
	if b == nil {
		return audio.ErrEmptyInput
	}
	if ext := filepath.Ext(path); normalizeExt(ext) != "wav" {
		return fmt.Errorf("%s: export as %q: %w", path, ext, ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := wav.Encode(f, b); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// MixFiles decodes both files with DefaultRegistry and mixes them.
func MixFiles(pathA, pathB string, a, b Controls, opts ...audio.Option) (*audio.Buffer, error) {
	reg := DefaultRegistry()

	bufA, err := DecodeFile(reg, pathA)
	if err != nil {
		return nil, fmt.Errorf("track A: %w", err)
	}
	bufB, err := DecodeFile(reg, pathB)
	if err != nil {
		return nil, fmt.Errorf("track B: %w", err)
	}

	return audio.NewMixer(opts...).Mix(
		audio.Track{Buffer: bufA, Volume: a.Volume, Pan: a.Pan},
		audio.Track{Buffer: bufB, Volume: b.Volume, Pan: b.Pan},
	)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
