// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// ExportBitDepth is the PCM depth b is written with. Float and 8-bit
// buffers are written as 16-bit.
func ExportBitDepth(b *audio.Buffer) int {
	f := b.Format()
	if f.IsFloat() || f.BitDepth() < 16 {
		return 16
	}
	return f.BitDepth()
}

// Encode writes b as an integer PCM WAV file. The header sizes are patched
// on close, so w must be seekable.
func Encode(w io.WriteSeeker, b *audio.Buffer) error {
	bits := ExportBitDepth(b)

	samples := b.Samples()
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = utils.Float32ToInt(s, bits)
	}

	enc := wav.NewEncoder(w, b.SampleRate(), bits, b.Channels(), wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: b.Channels(), SampleRate: b.SampleRate()},
		Data:           data,
		SourceBitDepth: bits,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing PCM: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV: %w", err)
	}

	return nil
}
