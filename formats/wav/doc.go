// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV audio using github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts integer PCM (format tag 1 or WAVE_FORMAT_EXTENSIBLE) at
// 8, 16, 24 or 32 bits, mono or stereo, at any sample rate:
//
//	src, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    return err
//	}
//	buf, err := audio.ReadAll(src)
//
// The source reports the file's sample format, so audio.ReadAll builds a
// buffer that keeps the original bit depth for saturation and export.
//
// # Encoding
//
// Encode writes a buffer at its own bit depth. Float32 and 8-bit buffers are
// written as 16-bit PCM. It patches header sizes on close and therefore
// needs an io.WriteSeeker such as *os.File.
//
// WritePCM16 and EncodePCM16 write 16-bit PCM to any io.Writer, computing
// the header up front. Use them for stdout or pipes.
//
// # Errors
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: compressed or float WAV
//   - ErrUnsupportedBitDepth: a depth other than 8, 16, 24 or 32
//   - ErrUnsupportedWavChunks: no data chunk could be located
package wav
