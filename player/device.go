// SPDX-License-Identifier: EPL-2.0

package player

import "context"

// Device is an audio output accepting signed 16-bit little-endian
// interleaved PCM.
type Device interface {
	// Open prepares the device for a stream with the given layout.
	Open(sampleRate, channels int) error
	// Write blocks until p has been queued for output.
	Write(p []byte) (int, error)
	// Close stops output immediately and releases the stream.
	Close() error
}

// Drainer is implemented by devices that buffer internally. Drain blocks
// until queued audio has been heard or ctx is done. The player calls it
// after the last chunk of an uninterrupted playback.
type Drainer interface {
	Drain(ctx context.Context) error
}
