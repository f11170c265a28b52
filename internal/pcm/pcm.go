// SPDX-License-Identifier: EPL-2.0

// Package pcm holds small helpers shared by the format decoders.
package pcm

import (
	"bytes"
	"fmt"
	"io"
)

// ReadSeeker returns r if it can already seek, otherwise it buffers the
// whole stream in memory. go-audio decoders require an io.ReadSeeker.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}
