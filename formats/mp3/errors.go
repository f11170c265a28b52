// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File is returned when no MPEG audio frame can be decoded from the
// input.
var ErrNotMP3File = errors.New("not an mp3 stream")
