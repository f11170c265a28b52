// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile is returned when the input has no Ogg Vorbis headers.
var ErrNotVorbisFile = errors.New("not an ogg vorbis stream")
