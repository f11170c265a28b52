// SPDX-License-Identifier: EPL-2.0

package aiff_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ik5/audmix/formats/aiff"
)

func ExampleDecoder_Decode_errorHandling() {
	_, err := aiff.Decoder{}.Decode(bytes.NewReader([]byte("FORM but nothing else")))
	if errors.Is(err, aiff.ErrNotAiffFile) {
		fmt.Println("rejected")
	}
	// Output: rejected
}
