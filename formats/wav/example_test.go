// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/wav"
)

func ExampleWritePCM16() {
	out := new(bytes.Buffer)
	samples := []int16{0, 1000, -1000, 0}

	if err := wav.WritePCM16(out, 8000, 1, samples); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out.Len())
	// Output: 52
}

func ExampleDecoder() {
	out := new(bytes.Buffer)
	_ = wav.WritePCM16(out, 8000, 2, []int16{16384, -16384, 8192, -8192})

	src, err := wav.Decoder{}.Decode(out)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer src.Close()

	buf, _ := audio.ReadAll(src)
	fmt.Println(buf.Channels(), buf.Frames(), buf.Format())
	fmt.Println(buf.Sample(0, 0), buf.Sample(0, 1))
	// Output:
	// 2 2 int16
	// 0.5 -0.5
}
