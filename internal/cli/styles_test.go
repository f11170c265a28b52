// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1.0s"},
		{90 * time.Second, "90.0s"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatPan(t *testing.T) {
	t.Parallel()

	tests := map[int]string{-64: "L64", 0: "C", 100: "R100"}
	for pan, want := range tests {
		if got := FormatPan(pan); got != want {
			t.Errorf("FormatPan(%d) = %q, want %q", pan, got, want)
		}
	}
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	p := NewPrinter(out)

	p.PrintError("boom")
	p.PrintWarning("careful")
	p.PrintInfo("Segment", "seg1_a.wav")
	p.PrintMixSummary([]TrackLine{
		{Slot: "A", Name: "a.wav", Volume: 100, Pan: -20},
		{Slot: "B", Name: "b.wav", Volume: 40, Pan: 0},
	}, 2*time.Second, 44100, 352844)

	got := out.String()
	for _, want := range []string{"boom", "careful", "seg1_a.wav", "a.wav", "L20", "2.0s", "44.1 kHz", "353 kB"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
