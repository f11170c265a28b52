// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestReadSeeker_PassThrough(t *testing.T) {
	t.Parallel()

	in := bytes.NewReader([]byte("abc"))
	got, err := ReadSeeker(in)
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}
	if got != in {
		t.Error("ReadSeeker() wrapped a reader that can already seek")
	}
}

func TestReadSeeker_Buffers(t *testing.T) {
	t.Parallel()

	// io.MultiReader hides the Seek method of the underlying reader
	got, err := ReadSeeker(io.MultiReader(strings.NewReader("hello")))
	if err != nil {
		t.Fatalf("ReadSeeker() error = %v", err)
	}

	if _, err := got.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	rest, _ := io.ReadAll(got)
	if string(rest) != "ello" {
		t.Errorf("read after seek = %q, want %q", rest, "ello")
	}
}

func TestReadSeeker_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if _, err := ReadSeeker(errReader{boom}); !errors.Is(err, boom) {
		t.Errorf("ReadSeeker() error = %v, want %v", err, boom)
	}
}
