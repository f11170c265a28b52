// SPDX-License-Identifier: EPL-2.0

package segment

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/audio"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultLength is the window cut from each source file.
	DefaultLength = 60 * time.Second

	// PanSpread bounds RandomPan to [-PanSpread, PanSpread].
	PanSpread = 64

	// DirLayout names a session directory after its creation time.
	DirLayout = "2006-01-02_15-04-05"
)

var ErrNotEnoughFiles = errors.New("need at least two audio files")

// ListAudio returns the files in dir whose extension is one of exts,
// sorted by name. Matching ignores case and a leading dot.
func ListAudio(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(exts))
	for _, e := range exts {
		want[normalizeExt(e)] = true
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if want[normalizeExt(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)

	return files, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// PickPair chooses two different entries of files.
func PickPair(files []string, rng *rand.Rand) (string, string, error) {
	if len(files) < 2 {
		return "", "", fmt.Errorf("found %d: %w", len(files), ErrNotEnoughFiles)
	}

	i := rng.IntN(len(files))
	j := rng.IntN(len(files) - 1)
	if j >= i {
		j++
	}
	return files[i], files[j], nil
}

// Cut returns a random window of length from b. A buffer shorter than
// length is returned as is, with short set. A non-positive length selects
// DefaultLength.
func Cut(b *audio.Buffer, length time.Duration, rng *rand.Rand) (out *audio.Buffer, short bool) {
	if length <= 0 {
		length = DefaultLength
	}

	frames := b.FramesFor(length)
	if b.Frames() < frames {
		return b, true
	}

	start := rng.IntN(b.Frames() - frames + 1)
	return b.Slice(start, start+frames), false
}

// RandomPan returns a starting pan in [-PanSpread, PanSpread].
func RandomPan(rng *rand.Rand) int {
	return rng.IntN(2*PanSpread+1) - PanSpread
}

// SessionDir creates and returns root/<now formatted with DirLayout>.
func SessionDir(root string, now time.Time) (string, error) {
	dir := filepath.Join(root, now.Format(DirLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating session directory: %w", err)
	}
	return dir, nil
}

// FileName is the export name of the n-th segment cut from source, e.g.
// seg1_song.wav for song.mp3.
func FileName(n int, source string) string {
	base := filepath.Base(source)
	return fmt.Sprintf("seg%d_%s.wav", n, strings.TrimSuffix(base, filepath.Ext(base)))
}

// Segment is a window cut from a source file and exported on its own.
type Segment struct {
	Source string
	Path   string
	Buffer *audio.Buffer
	// Short is set when the source was below the requested length and
	// used whole.
	Short bool
	// Pan is a random starting pan for the segment.
	Pan int
}

// Options drives Select. Zero values pick the defaults.
type Options struct {
	Dir          string
	SegmentsRoot string
	Length       time.Duration
	Registry     *audio.Registry
	Rand         *rand.Rand
	Now          time.Time
	Log          logrus.FieldLogger
}

// Select picks two files from opts.Dir, cuts a random window from each,
// exports both into a new session directory and returns them.
func Select(opts Options) ([2]Segment, error) {
	var pair [2]Segment

	if opts.Registry == nil {
		opts.Registry = audmix.DefaultRegistry()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.SegmentsRoot == "" {
		opts.SegmentsRoot = "segments"
	}
	if opts.Log == nil {
		l := logrus.New()
		l.Out = io.Discard
		opts.Log = l
	}

	files, err := ListAudio(opts.Dir, opts.Registry.Formats())
	if err != nil {
		return pair, err
	}
	a, b, err := PickPair(files, opts.Rand)
	if err != nil {
		return pair, err
	}

	dir, err := SessionDir(opts.SegmentsRoot, opts.Now)
	if err != nil {
		return pair, err
	}

	for i, src := range []string{a, b} {
		buf, err := audmix.DecodeFile(opts.Registry, src)
		if err != nil {
			return pair, err
		}

		cut, short := Cut(buf, opts.Length, opts.Rand)
		if short {
			opts.Log.WithField("track", src).Warn("Audio file is shorter than the segment length, using it whole")
		}

		path := filepath.Join(dir, FileName(i+1, src))
		if err := audmix.ExportFile(path, cut); err != nil {
			return pair, err
		}

		pair[i] = Segment{
			Source: src,
			Path:   path,
			Buffer: cut,
			Short:  short,
			Pan:    RandomPan(opts.Rand),
		}

		opts.Log.WithFields(logrus.Fields{
			"track":    src,
			"segment":  path,
			"duration": cut.Duration().String(),
		}).Info("Segment exported")
	}

	return pair, nil
}
