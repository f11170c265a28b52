// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/ik5/audmix"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/formats/wav"
	"github.com/ik5/audmix/internal/cli"
	"github.com/ik5/audmix/player"
	"github.com/ik5/audmix/player/otodev"
	"github.com/ik5/audmix/segment"
	"github.com/ik5/audmix/session"
)

// Device is the playback output used for --play.
type Device = player.Device

func newOtoDevice() Device { return otodev.New() }

// OutputFlags control what happens to a finished mix.
type OutputFlags struct {
	Normalize bool   `help:"Normalize each channel after panning."`
	Out       string `short:"o" help:"Write the mix as WAV to this file, - for stdout." placeholder:"FILE"`
	Play      bool   `help:"Play the mix. This is the default when --out is not given."`
}

type MixCmd struct {
	TrackA string `arg:"" name:"track-a" help:"First track." type:"existingfile"`
	TrackB string `arg:"" name:"track-b" help:"Second track." type:"existingfile"`

	VolumeA int `help:"Volume of track A, 0-100." default:"100"`
	VolumeB int `help:"Volume of track B, 0-100." default:"100"`
	PanA    int `help:"Pan of track A, -100 (left) to 100 (right)." default:"0"`
	PanB    int `help:"Pan of track B, -100 (left) to 100 (right)." default:"0"`

	OutputFlags
}

func (c *MixCmd) Run(app *App) error {
	s := newSession(app, c.Normalize)

	if err := s.Load(session.SlotA, c.TrackA); err != nil {
		return err
	}
	if err := s.Load(session.SlotB, c.TrackB); err != nil {
		return err
	}

	if err := applyControls(s, session.SlotA, c.VolumeA, c.PanA); err != nil {
		return err
	}
	if err := applyControls(s, session.SlotB, c.VolumeB, c.PanB); err != nil {
		return err
	}

	return finish(app, s, c.OutputFlags)
}

type RandomCmd struct {
	Dir string `arg:"" help:"Directory with audio files." type:"existingdir"`

	SegmentsDir string        `help:"Where timestamped segment directories are created." default:"segments" type:"path"`
	Length      time.Duration `help:"Segment length." default:"60s"`
	Seed        uint64        `help:"Random seed, 0 for a random one."`
	VolumeA     int           `help:"Volume of the first segment, 0-100." default:"100"`
	VolumeB     int           `help:"Volume of the second segment, 0-100." default:"100"`

	OutputFlags
}

func (c *RandomCmd) Run(app *App) error {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	app.Log.WithField("seed", seed).Debug("Random mode")

	pair, err := segment.Select(segment.Options{
		Dir:          c.Dir,
		SegmentsRoot: c.SegmentsDir,
		Length:       c.Length,
		Rand:         rand.New(rand.NewPCG(seed, seed)),
		Now:          time.Now(),
		Log:          app.Log,
	})
	if err != nil {
		return err
	}

	s := newSession(app, c.Normalize)
	volumes := [2]int{c.VolumeA, c.VolumeB}

	for i, seg := range pair {
		id := session.SlotID(i)
		if err := s.SetTrack(id, seg.Path, seg.Buffer); err != nil {
			return err
		}
		if err := applyControls(s, id, volumes[i], seg.Pan); err != nil {
			return err
		}

		app.Print.PrintInfo(fmt.Sprintf("Segment %s", id), seg.Path)
		if seg.Short {
			app.Print.PrintWarning(fmt.Sprintf("%s is shorter than %s, used whole", seg.Source, c.Length))
		}
	}

	return finish(app, s, c.OutputFlags)
}

type VersionCmd struct{}

func (c *VersionCmd) Run(app *App) error {
	app.Print.PrintVersion(version)
	return nil
}

func newSession(app *App, normalize bool) *session.Session {
	return session.New(
		audmix.DefaultRegistry(),
		audio.NewMixer(audio.WithNormalize(normalize)),
		player.New(app.NewDevice(), app.Log),
		app.Log,
	)
}

func applyControls(s *session.Session, id session.SlotID, volume, pan int) error {
	if err := s.SetVolume(id, volume); err != nil {
		return err
	}
	return s.SetPan(id, pan)
}

// finish mixes, then exports and plays as the flags ask. Playback runs
// through the session so only a complete mix is ever played.
func finish(app *App, s *session.Session, flags OutputFlags) error {
	playing := flags.Out == "" || flags.Play
	if playing && flags.Out == "-" {
		return errors.New("--play cannot be combined with --out -")
	}

	if playing {
		if err := s.Play(app.Ctx); err != nil {
			return err
		}
	} else if _, err := s.Mix(); err != nil {
		return err
	}
	mixed := s.Last()

	var size uint64
	if flags.Out != "" {
		n, err := export(app.Stdout, s, flags.Out)
		if err != nil {
			s.Stop()
			return err
		}
		size = n
	}

	if err := printSummary(app.Print, s, mixed, size); err != nil {
		s.Stop()
		return err
	}

	if !playing {
		return nil
	}

	app.Log.WithField("duration", mixed.Duration().String()).Info("Press Ctrl+C to stop")
	return s.Wait()
}

// export writes the last mix and returns the number of bytes written.
func export(stdout io.Writer, s *session.Session, path string) (uint64, error) {
	if path == "-" {
		cw := &countingWriter{w: stdout}
		if err := wav.EncodePCM16(cw, s.Last()); err != nil {
			return 0, err
		}
		return cw.n, nil
	}

	if err := s.Export(path); err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

func printSummary(pr *cli.Printer, s *session.Session, mixed *audio.Buffer, size uint64) error {
	var lines []cli.TrackLine
	for _, id := range []session.SlotID{session.SlotA, session.SlotB} {
		slot, err := s.Slot(id)
		if err != nil {
			return err
		}
		lines = append(lines, cli.TrackLine{
			Slot:   id.String(),
			Name:   slot.Name,
			Volume: slot.Volume,
			Pan:    slot.Pan,
		})
	}
	pr.PrintMixSummary(lines, mixed.Duration(), mixed.SampleRate(), size)
	return nil
}

type countingWriter struct {
	w io.Writer
	n uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += uint64(n)
	return n, err
}
