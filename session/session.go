// SPDX-License-Identifier: EPL-2.0

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/ik5/audmix"
	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/player"
	"github.com/sirupsen/logrus"
)

var (
	// ErrTracksNotLoaded wraps audio.ErrEmptyInput so callers can match
	// either.
	ErrTracksNotLoaded = fmt.Errorf("load both tracks first: %w", audio.ErrEmptyInput)

	ErrNothingMixed = errors.New("nothing mixed yet")
	ErrNoPlayer     = errors.New("session has no player")
	ErrUnknownSlot  = errors.New("unknown track slot")
)

type SlotID int

const (
	SlotA SlotID = iota
	SlotB
)

func (id SlotID) String() string {
	switch id {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	}
	return fmt.Sprintf("SlotID(%d)", int(id))
}

func (id SlotID) valid() bool { return id == SlotA || id == SlotB }

// Slot is one loaded track with its controls.
type Slot struct {
	Name   string
	Buffer *audio.Buffer
	Volume int
	Pan    int
}

// Loaded reports whether the slot holds audio.
func (s Slot) Loaded() bool { return s.Buffer != nil && s.Buffer.Frames() > 0 }

// Session holds two tracks, their controls and the last mix. All methods
// are safe for concurrent use; decoding and mixing run outside the lock.
type Session struct {
	reg    *audio.Registry
	mixer  *audio.Mixer
	player *player.Player
	log    logrus.FieldLogger

	mtx   sync.Mutex
	slots [2]Slot
	last  *audio.Buffer
}

// New returns an empty session. A nil registry or mixer selects the
// defaults; a nil player disables Play.
func New(reg *audio.Registry, mixer *audio.Mixer, p *player.Player, log logrus.FieldLogger) *Session {
	if reg == nil {
		reg = audmix.DefaultRegistry()
	}
	if mixer == nil {
		mixer = audio.NewMixer()
	}
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}

	s := &Session{reg: reg, mixer: mixer, player: p, log: log}
	for i := range s.slots {
		s.slots[i] = Slot{Volume: audio.MaxVolume}
	}
	return s
}

// Load decodes path into slot. Controls are kept.
func (s *Session) Load(id SlotID, path string) error {
	if !id.valid() {
		return ErrUnknownSlot
	}

	buf, err := audmix.DecodeFile(s.reg, path)
	if err != nil {
		return fmt.Errorf("track %s: %w", id, err)
	}

	return s.SetTrack(id, path, buf)
}

// SetTrack places an already decoded buffer in slot.
func (s *Session) SetTrack(id SlotID, name string, buf *audio.Buffer) error {
	if !id.valid() {
		return ErrUnknownSlot
	}
	if buf == nil || buf.Frames() == 0 {
		return fmt.Errorf("track %s: %w", id, audio.ErrEmptyInput)
	}

	s.mtx.Lock()
	s.slots[id].Name = name
	s.slots[id].Buffer = buf
	s.mtx.Unlock()

	s.log.WithFields(logrus.Fields{
		"slot":        id.String(),
		"track":       name,
		"duration":    buf.Duration().String(),
		"channels":    buf.Channels(),
		"sample_rate": humanize.SI(float64(buf.SampleRate()), "Hz"),
	}).Info("Track loaded")

	return nil
}

func (s *Session) SetVolume(id SlotID, volume int) error {
	if !id.valid() {
		return ErrUnknownSlot
	}
	if err := audio.ValidateVolume(volume); err != nil {
		return fmt.Errorf("track %s: %w", id, err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.slots[id].Volume = volume
	return nil
}

func (s *Session) SetPan(id SlotID, pan int) error {
	if !id.valid() {
		return ErrUnknownSlot
	}
	if err := audio.ValidatePan(pan); err != nil {
		return fmt.Errorf("track %s: %w", id, err)
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.slots[id].Pan = pan
	return nil
}

// Slot returns a copy of the slot's state.
func (s *Session) Slot(id SlotID) (Slot, error) {
	if !id.valid() {
		return Slot{}, ErrUnknownSlot
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.slots[id], nil
}

// Last returns the most recent successful mix, or nil.
func (s *Session) Last() *audio.Buffer {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.last
}

// Mix combines both slots with their current controls and keeps the
// result for Play and Export. A failed mix leaves the previous result.
func (s *Session) Mix() (*audio.Buffer, error) {
	s.mtx.Lock()
	a, b := s.slots[SlotA], s.slots[SlotB]
	s.mtx.Unlock()

	if !a.Loaded() || !b.Loaded() {
		return nil, ErrTracksNotLoaded
	}

	mixed, err := s.mixer.Mix(
		audio.Track{Buffer: a.Buffer, Volume: a.Volume, Pan: a.Pan},
		audio.Track{Buffer: b.Buffer, Volume: b.Volume, Pan: b.Pan},
	)
	if err != nil {
		return nil, err
	}

	s.mtx.Lock()
	s.last = mixed
	s.mtx.Unlock()

	s.log.WithFields(logrus.Fields{
		"volume_a": a.Volume,
		"pan_a":    a.Pan,
		"volume_b": b.Volume,
		"pan_b":    b.Pan,
		"duration": mixed.Duration().String(),
	}).Debug("Tracks mixed")

	return mixed, nil
}

// Play mixes the current slots and starts playing the result, replacing
// any playback in progress. Nothing plays if the mix fails.
func (s *Session) Play(ctx context.Context) error {
	if s.player == nil {
		return ErrNoPlayer
	}

	mixed, err := s.Mix()
	if err != nil {
		return err
	}

	s.player.Stop()
	if err := s.player.Start(ctx, mixed); err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}

	s.log.WithField("duration", mixed.Duration().String()).Info("Playing mix")
	return nil
}

// Wait blocks until the current playback ends.
func (s *Session) Wait() error {
	if s.player == nil {
		return nil
	}
	return s.player.Wait()
}

// Stop ends playback. It does not wait for or block a concurrent Mix.
func (s *Session) Stop() {
	if s.player == nil {
		return
	}
	s.player.Stop()
	s.log.Debug("Playback stopped")
}

// Export writes the last mix to path.
func (s *Session) Export(path string) error {
	last := s.Last()
	if last == nil {
		return ErrNothingMixed
	}

	if err := audmix.ExportFile(path, last); err != nil {
		return err
	}

	s.log.WithField("path", path).Info("Mix exported")
	return nil
}
