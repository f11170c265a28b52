// SPDX-License-Identifier: EPL-2.0

package otodev

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/ik5/audmix/player"
)

// ErrFormatChanged is returned when a Device is opened with a layout
// other than the one the process-wide oto context was created with. oto
// allows a single context per process.
var ErrFormatChanged = errors.New("output format differs from the active audio context")

var (
	otoMu       sync.Mutex
	otoCtx      *oto.Context
	otoRate     int
	otoChannels int
)

// sharedContext creates the oto context on first use and returns it after.
func sharedContext(sampleRate, channels int) (*oto.Context, error) {
	otoMu.Lock()
	defer otoMu.Unlock()

	if otoCtx != nil {
		if otoRate != sampleRate || otoChannels != channels {
			return nil, fmt.Errorf("%d Hz %d ch, active %d Hz %d ch: %w",
				sampleRate, channels, otoRate, otoChannels, ErrFormatChanged)
		}
		return otoCtx, nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	otoCtx, otoRate, otoChannels = ctx, sampleRate, channels
	return ctx, nil
}

// Device plays through the system audio output via oto. Writes feed a
// pipe the oto player reads from. It satisfies player.Device and
// player.Drainer.
type Device struct {
	player *oto.Player
	pr     *io.PipeReader
	pw     *io.PipeWriter
}

var (
	_ player.Device  = (*Device)(nil)
	_ player.Drainer = (*Device)(nil)
)

func New() *Device {
	return &Device{}
}

func (d *Device) Open(sampleRate, channels int) error {
	if d.player != nil {
		return errors.New("oto device already open")
	}

	ctx, err := sharedContext(sampleRate, channels)
	if err != nil {
		return err
	}
	if err := ctx.Resume(); err != nil {
		return fmt.Errorf("resuming audio context: %w", err)
	}

	d.pr, d.pw = io.Pipe()
	d.player = ctx.NewPlayer(d.pr)
	d.player.Play()

	return nil
}

func (d *Device) Write(p []byte) (int, error) {
	if d.pw == nil {
		return 0, errors.New("oto device not open")
	}
	return d.pw.Write(p)
}

// Drain closes the pipe and waits for the oto player to run dry.
func (d *Device) Drain(ctx context.Context) error {
	if d.pw == nil {
		return nil
	}
	d.pw.Close()

	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()

	for d.player.IsPlaying() {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}
	}
	return nil
}

func (d *Device) Close() error {
	if d.player == nil {
		return nil
	}

	d.player.Pause()
	d.pw.Close()
	err := d.player.Close()
	d.pr.Close()

	d.player, d.pr, d.pw = nil, nil, nil
	return err
}
