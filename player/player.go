// SPDX-License-Identifier: EPL-2.0

package player

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
	"github.com/sirupsen/logrus"
)

// ChunkDuration is the default amount of audio written per device call.
// Cancellation is noticed between chunks.
const ChunkDuration = 50 * time.Millisecond

var (
	ErrNothingToPlay  = errors.New("nothing to play")
	ErrAlreadyPlaying = errors.New("playback already running")
)

// Player streams a Buffer to a Device on a background goroutine. At most
// one playback runs at a time.
type Player struct {
	dev   Device
	log   logrus.FieldLogger
	chunk time.Duration

	mtx    sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

type Option func(*Player)

// WithChunkDuration overrides ChunkDuration.
func WithChunkDuration(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.chunk = d
		}
	}
}

// New returns a Player writing to dev. A nil log discards messages.
func New(dev Device, log logrus.FieldLogger, opts ...Option) *Player {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}

	p := &Player{dev: dev, log: log, chunk: ChunkDuration}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start begins playing b and returns immediately. Cancelling ctx or
// calling Stop ends playback early.
func (p *Player) Start(ctx context.Context, b *audio.Buffer) error {
	if b == nil || b.Frames() == 0 {
		return ErrNothingToPlay
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if p.running() {
		return ErrAlreadyPlaying
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.err = nil

	go p.run(ctx, b, p.done)

	return nil
}

// Wait blocks until the current playback ends and returns its error.
// Playback stopped by cancellation is not an error.
func (p *Player) Wait() error {
	p.mtx.Lock()
	done := p.done
	p.mtx.Unlock()

	if done == nil {
		return nil
	}
	<-done

	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.err
}

// Stop cancels playback and returns once the device has been released.
// It is a no-op when nothing is playing.
func (p *Player) Stop() {
	p.mtx.Lock()
	cancel, done := p.cancel, p.done
	p.mtx.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Player) Playing() bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.running()
}

// running must be called with mtx held.
func (p *Player) running() bool {
	if p.done == nil {
		return false
	}
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *Player) run(ctx context.Context, b *audio.Buffer, done chan struct{}) {
	err := p.play(ctx, b)

	p.mtx.Lock()
	p.err = err
	p.cancel()
	close(done)
	p.mtx.Unlock()
}

func (p *Player) play(ctx context.Context, b *audio.Buffer) (err error) {
	log := p.log.WithFields(logrus.Fields{
		"sample_rate": b.SampleRate(),
		"channels":    b.Channels(),
		"duration":    b.Duration().String(),
	})

	if err := p.dev.Open(b.SampleRate(), b.Channels()); err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer func() {
		if cerr := p.dev.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output: %w", cerr)
		}
	}()

	log.Debug("Playback started")

	frames := max(b.FramesFor(p.chunk), 1)
	total := b.Frames()
	out := make([]byte, frames*b.Channels()*2)

	for start := 0; start < total; start += frames {
		select {
		case <-ctx.Done():
			log.Debug("Playback stopped")
			return nil
		default:
		}

		chunk := b.Slice(start, start+frames).Samples()
		pcm := out[:len(chunk)*2]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(pcm[i*2:], uint16(utils.Float32ToInt16(s)))
		}

		if _, err := p.dev.Write(pcm); err != nil {
			return fmt.Errorf("writing to output: %w", err)
		}
	}

	if dr, ok := p.dev.(Drainer); ok {
		if err := dr.Drain(ctx); err != nil {
			return fmt.Errorf("draining output: %w", err)
		}
	}

	log.Debug("Playback finished")
	return nil
}
