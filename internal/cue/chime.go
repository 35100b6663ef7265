// Package cue provides audible arrival cues for new comments.
package cue

import (
	"bytes"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/hammamikhairi/commentscreen/internal/domain"
	"github.com/hammamikhairi/commentscreen/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Cue = (*Chime)(nil)
	_ domain.Cue = Silent{}
)

// Silent is a cue that does nothing. Used when the chime is disabled or
// no audio device is available.
type Silent struct{}

// Ring does nothing.
func (Silent) Ring() {}

// Chime plays a short synthesized tone through oto.
type Chime struct {
	ctx  *oto.Context
	log  *logger.Logger
	pcm  []byte
	ring chan struct{}

	closeOnce sync.Once
	quit      chan struct{}
	done      chan struct{}
}

// NewChime initializes the system audio context and starts the playback
// goroutine. Returns an error if the audio device is unavailable.
func NewChime(log *logger.Logger, tone Tone) (*Chime, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: ChannelCount,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	c := &Chime{
		ctx:  ctx,
		log:  log,
		pcm:  tone.PCM(),
		ring: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go c.run()

	log.Debug("chime ready (rate=%d, %d bytes)", SampleRate, len(c.pcm))
	return c, nil
}

// Ring queues the chime. A ring while one is already queued is dropped so
// a burst of comments makes one sound, not a backlog.
func (c *Chime) Ring() {
	select {
	case c.ring <- struct{}{}:
	default:
	}
}

// Close stops the playback goroutine.
func (c *Chime) Close() {
	c.closeOnce.Do(func() {
		close(c.quit)
		<-c.done
	})
}

func (c *Chime) run() {
	defer close(c.done)
	for {
		select {
		case <-c.quit:
			return
		case <-c.ring:
			c.play()
		}
	}
}

func (c *Chime) play() {
	player := c.ctx.NewPlayer(bytes.NewReader(c.pcm))
	player.Play()
	for player.IsPlaying() {
		select {
		case <-c.quit:
			player.Pause()
			player.Close()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
	if err := player.Close(); err != nil {
		c.log.Warn("closing chime player: %v", err)
	}
}
