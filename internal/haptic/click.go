package haptic

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Click plays a short sine tone on the default audio device.
type Click struct {
	Frequency float64
	Duration  time.Duration

	mu      sync.Mutex
	opened  bool
	initErr error
}

// NewClick returns a click of the given tone and length.
func NewClick(frequency float64, duration time.Duration) *Click {
	return &Click{Frequency: frequency, Duration: duration}
}

// Pulse implements Pulser. The speaker is opened on first use.
func (c *Click) Pulse() error {
	if err := c.open(); err != nil {
		return err
	}
	tone, err := generators.SineTone(sampleRate, c.Frequency)
	if err != nil {
		return errors.Wrapf(err, "sine tone %.0fHz", c.Frequency)
	}
	speaker.Play(beep.Take(sampleRate.N(c.Duration), tone))
	return nil
}

func (c *Click) open() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opened || c.initErr != nil {
		return c.initErr
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		c.initErr = errors.Wrap(err, "init speaker")
		return c.initErr
	}
	c.opened = true
	return nil
}

// Close releases the audio device if Pulse opened it.
func (c *Click) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opened {
		speaker.Close()
		c.opened = false
	}
}
