// Package haptic provides the tactile pulse fired on sheet state changes.
// Terminals have no vibration motor, so the pulse is a short audible click or
// the terminal bell.
package haptic

import (
	"io"
	"log"
	"sync"
	"time"
)

// Pulser fires one pulse.
type Pulser interface {
	Pulse() error
}

// Nop never pulses.
type Nop struct{}

// Pulse implements Pulser.
func (Nop) Pulse() error { return nil }

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

// Pulse implements Pulser.
func (b Bell) Pulse() error {
	_, err := b.W.Write([]byte("\a"))
	return err
}

// Fallback uses Primary until it fails once, then Secondary for good.
type Fallback struct {
	Primary   Pulser
	Secondary Pulser

	mu     sync.Mutex
	failed bool
}

// Pulse implements Pulser.
func (f *Fallback) Pulse() error {
	f.mu.Lock()
	failed := f.failed
	f.mu.Unlock()

	if !failed {
		err := f.Primary.Pulse()
		if err == nil {
			return nil
		}
		log.Printf("haptic: primary pulser failed, falling back: %v", err)
		f.mu.Lock()
		f.failed = true
		f.mu.Unlock()
	}
	return f.Secondary.Pulse()
}

// ForMode builds the pulser for a configured mode: "click" plays a tone and
// falls back to the bell, "bell" rings bell, anything else is silent. The
// returned func releases the audio device.
func ForMode(mode string, frequency float64, duration time.Duration, bell io.Writer) (Pulser, func()) {
	switch mode {
	case "click":
		c := NewClick(frequency, duration)
		return &Fallback{Primary: c, Secondary: Bell{W: bell}}, c.Close
	case "bell":
		return Bell{W: bell}, func() {}
	default:
		return Nop{}, func() {}
	}
}
