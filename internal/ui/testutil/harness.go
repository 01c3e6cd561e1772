package testutil

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is a Bubble Tea model whose Update returns its own concrete type.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
}

// Harness drives a component for testing: it runs the commands returned by
// Update and records every message they produce.
type Harness[M Component[M]] struct {
	model M
	msgs  []tea.Msg
}

// NewHarness wraps m.
func NewHarness[M Component[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the current model.
func (h *Harness[M]) Model() M {
	return h.model
}

// Do calls fn with a pointer to the model, for pointer-receiver setters, and
// runs the command it returns.
func (h *Harness[M]) Do(fn func(m *M) tea.Cmd) []tea.Msg {
	return h.Run(fn(&h.model))
}

// Send delivers msg and returns the messages produced by the resulting command.
func (h *Harness[M]) Send(msg tea.Msg) []tea.Msg {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return h.Run(cmd)
}

// SendKey simulates typing a rune key.
func (h *Harness[M]) SendKey(key string) []tea.Msg {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, up, ...).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) []tea.Msg {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Press, Drag and Release send left-button mouse events at row y.
func (h *Harness[M]) Press(y int) []tea.Msg {
	return h.Send(tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

func (h *Harness[M]) Drag(y int) []tea.Msg {
	return h.Send(tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
}

func (h *Harness[M]) Release(y int) []tea.Msg {
	return h.Send(tea.MouseMsg{Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Run executes cmd and records the flattened messages.
func (h *Harness[M]) Run(cmd tea.Cmd) []tea.Msg {
	msgs := Flatten(cmd)
	h.msgs = append(h.msgs, msgs...)
	return msgs
}

// Pump feeds back every message matching match, and the matching messages
// those produce, until none are left or limit deliveries were made. It
// returns the number of deliveries.
func (h *Harness[M]) Pump(msgs []tea.Msg, match func(tea.Msg) bool, limit int) int {
	n := 0
	for len(msgs) > 0 && n < limit {
		var next []tea.Msg
		for _, msg := range msgs {
			if !match(msg) || n >= limit {
				continue
			}
			next = append(next, h.Send(msg)...)
			n++
		}
		msgs = next
	}
	return n
}

// Messages returns everything recorded since creation or the last Clear.
func (h *Harness[M]) Messages() []tea.Msg {
	return h.msgs
}

// Clear drops the recorded messages.
func (h *Harness[M]) Clear() {
	h.msgs = nil
}

var cmdType = reflect.TypeOf((*tea.Cmd)(nil)).Elem()

// Flatten runs cmd and expands batch and sequence messages depth-first, in
// order. Nil commands and nil messages are skipped.
func Flatten(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := range v.Len() {
			sub, _ := v.Index(i).Interface().(tea.Cmd)
			out = append(out, Flatten(sub)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
