// Package logging routes the standard logger to a file while the TUI owns
// the terminal.
package logging

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Setup configures logging. With an empty filename all log output is
// discarded; otherwise it is appended to filename with Bubble Tea's
// file logger.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(filename, "drawer")
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", filename)
	}
	return func() { _ = f.Close() }, nil
}
