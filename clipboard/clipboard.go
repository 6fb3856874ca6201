// Package clipboard copies text to the system clipboard, falling back to an
// OSC52 escape sequence when no clipboard utility is available (ssh, tmux).
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-snippets/logging"
)

// ErrUnavailable is returned when neither the system clipboard nor OSC52
// can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

var (
	writeSystem = clipboard.WriteAll
	writeOSC52  = copyOSC52
)

// Copy puts text on the clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		logging.Debugf("Clipboard: no system clipboard utility")
	} else if err := writeSystem(text); err == nil {
		logging.Infof("Clipboard: copied %d bytes", len(text))
		return nil
	} else {
		logging.Warnf("Clipboard: system copy failed: %v", err)
	}
	return writeOSC52(text)
}
