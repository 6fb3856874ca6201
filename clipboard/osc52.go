package clipboard

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"

	"github.com/andareed/siftly-snippets/logging"
)

func copyOSC52(text string) error {
	if !osc52Supported() {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return fmt.Errorf("%w: OSC52 unsupported by terminal", ErrUnavailable)
	}
	termenv.NewOutput(os.Stdout).Copy(text)
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

func osc52Supported() bool {
	if term := os.Getenv("TERM"); term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(os.Stdout)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
