// Package clipboard writes generated replies to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available, e.g. a
// headless Linux host without xclip, xsel or wl-copy.
var ErrUnsupported = errors.New("system clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System is the host clipboard.
type System struct{}

// WriteAll copies text to the host clipboard.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Copy writes text through w, refusing empty input so there is always
// something meaningful to paste.
func Copy(w Writer, text string) error {
	if text == "" {
		return errors.New("nothing to copy")
	}
	return w.WriteAll(text)
}
