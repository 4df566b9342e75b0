// Package clipboard copies text to the system clipboard, falling back to the
// OSC52 terminal escape when no native clipboard tool is available.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/andareed/siftly-bikeshare/logging"
)

// writeAll is swapped in tests.
var writeAll = clipboard.WriteAll

// Copy places text on the clipboard.
func Copy(text string) error {
	err := writeAll(text)
	if err == nil {
		logging.Debugf("Clipboard: copied %d bytes natively", len(text))
		return nil
	}
	logging.Warnf("Clipboard: native copy failed: %v", err)
	if oerr := copyOSC52(text); oerr != nil {
		return fmt.Errorf("copy to clipboard: %w", oerr)
	}
	return nil
}
