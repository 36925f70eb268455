// Package clipboard copies compiled prompts to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeAll is a package-level variable to allow mocking in tests.
var writeAll = clipboard.WriteAll

// Copy places text on the system clipboard.
func Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system (install xclip, xsel or wl-clipboard)")
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
