package dictionary

import (
	"errors"
	"fmt"
	"os"
)

// validateTextSource rejects paths that can be opened but never read as a
// word list, such as directories.
func validateTextSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	if !info.Mode().IsRegular() && info.Mode()&(os.ModeNamedPipe|os.ModeCharDevice) == 0 {
		return fmt.Errorf("unsupported file mode %s", info.Mode())
	}
	return nil
}
