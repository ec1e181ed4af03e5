// Package desktop issues the OS call that changes the desktop wallpaper.
package desktop

import (
	"fmt"
	"os"
	"path/filepath"
)

// SetError reports a wallpaper change that the OS rejected or that could
// not be attempted. The active wallpaper is unchanged when Set fails.
type SetError struct {
	Path string
	Err  error
}

func (e *SetError) Error() string {
	return fmt.Sprintf("set wallpaper %s: %v", e.Path, e.Err)
}

func (e *SetError) Unwrap() error { return e.Err }

// Set applies the image at path as the desktop wallpaper. The path must
// point at an existing file. Set keeps no state between calls and may be
// repeated with the same path.
func Set(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &SetError{Path: path, Err: err}
	}

	if _, err := os.Stat(abs); err != nil {
		return &SetError{Path: abs, Err: err}
	}

	if err := setWallpaper(abs); err != nil {
		return &SetError{Path: abs, Err: err}
	}

	return nil
}
