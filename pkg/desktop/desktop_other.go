//go:build !windows

package desktop

import "errors"

var errUnsupported = errors.New("changing the wallpaper is only supported on windows")

func setWallpaper(_ string) error {
	return errUnsupported
}

// Current returns the path of the active wallpaper, which is only known
// on windows.
func Current() (string, error) {
	return "", nil
}
