package wallery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kirsle/configdir"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"

	"wallery/pkg/desktop"
)

// Stage copies an image into the user cache directory and returns the
// staged path. The wallpaper is applied from the staged copy so that it
// survives the source file being renamed or deleted afterwards.
func Stage(src string) (string, error) {
	dir := configdir.LocalCache("wallery")
	if err := configdir.MakePath(dir); err != nil {
		return "", fmt.Errorf("cache path: %w", err)
	}
	return stageTo(src, dir)
}

func stageTo(src string, dir string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", fmt.Errorf("abs: %w", err)
	}

	sst, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(abs))
	if dst, err := os.Stat(dest); err == nil && dst.Size() == sst.Size() {
		klog.V(1).Infof("%s already staged", dest)
		return dest, nil
	}

	if err := copy.Copy(abs, dest); err != nil {
		return "", fmt.Errorf("copy: %w", err)
	}

	klog.Infof("staged %s -> %s", abs, dest)
	return dest, nil
}

// Apply stages an image and sets it as the desktop wallpaper, returning
// the staged path that was applied.
func Apply(path string) (string, error) {
	staged, err := Stage(path)
	if err != nil {
		return "", fmt.Errorf("stage: %w", err)
	}

	if err := desktop.Set(staged); err != nil {
		return "", err
	}

	return staged, nil
}
