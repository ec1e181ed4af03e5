// Package wallery scans folders for images, produces display thumbnails
// in the background, and applies a chosen image as the desktop wallpaper.
package wallery

import (
	"image"
	"time"
)

// Version is the release version, set at build time.
var Version = "dev"

// ThumbOpts are thumbnail options. X and Y bound the result; the image
// is scaled to fit inside while preserving aspect ratio.
type ThumbOpts struct {
	X int
	Y int
}

// DefaultThumbOpts matches the 200x150 previews of the original gallery.
var DefaultThumbOpts = ThumbOpts{X: 200, Y: 150}

// Config holds configuration for wallery.
type Config struct {
	Dir     string
	Thumb   ThumbOpts
	Workers int
	Exif    bool
}

// Entry is one image file found by a scan. Immutable once created;
// the next scan replaces the whole set.
type Entry struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
}

// Thumb is a finished thumbnail, delivered by the Loader. Gen identifies
// the scan generation that requested it so that consumers can drop
// results from a superseded scan.
type Thumb struct {
	Gen    uint64
	Path   string
	Img    image.Image
	Failed bool
	Err    error
}
