package wallery

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"k8s.io/klog/v2"
)

// placeholderColor fills thumbnails for files that failed to decode.
var placeholderColor = color.RGBA{R: 45, G: 45, B: 45, A: 255}

// Loader decodes thumbnails on a small worker pool and delivers them on
// Results. Each Load call supersedes the previous one: its context is
// cancelled and a new generation begins. Results from an old generation
// may still trickle out; consumers drop anything whose Gen is stale.
type Loader struct {
	opts    ThumbOpts
	workers int
	results chan Thumb

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewLoader creates a Loader. workers bounds how many decodes run at
// once; values below 1 are treated as 1.
func NewLoader(opts ThumbOpts, workers int) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{
		opts:    opts,
		workers: workers,
		results: make(chan Thumb, 16),
	}
}

// Results delivers finished thumbnails in completion order, which is not
// necessarily scan order.
func (l *Loader) Results() <-chan Thumb {
	return l.results
}

// Load starts decoding a new batch and returns its generation. Any batch
// still in flight is cancelled first.
func (l *Loader) Load(entries []Entry) uint64 {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.mu.Unlock()

	klog.V(1).Infof("generation %d: loading %d thumbnails", gen, len(entries))

	jobs := make(chan Entry, len(entries))
	for _, e := range entries {
		jobs <- e
	}
	close(jobs)

	workers := l.workers
	if len(entries) < workers {
		workers = len(entries)
	}

	for range workers {
		go func() {
			for e := range jobs {
				if ctx.Err() != nil {
					return
				}

				t := l.loadOne(gen, e)
				select {
				case l.results <- t:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	return gen
}

// Close cancels any batch still in flight.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
}

func (l *Loader) loadOne(gen uint64, e Entry) Thumb {
	img, err := imgio.Open(e.Path)
	if err != nil {
		klog.Warningf("decode %s: %v", e.Path, err)
		return Thumb{
			Gen:    gen,
			Path:   e.Path,
			Img:    Placeholder(l.opts),
			Failed: true,
			Err:    &DecodeError{Path: e.Path, Err: err},
		}
	}

	return Thumb{Gen: gen, Path: e.Path, Img: Fit(img, l.opts)}
}

// Fit scales an image to fit within the bounds of t, preserving aspect
// ratio. Small images are scaled up.
func Fit(i image.Image, t ThumbOpts) image.Image {
	sx := float64(i.Bounds().Dx()) / float64(t.X)
	sy := float64(i.Bounds().Dy()) / float64(t.Y)

	scale := sx
	if sy > sx {
		scale = sy
	}

	x := int(math.Round(float64(i.Bounds().Dx()) / scale))
	y := int(math.Round(float64(i.Bounds().Dy()) / scale))
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}

	return transform.Resize(i, x, y, transform.Lanczos)
}

// Placeholder returns the fixed stand-in bitmap used when a file cannot
// be decoded: a solid dark-gray cell at exactly the target size.
func Placeholder(t ThumbOpts) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, t.X, t.Y))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderColor}, image.Point{}, draw.Src)
	return img
}
