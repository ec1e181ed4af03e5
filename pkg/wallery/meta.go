package wallery

import (
	"fmt"
	"time"

	"github.com/barasher/go-exiftool"
	"k8s.io/klog/v2"
)

var exifDate = "2006:01:02 15:04:05"

// Meta is the EXIF subset shown in the gallery detail pane.
type Meta struct {
	Make   string
	Model  string
	Width  int64
	Height int64
	Taken  time.Time
}

// MetaReader extracts image metadata via exiftool. It holds a running
// exiftool process; Close releases it.
type MetaReader struct {
	et *exiftool.Exiftool
}

// NewMetaReader starts an exiftool session. Callers treat a failure as
// "no metadata available" rather than fatal.
func NewMetaReader() (*MetaReader, error) {
	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	return &MetaReader{et: et}, nil
}

// Read extracts metadata for a single image.
func (r *MetaReader) Read(path string) (Meta, error) {
	m := Meta{}

	fis := r.et.ExtractMetadata(path)
	fi := fis[0]
	if fi.Err != nil {
		return m, fmt.Errorf("extract fail for %q: %w", path, fi.Err)
	}

	var err error
	m.Make, err = fi.GetString("Make")
	if err != nil {
		klog.V(1).Infof("unable to get make for %s: %v", path, err)
	}

	m.Model, err = fi.GetString("Model")
	if err != nil {
		klog.V(1).Infof("unable to get model for %s: %v", path, err)
	}

	m.Width, err = fi.GetInt("ImageWidth")
	if err != nil {
		return m, fmt.Errorf("get ImageWidth: %w", err)
	}

	m.Height, err = fi.GetInt("ImageHeight")
	if err != nil {
		return m, fmt.Errorf("get ImageHeight: %w", err)
	}

	ds, err := fi.GetString("DateTimeOriginal")
	if err != nil {
		klog.V(1).Infof("unable to get date time for %s: %v", path, err)
		return m, nil
	}

	m.Taken, err = time.Parse(exifDate, ds)
	if err != nil {
		return m, fmt.Errorf("parse time %q: %w", ds, err)
	}

	return m, nil
}

// Close shuts down the exiftool session.
func (r *MetaReader) Close() {
	if err := r.et.Close(); err != nil {
		klog.Warningf("exiftool close: %v", err)
	}
}
