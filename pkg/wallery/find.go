package wallery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

// imageExts is the allow-list of extensions considered browsable.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
}

// Scan returns the image entries of a single directory level, sorted by
// filename. Hidden files and unrecognized extensions are skipped. An
// unreadable directory returns a *DirAccessError and no entries.
func Scan(dir string) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &DirAccessError{Dir: dir, Err: err}
	}

	dirents, err := godirwalk.ReadDirents(abs, nil)
	if err != nil {
		return nil, &DirAccessError{Dir: abs, Err: err}
	}

	found := []Entry{}
	for _, de := range dirents {
		name := de.Name()
		if name[0] == '.' {
			continue
		}

		if !de.IsRegular() {
			continue
		}

		if !imageExts[strings.ToLower(filepath.Ext(name))] {
			klog.V(2).Infof("skipping %s: not an image", name)
			continue
		}

		path := filepath.Join(abs, name)
		fi, err := os.Stat(path)
		if err != nil {
			klog.Warningf("stat %s: %v", path, err)
			continue
		}

		klog.V(1).Infof("found %s", path)
		found = append(found, Entry{
			Path:    path,
			Name:    name,
			ModTime: fi.ModTime(),
			Size:    fi.Size(),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return found, nil
}
