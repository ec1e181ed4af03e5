// wallery is a terminal gallery for browsing a folder of images and
// setting one as the desktop wallpaper.
package main

import (
	goflag "flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"k8s.io/klog/v2"

	"wallery/internal/tui"
	"wallery/pkg/wallery"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wallery [options]\n\n")
		fmt.Fprintf(os.Stderr, "Browse a folder of images and set one as the desktop wallpaper.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	dir := pflag.StringP("dir", "d", "", "folder of images to browse (default: choose interactively)")
	workers := pflag.IntP("workers", "w", 2, "concurrent thumbnail decodes")
	exif := pflag.BoolP("exif", "e", false, "show EXIF details for the selected image (requires exiftool)")
	versionFlag := pflag.BoolP("version", "V", false, "print version information")
	updateFlag := pflag.BoolP("update", "u", false, "check for a newer release")

	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	if *versionFlag {
		fmt.Printf("wallery version %s\n", wallery.Version)
		return
	}

	if *updateFlag {
		checkUpdate(wallery.Version)
		return
	}

	c := &wallery.Config{
		Dir:     *dir,
		Thumb:   wallery.DefaultThumbOpts,
		Workers: *workers,
		Exif:    *exif,
	}

	loader := wallery.NewLoader(c.Thumb, c.Workers)
	defer loader.Close()

	var meta *wallery.MetaReader
	if c.Exif {
		m, err := wallery.NewMetaReader()
		if err != nil {
			klog.Warningf("EXIF details disabled: %v", err)
		} else {
			meta = m
			defer meta.Close()
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		klog.Warningf("folder watching disabled: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
		if c.Dir != "" {
			if err := watcher.Add(c.Dir); err != nil {
				klog.Warningf("unable to watch %s: %v", c.Dir, err)
			}
		}
	}

	m := tui.New(c, loader, meta, watcher)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		klog.Exitf("run failed: %v", err)
	}
}

// checkUpdate compares the running version against the latest release.
func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "wallery",
		Repository: "wallery",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("a new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Printf("you are using the latest version: %s\n", currentVer)
	}
}
