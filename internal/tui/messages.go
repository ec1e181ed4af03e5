package tui

import (
	"github.com/fsnotify/fsnotify"

	"wallery/pkg/wallery"
)

// scanMsg carries the outcome of one folder scan.
type scanMsg struct {
	dir     string
	entries []wallery.Entry
	err     error
}

// thumbMsg carries one finished thumbnail from the loader.
type thumbMsg wallery.Thumb

// applyMsg carries the outcome of a set-wallpaper request.
type applyMsg struct {
	path   string
	staged string
	err    error
}

// metaMsg carries EXIF details loaded for one image.
type metaMsg struct {
	path string
	meta wallery.Meta
	err  error
}

// watchMsg signals a filesystem change inside the current folder.
type watchMsg fsnotify.Event

// watchErrMsg signals a watcher failure.
type watchErrMsg error
