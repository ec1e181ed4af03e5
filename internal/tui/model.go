package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"wallery/pkg/desktop"
	"wallery/pkg/wallery"
)

// Model holds the gallery state. The displayed entry list and thumbnail
// map are only ever mutated here, on the event loop; background workers
// communicate through messages.
type Model struct {
	cfg     *wallery.Config
	loader  *wallery.Loader
	meta    *wallery.MetaReader // nil when exiftool is unavailable
	watcher *fsnotify.Watcher   // nil when watching is disabled

	dir      string
	gen      uint64
	entries  []wallery.Entry
	thumbs   map[string]wallery.Thumb
	metas    map[string]wallery.Meta
	selected int
	pending  int
	status   string
	current  string // wallpaper the OS reports as active

	picking bool
	picker  filepicker.Model
	spin    spinner.Model

	width  int
	height int
}

// New builds the initial model. When cfg.Dir is empty the folder picker
// is shown first.
func New(cfg *wallery.Config, loader *wallery.Loader, meta *wallery.MetaReader, watcher *fsnotify.Watcher) Model {
	fp := filepicker.New()
	fp.DirAllowed = true
	fp.FileAllowed = false
	if home, err := os.UserHomeDir(); err == nil {
		fp.CurrentDirectory = home
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	current, _ := desktop.Current()

	return Model{
		cfg:     cfg,
		loader:  loader,
		meta:    meta,
		watcher: watcher,
		dir:     cfg.Dir,
		thumbs:  map[string]wallery.Thumb{},
		metas:   map[string]wallery.Meta{},
		status:  "ready",
		current: current,
		picking: cfg.Dir == "",
		picker:  fp,
		spin:    sp,
	}
}

// Init starts the background listeners and, when a folder was given on
// the command line, the first scan.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick, waitForThumb(m.loader.Results())}

	if m.watcher != nil {
		cmds = append(cmds, waitForWatch(m.watcher))
	}

	if m.picking {
		cmds = append(cmds, m.picker.Init())
	} else {
		cmds = append(cmds, scanCmd(m.dir))
	}

	return tea.Batch(cmds...)
}
