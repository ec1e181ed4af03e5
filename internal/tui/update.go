package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"wallery/pkg/wallery"
)

// Update handles events. Thumbnails arrive here as messages tagged with
// their scan generation; anything from a superseded scan is dropped on
// arrival so a refresh never shows stale results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.picking {
			return m.updatePicker(msg)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scanMsg:
		return m.handleScan(msg)

	case thumbMsg:
		return m.handleThumb(msg)

	case applyMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.current = msg.staged
		m.status = "wallpaper set: " + filepath.Base(msg.path)
		return m, nil

	case metaMsg:
		if msg.err == nil {
			m.metas[msg.path] = msg.meta
		}
		return m, nil

	case watchMsg:
		ev := fsnotify.Event(msg)
		cmds := []tea.Cmd{waitForWatch(m.watcher)}
		if m.dir != "" && (ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
			ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)) {
			m.status = "folder changed, refreshing"
			cmds = append(cmds, scanCmd(m.dir))
		}
		return m, tea.Batch(cmds...)

	case watchErrMsg:
		m.status = fmt.Sprintf("watch error: %v", error(msg))
		return m, waitForWatch(m.watcher)

	case tea.KeyMsg:
		if m.picking {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc":
				if m.dir != "" {
					m.picking = false
					return m, nil
				}
			}
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)
	}

	// Everything else feeds the picker, which drives itself with its
	// own internal messages.
	if m.picking {
		return m.updatePicker(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, m.selectCmd()

	case "down", "j":
		if m.selected < len(m.entries)-1 {
			m.selected++
		}
		return m, m.selectCmd()

	case "g":
		m.selected = 0
		return m, m.selectCmd()

	case "G":
		if len(m.entries) > 0 {
			m.selected = len(m.entries) - 1
		}
		return m, m.selectCmd()

	case "enter":
		e, ok := m.selectedEntry()
		if !ok {
			return m, nil
		}
		t, loaded := m.thumbs[e.Path]
		if !loaded || t.Failed {
			m.status = "cannot set " + e.Name + ": image has not loaded"
			return m, nil
		}
		m.status = "setting wallpaper..."
		return m, applyCmd(e.Path)

	case "o":
		m.picking = true
		return m, m.picker.Init()

	case "r":
		if m.dir == "" {
			return m, nil
		}
		m.status = "refreshing"
		return m, scanCmd(m.dir)
	}

	return m, nil
}

func (m Model) handleScan(msg scanMsg) (tea.Model, tea.Cmd) {
	// A scan for a folder we already navigated away from.
	if msg.dir != m.dir {
		return m, nil
	}

	if msg.err != nil {
		// Prior gallery contents are kept as-is.
		m.status = msg.err.Error()
		return m, nil
	}

	m.entries = msg.entries
	m.thumbs = map[string]wallery.Thumb{}
	m.selected = 0
	m.gen = m.loader.Load(msg.entries)
	m.pending = len(msg.entries)

	if len(msg.entries) == 0 {
		m.status = "no images found in " + msg.dir
	} else {
		m.status = fmt.Sprintf("found %d images, loading thumbnails", len(msg.entries))
	}

	return m, m.selectCmd()
}

func (m Model) handleThumb(msg thumbMsg) (tea.Model, tea.Cmd) {
	listen := waitForThumb(m.loader.Results())

	t := wallery.Thumb(msg)
	if t.Gen != m.gen {
		// Left over from a superseded scan.
		return m, listen
	}

	m.thumbs[t.Path] = t
	if m.pending > 0 {
		m.pending--
	}

	if t.Failed {
		m.status = "could not load " + filepath.Base(t.Path)
	}
	if m.pending == 0 {
		m.status = fmt.Sprintf("loaded %d thumbnails", len(m.thumbs))
	}

	return m, listen
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, dir := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		return m.changeDir(dir, cmd)
	}

	return m, cmd
}

func (m Model) changeDir(dir string, extra tea.Cmd) (tea.Model, tea.Cmd) {
	if m.watcher != nil {
		if m.dir != "" {
			_ = m.watcher.Remove(m.dir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.status = fmt.Sprintf("watch %s: %v", dir, err)
		}
	}

	m.dir = dir
	m.status = "scanning " + dir
	return m, tea.Batch(scanCmd(dir), extra)
}

func (m Model) selectedEntry() (wallery.Entry, bool) {
	if len(m.entries) == 0 || m.selected >= len(m.entries) {
		return wallery.Entry{}, false
	}
	return m.entries[m.selected], true
}

// selectCmd fetches EXIF details for the newly selected image, when a
// metadata reader is available and the details are not cached yet.
func (m Model) selectCmd() tea.Cmd {
	if m.meta == nil {
		return nil
	}

	e, ok := m.selectedEntry()
	if !ok {
		return nil
	}
	if _, cached := m.metas[e.Path]; cached {
		return nil
	}

	return metaCmd(m.meta, e.Path)
}

func scanCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := wallery.Scan(dir)
		return scanMsg{dir: dir, entries: entries, err: err}
	}
}

func waitForThumb(ch <-chan wallery.Thumb) tea.Cmd {
	return func() tea.Msg {
		return thumbMsg(<-ch)
	}
}

func waitForWatch(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			return watchMsg(ev)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg(err)
		}
	}
}

func applyCmd(path string) tea.Cmd {
	return func() tea.Msg {
		staged, err := wallery.Apply(path)
		return applyMsg{path: path, staged: staged, err: err}
	}
}

func metaCmd(r *wallery.MetaReader, path string) tea.Cmd {
	return func() tea.Msg {
		meta, err := r.Read(path)
		return metaMsg{path: path, meta: meta, err: err}
	}
}
