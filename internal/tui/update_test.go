package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"wallery/pkg/wallery"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg(tea.Key{Type: tea.KeyEnter})
	}
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func testModel(t *testing.T) Model {
	t.Helper()

	cfg := &wallery.Config{Dir: "/pics", Thumb: wallery.DefaultThumbOpts, Workers: 1}
	l := wallery.NewLoader(cfg.Thumb, cfg.Workers)
	t.Cleanup(l.Close)

	return New(cfg, l, nil, nil)
}

func TestScanErrorKeepsGallery(t *testing.T) {
	m := testModel(t)
	m.entries = []wallery.Entry{{Path: "/pics/a.jpg", Name: "a.jpg"}}
	m.thumbs["/pics/a.jpg"] = wallery.Thumb{Path: "/pics/a.jpg"}

	scanErr := &wallery.DirAccessError{Dir: "/pics", Err: errors.New("permission denied")}
	next, _ := m.Update(scanMsg{dir: "/pics", err: scanErr})
	got := next.(Model)

	if len(got.entries) != 1 || len(got.thumbs) != 1 {
		t.Errorf("failed scan mutated the gallery: %d entries, %d thumbs", len(got.entries), len(got.thumbs))
	}
	if !strings.Contains(got.status, "permission denied") {
		t.Errorf("status = %q, want the scan error surfaced", got.status)
	}
}

func TestScanReplacesGallery(t *testing.T) {
	m := testModel(t)
	m.entries = []wallery.Entry{{Path: "/pics/old.jpg", Name: "old.jpg"}}
	m.thumbs["/pics/old.jpg"] = wallery.Thumb{Path: "/pics/old.jpg"}
	m.selected = 0

	entries := []wallery.Entry{
		{Path: "/pics/a.jpg", Name: "a.jpg"},
		{Path: "/pics/b.jpg", Name: "b.jpg"},
	}
	next, _ := m.Update(scanMsg{dir: "/pics", entries: entries})
	got := next.(Model)

	if len(got.entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(got.entries))
	}
	if len(got.thumbs) != 0 {
		t.Errorf("old thumbnails survived the rescan")
	}
	if got.gen == 0 {
		t.Errorf("rescan did not start a new generation")
	}
	if got.pending != 2 {
		t.Errorf("pending = %d, want 2", got.pending)
	}
}

func TestStaleScanDropped(t *testing.T) {
	m := testModel(t)
	m.dir = "/pics"
	m.entries = []wallery.Entry{{Path: "/pics/a.jpg", Name: "a.jpg"}}

	next, _ := m.Update(scanMsg{dir: "/elsewhere", entries: []wallery.Entry{}})
	got := next.(Model)

	if len(got.entries) != 1 {
		t.Errorf("scan result for a departed folder was applied")
	}
}

func TestStaleThumbDropped(t *testing.T) {
	m := testModel(t)
	m.gen = 2

	next, cmd := m.Update(thumbMsg(wallery.Thumb{Gen: 1, Path: "/pics/a.jpg"}))
	got := next.(Model)

	if _, ok := got.thumbs["/pics/a.jpg"]; ok {
		t.Error("stale-generation thumbnail was stored")
	}
	if cmd == nil {
		t.Error("model stopped listening for thumbnails")
	}
}

func TestCurrentThumbStored(t *testing.T) {
	m := testModel(t)
	m.gen = 2
	m.pending = 1

	next, cmd := m.Update(thumbMsg(wallery.Thumb{Gen: 2, Path: "/pics/a.jpg"}))
	got := next.(Model)

	if _, ok := got.thumbs["/pics/a.jpg"]; !ok {
		t.Error("current-generation thumbnail was not stored")
	}
	if got.pending != 0 {
		t.Errorf("pending = %d, want 0", got.pending)
	}
	if cmd == nil {
		t.Error("model stopped listening for thumbnails")
	}
}

func TestApplyFailureLeavesState(t *testing.T) {
	m := testModel(t)
	m.current = `C:\old.jpg`

	next, _ := m.Update(applyMsg{path: "/pics/a.jpg", err: errors.New("os rejected it")})
	got := next.(Model)

	if got.current != `C:\old.jpg` {
		t.Errorf("current wallpaper changed on failure: %s", got.current)
	}
	if !strings.Contains(got.status, "os rejected it") {
		t.Errorf("status = %q, want the apply error surfaced", got.status)
	}
}

func TestApplySuccessUpdatesCurrent(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(applyMsg{path: "/pics/a.jpg", staged: "/cache/a.jpg"})
	got := next.(Model)

	if got.current != "/cache/a.jpg" {
		t.Errorf("current = %q, want the staged path", got.current)
	}
}

func TestEnterRequiresLoadedThumb(t *testing.T) {
	m := testModel(t)
	m.entries = []wallery.Entry{{Path: "/pics/a.jpg", Name: "a.jpg"}}
	m.thumbs["/pics/a.jpg"] = wallery.Thumb{
		Path:   "/pics/a.jpg",
		Failed: true,
		Err:    &wallery.DecodeError{Path: "/pics/a.jpg", Err: errors.New("short read")},
	}

	next, cmd := m.handleKey(keyMsg("enter"))
	got := next.(Model)

	if cmd != nil {
		t.Error("enter on a failed thumbnail dispatched a set-wallpaper command")
	}
	if !strings.Contains(got.status, "cannot set") {
		t.Errorf("status = %q, want a refusal", got.status)
	}
}
