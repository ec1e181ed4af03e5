package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("205"))

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(3).
			Foreground(lipgloss.Color("250"))

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("160"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	detailStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wallery"))

	if m.picking {
		b.WriteString("\n\n Choose an image folder (enter to select):\n\n")
		b.WriteString(m.picker.View())
		b.WriteString("\n" + dimStyle.Render(" q: quit"))
		return b.String()
	}

	b.WriteString(" " + m.dir)
	if m.current != "" {
		b.WriteString(dimStyle.Render("  wallpaper: " + m.current))
	}
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(dimStyle.Render("  no images here. o: choose folder, r: refresh, q: quit\n"))
		b.WriteString("\n" + m.status + "\n")
		return b.String()
	}

	listHeight := m.height - 6
	if listHeight < 3 {
		listHeight = 3
	}

	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}

	left := m.renderList(listWidth, listHeight)
	right := m.renderDetail(m.width-listWidth-6, listHeight)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	b.WriteString("\n" + m.statusLine())
	b.WriteString("\n" + dimStyle.Render(" enter: set wallpaper · o: folder · r: refresh · q: quit"))
	return b.String()
}

func (m Model) renderList(width int, height int) string {
	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}

	var b strings.Builder
	for i := start; i < len(m.entries) && i-start < height; i++ {
		e := m.entries[i]

		glyph := m.spin.View()
		if t, ok := m.thumbs[e.Path]; ok {
			glyph = "●"
			if t.Failed {
				glyph = failedStyle.Render("✗")
			}
		}

		name := e.Name
		if r := []rune(name); len(r) > width-6 && width > 7 {
			name = string(r[:width-7]) + "…"
		}

		line := glyph + " " + name
		if i == m.selected {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteByte('\n')
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m Model) renderDetail(width int, height int) string {
	e, ok := m.selectedEntry()
	if !ok || width < 10 {
		return ""
	}

	var b strings.Builder

	t, loaded := m.thumbs[e.Path]
	if loaded {
		b.WriteString(renderPreview(t.Img, width-4, height-7))
		b.WriteByte('\n')
	} else {
		b.WriteString(dimStyle.Render("loading " + m.spin.View()))
		b.WriteByte('\n')
	}

	b.WriteString(fmt.Sprintf("%s\n%d KiB · %s\n", e.Name, e.Size/1024, e.ModTime.Format("2006-01-02 15:04")))

	if meta, ok := m.metas[e.Path]; ok {
		b.WriteString(fmt.Sprintf("%dx%d", meta.Width, meta.Height))
		if meta.Model != "" {
			b.WriteString(" · " + strings.TrimSpace(meta.Make+" "+meta.Model))
		}
		if !meta.Taken.IsZero() {
			b.WriteString(" · " + meta.Taken.Format("2006-01-02"))
		}
		b.WriteByte('\n')
	}

	if loaded && t.Failed {
		b.WriteString(failedStyle.Render(t.Err.Error()) + "\n")
	}

	return detailStyle.Render(b.String())
}

func (m Model) statusLine() string {
	s := " " + m.status
	if m.pending > 0 {
		s += dimStyle.Render(fmt.Sprintf(" (%d left) ", m.pending)) + m.spin.View()
	}
	return s
}
