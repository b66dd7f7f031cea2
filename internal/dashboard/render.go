package dashboard

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	assignedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	newStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	sourceStyle   = lipgloss.NewStyle().Faint(true)
)

// Renderer draws the board as a terminal table, one line per row, colored by
// row class. Presentation only.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

const clearScreen = "\033[2J\033[H"

func (r *Renderer) Render(b *Board) {
	rows := b.Rows()

	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(headerStyle.Render(formatLine("ID", "DESCRIPTION", "STATUS", "ASSIGNEE", "SOURCE")))
	sb.WriteByte('\n')

	if len(rows) == 0 {
		sb.WriteString(sourceStyle.Render("no tasks in progress"))
		sb.WriteByte('\n')
	}

	for _, row := range rows {
		style := newStyle
		if row.Class == ClassAssigned {
			style = assignedStyle
		}
		line := formatLine(row.ID, row.Description, row.Status, row.Assignee, string(row.Source))
		sb.WriteString(style.Render(line))
		sb.WriteByte('\n')
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, sb.String())
}

func formatLine(id, description, status, assignee, source string) string {
	return fmt.Sprintf("%-36s  %-40s  %-12s  %-28s  %s",
		truncate(id, 36), truncate(description, 40), truncate(status, 12), truncate(assignee, 28), source)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
