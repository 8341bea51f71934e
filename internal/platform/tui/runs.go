package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/emoji-flappy/internal/platform/host"
)

// runsTable shows the controller's finished runs.
type runsTable struct {
	shown int // Runs currently loaded into the table
	table table.Model
}

func newRunsTable(width, height int) runsTable {
	r := runsTable{}
	r.table = r.createTable(width, height)
	return r
}

// createTable creates a new table with appropriate columns.
func (r *runsTable) createTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Best", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Ended by", Width: 10},
		{Title: "At", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-6, 3)),
		table.WithWidth(min(width-4, 60)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resize rebuilds the table for a new terminal size.
func (r *runsTable) resize(width, height int, runs []host.RunRecord) {
	r.table = r.createTable(width, height)
	r.setRuns(runs)
}

// sync reloads the rows when runs were added since the last call.
func (r *runsTable) sync(runs []host.RunRecord) {
	if len(runs) != r.shown {
		r.setRuns(runs)
	}
}

func (r *runsTable) setRuns(runs []host.RunRecord) {
	rows := make([]table.Row, len(runs))
	for i, rec := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", rec.Number),
			fmt.Sprintf("%d", rec.Score),
			fmt.Sprintf("%d", rec.Best),
			rec.Duration.Round(100 * time.Millisecond).String(),
			rec.Cause.String(),
			rec.EndedAt.Format("15:04:05"),
		}
	}
	r.table.SetRows(rows)
	r.table.GotoTop()
	r.shown = len(runs)
}

func (r runsTable) view(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUNS THIS SESSION", width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if r.shown == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(centerText(boxStyle.Render(emptyStyle.Render("No finished runs yet.")), width))
		return b.String()
	}

	b.WriteString(centerText(boxStyle.Render(r.table.View()), width))
	return b.String()
}

// centerText centers a (possibly multi-line) block within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
