// Package render formats tasks, days and weeks for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wogger/internal/domain"
	"wogger/internal/repository/logfile"
	"wogger/internal/services"
	"wogger/internal/settings"
)

const minWidth = 20

// Renderer lays out output for a terminal of the given width
type Renderer struct {
	width int
}

// NewRenderer creates a Renderer; widths below 20 are raised to 20
func NewRenderer(width int) *Renderer {
	if width < minWidth {
		width = minWidth
	}
	return &Renderer{width: width}
}

// Width returns the layout width
func (r *Renderer) Width() int {
	return r.width
}

func (r *Renderer) rule() string {
	return mutedStyle.Render(strings.Repeat("─", r.width))
}

// TaskTable renders task name, index minutes and pretty total per row
func (r *Renderer) TaskTable(rows []services.TaskListing) string {
	if len(rows) == 0 {
		return mutedStyle.Render("No tasks logged yet")
	}

	nameWidth := lipgloss.Width("Task")
	for _, row := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
	}
	nameWidth = min(nameWidth, max(r.width-24, 8))

	lines := []string{
		headerStyle.Render(fmt.Sprintf("%s %8s  %s", padRight("Task", nameWidth), "Minutes", "Total")),
		r.rule(),
	}
	for _, row := range rows {
		name := padRight(truncate(row.Name, nameWidth), nameWidth)
		lines = append(lines, fmt.Sprintf("%s %8d  %s", name, row.Minutes, row.Pretty))
	}
	return strings.Join(lines, "\n")
}

// StatusLine renders the totals shown under the task table
func (r *Renderer) StatusLine(summary domain.TodaySummary) string {
	return mutedStyle.Render(fmt.Sprintf("Total in time_log.txt: %d min | Today so far: %d min",
		summary.TotalMinutes, summary.TodayMinutes))
}

// DayReport renders the minutes and tasks of one day
func (r *Renderer) DayReport(report *services.DayReport) string {
	o := report.Overview
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s %s", o.Weekday, o.Date)),
		fmt.Sprintf("Logged:   %d min", o.LoggedMinutes),
		fmt.Sprintf("Expected: %d min", o.ExpectedMinutes),
		fmt.Sprintf("Diff:     %s", difference(o.Difference())),
	}
	if len(report.Tasks) == 0 {
		lines = append(lines, mutedStyle.Render("No tasks logged"))
	} else {
		lines = append(lines, "Tasks:")
		for _, task := range report.Tasks {
			lines = append(lines, "  "+task)
		}
	}
	return strings.Join(lines, "\n")
}

// SkippedLines renders the malformed lines found in the log
func (r *Renderer) SkippedLines(path string, skipped []logfile.SkippedLine) string {
	if len(skipped) == 0 {
		return successStyle.Render(fmt.Sprintf("%s: no malformed lines", path))
	}
	lines := []string{warningStyle.Render(fmt.Sprintf("%s: %d malformed line(s)", path, len(skipped)))}
	for _, s := range skipped {
		lines = append(lines, fmt.Sprintf("%5d: %s", s.LineNumber, s.Text))
		lines = append(lines, mutedStyle.Render("       "+s.Reason))
	}
	return strings.Join(lines, "\n")
}

// Settings renders key = value pairs
func (r *Renderer) Settings(path string, entries []settings.KeyValue) string {
	keyWidth := 0
	for _, e := range entries {
		keyWidth = max(keyWidth, len(e.Key))
	}
	lines := []string{mutedStyle.Render(path)}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-*s = %s", keyWidth, e.Key, e.Value))
	}
	return strings.Join(lines, "\n")
}

// ValidationResult renders the outcome of a line check
func (r *Renderer) ValidationResult(line string, err error) string {
	if err == nil {
		return successStyle.Render("valid: ") + line
	}
	return errorStyle.Render("invalid: ") + line + "\n" + err.Error()
}

func difference(minutes int) string {
	text := fmt.Sprintf("%+d min", minutes)
	if minutes < 0 {
		return errorStyle.Render(text)
	}
	return successStyle.Render(text)
}

// padRight pads s with spaces to width terminal cells
func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// truncate cuts s to at most width terminal cells, ending in "…" when cut
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	b.WriteString("…")
	return b.String()
}
