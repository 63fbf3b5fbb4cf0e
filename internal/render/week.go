package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"wogger/internal/domain"
	"wogger/internal/timecalc"
)

const (
	progressWidth = 10
	chartHeight   = 12
)

// WeekTable renders one row per day with expected and logged minutes, a
// progress bar and the difference. The row for today is highlighted.
func (r *Renderer) WeekTable(week domain.WeekOverview, today time.Time) string {
	end := week.Start.AddDate(0, 0, 6)
	todayStr := timecalc.FormatDate(today)

	lines := []string{
		titleStyle.Render(fmt.Sprintf("%s to %s", timecalc.FormatDate(week.Start), timecalc.FormatDate(end))),
		headerStyle.Render(fmt.Sprintf("%-10s %-10s %8s %8s  %-*s %s",
			"Day", "Date", "Expected", "Logged", progressWidth+2, "Progress", "Diff")),
		r.rule(),
	}
	for _, day := range week.Days {
		row := fmt.Sprintf("%-10s %-10s %8d %8d  %s %s",
			day.Weekday, day.Date, day.ExpectedMinutes, day.LoggedMinutes,
			ProgressBar(day.Ratio(), progressWidth), difference(day.Difference()))
		if day.Date == todayStr {
			row = highlightStyle.Render(row)
		}
		lines = append(lines, row)
	}
	lines = append(lines, r.rule())
	lines = append(lines, fmt.Sprintf("%-21s %8d %8d  %*s %s",
		"Week", week.ExpectedMinutes(), week.LoggedMinutes(), progressWidth+2, "", difference(week.Difference())))

	return panelStyle.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders ratio as a bar of width cells; ratios above 1 are full
func ProgressBar(ratio float64, width int) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio*float64(width) + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// WeekChart draws logged hours per day as a bar chart. Days that reach
// their schedule are green, the others amber.
func (r *Renderer) WeekChart(week domain.WeekOverview) string {
	barWidth := max((r.width-6)/7, 1)
	chart := barchart.New(r.width, chartHeight,
		barchart.WithBarWidth(barWidth),
		barchart.WithBarGap(1))

	bars := make([]barchart.BarData, 0, len(week.Days))
	for _, day := range week.Days {
		style := lipgloss.NewStyle().Foreground(colorWarning)
		if day.Difference() >= 0 {
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		}
		label := day.Weekday
		if len(label) > 3 {
			label = label[:3]
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  day.Date,
				Value: float64(max(day.LoggedMinutes, 0)) / 60.0,
				Style: style,
			}},
		})
	}

	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}
