package cli

import (
	"context"
	"fmt"
	"strings"

	"wogger/internal/api"
	"wogger/internal/errors"
)

// ListOptions are the flags of the list command
type ListOptions struct {
	Today bool
}

// ListCommand prints the task table and the status line
type ListCommand struct {
	api          api.API
	app          *App
	opts         *ListOptions
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App, opts *ListOptions) *ListCommand {
	return &ListCommand{
		api:          app.api,
		app:          app,
		opts:         opts,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	now := timeNow()

	rows, err := c.api.TaskListing(c.opts.Today, now)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	summary, err := c.api.TodaySummary(now)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	fmt.Fprintln(c.app.out, c.app.renderer.TaskTable(rows))
	fmt.Fprintln(c.app.out)
	fmt.Fprintln(c.app.out, c.app.renderer.StatusLine(summary))

	if c.api.Settings().ShowWeekOverview {
		week, err := c.api.WeekOverview(now)
		if err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
		fmt.Fprintln(c.app.out)
		fmt.Fprintln(c.app.out, c.app.renderer.WeekTable(week, now))
	}
	return nil
}

// TotalCommand prints the formatted total of one task or of all tasks
type TotalCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewTotalCommand creates a new total command handler
func NewTotalCommand(app *App) *TotalCommand {
	return &TotalCommand{
		api:          app.api,
		app:          app,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the total command
func (c *TotalCommand) Execute(ctx context.Context, args []string) error {
	var task *string
	label := "Total"
	if name := strings.TrimSpace(strings.Join(args, " ")); name != "" {
		task = &name
		label = name
	}

	total, err := c.api.PrettyTotal(task)
	if err != nil {
		return c.errorHandler.Handle("compute total", err)
	}
	fmt.Fprintf(c.app.out, "%s: %s\n", label, total)
	return nil
}

// DayCommand prints the minutes, tasks and schedule difference of a day
type DayCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewDayCommand creates a new day command handler
func NewDayCommand(app *App) *DayCommand {
	return &DayCommand{
		api:          app.api,
		app:          app,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the day command
func (c *DayCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return c.errorHandler.Handle("show day", errors.NewInvalidInputError("date", strings.Join(args, " "), "expected a single YYYY-MM-DD date"))
	}
	day, err := parseDay(args)
	if err != nil {
		return c.errorHandler.Handle("show day", err)
	}

	report, err := c.api.DayReport(day)
	if err != nil {
		return c.errorHandler.Handle("show day", err)
	}
	fmt.Fprintln(c.app.out, c.app.renderer.DayReport(report))
	return nil
}
