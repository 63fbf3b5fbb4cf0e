package cli

import (
	"context"
	"fmt"

	"wogger/internal/api"
)

// WeekOptions are the flags of the week command
type WeekOptions struct {
	// Offset moves the week relative to the current one; -1 is last week.
	Offset int
	Chart  bool
}

// WeekCommand prints the week overview
type WeekCommand struct {
	api          api.API
	app          *App
	opts         *WeekOptions
	errorHandler *ErrorHandler
}

// NewWeekCommand creates a new week command handler
func NewWeekCommand(app *App, opts *WeekOptions) *WeekCommand {
	return &WeekCommand{
		api:          app.api,
		app:          app,
		opts:         opts,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the week command
func (c *WeekCommand) Execute(ctx context.Context, args []string) error {
	now := timeNow()
	anyDay := now.AddDate(0, 0, 7*c.opts.Offset)

	week, err := c.api.WeekOverview(anyDay)
	if err != nil {
		return c.errorHandler.Handle("show week", err)
	}

	fmt.Fprintln(c.app.out, c.app.renderer.WeekTable(week, now))
	if c.opts.Chart {
		fmt.Fprintln(c.app.out)
		fmt.Fprintln(c.app.out, c.app.renderer.WeekChart(week))
	}
	return nil
}
