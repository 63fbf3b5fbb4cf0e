package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wogger/internal/api"
	"wogger/internal/errors"
	"wogger/internal/timecalc"
)

// LogOptions are the flags of the log command
type LogOptions struct {
	Date  string
	Start string
	End   string
}

// LogCommand records a task for an interval of the day
type LogCommand struct {
	api          api.API
	app          *App
	opts         *LogOptions
	errorHandler *ErrorHandler
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App, opts *LogOptions) *LogCommand {
	return &LogCommand{
		api:          app.api,
		app:          app,
		opts:         opts,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the log command. The task name is the joined arguments; the
// end time defaults to the current minute.
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	task := strings.Join(args, " ")

	if strings.TrimSpace(c.opts.Start) == "" {
		return c.errorHandler.Handle("log work", errors.NewInvalidInputError("start", "", "--start HH:MM is required"))
	}

	day, err := parseDay([]string{c.opts.Date})
	if err != nil {
		return c.errorHandler.Handle("log work", err)
	}

	start, err := atClock(day, c.opts.Start)
	if err != nil {
		return c.errorHandler.Handle("log work", err)
	}

	endClock := c.opts.End
	if strings.TrimSpace(endClock) == "" {
		endClock = timecalc.FormatClock(timeNow().Truncate(time.Minute))
	}
	end, err := atClock(day, endClock)
	if err != nil {
		return c.errorHandler.Handle("log work", err)
	}

	entry, err := c.api.LogWorkItem(task, start, end)
	if err != nil {
		return c.errorHandler.Handle("log work", err)
	}

	fmt.Fprintf(c.app.out, "Logged: %s (%d min)\n", entry.Line(), entry.Minutes)
	return nil
}
