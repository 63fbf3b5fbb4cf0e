package cli

import (
	"context"
	"fmt"

	"wogger/internal/api"
	"wogger/internal/logging"
	"wogger/internal/prompt"
	"wogger/internal/schedule"
	"wogger/internal/timecalc"
)

// WatchCommand prompts for the current task at every popup_cron firing and
// logs the answer for the interval that just ended
type WatchCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App) *WatchCommand {
	return &WatchCommand{
		api:          app.api,
		app:          app,
		errorHandler: app.errorHandler,
	}
}

// Execute runs until the context is done or the prompt is aborted
func (c *WatchCommand) Execute(ctx context.Context, args []string) error {
	cadence := c.api.Settings().PopupCron
	scheduler, err := c.app.newScheduler(cadence)
	if err != nil {
		return c.errorHandler.Handle("start watch", err)
	}

	if timeout := c.app.config.Watch.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fmt.Fprintf(c.app.out, "Watching %q, logging to %s (Ctrl+C to stop)\n", scheduler.Expression(), c.api.LogPath())

	err = scheduler.Run(ctx, c.handleInterval)
	switch {
	case err == nil:
		return nil
	case prompt.IsAborted(err):
		fmt.Fprintln(c.app.out, "Stopped watching")
		return nil
	case ctx.Err() != nil:
		logging.Debugf("watch finished: %v\n", ctx.Err())
		return nil
	default:
		return c.errorHandler.Handle("watch", err)
	}
}

func (c *WatchCommand) handleInterval(ctx context.Context, interval schedule.Interval) error {
	// The file may have been edited by hand since the last prompt.
	if _, err := c.api.Reload(); err != nil {
		return err
	}

	task, err := c.app.prompter.AskTask(ctx, interval, c.api.Tasks())
	if err != nil {
		return err
	}

	entry, err := c.api.LogWorkItem(task, interval.Start, interval.End)
	if err != nil {
		if c.errorHandler.IsIntervalError(err) {
			fmt.Fprintf(c.app.out, "Skipped %s: %s. Add it by hand with \"wogger add\".\n",
				prompt.Title(interval), c.errorHandler.HandleSimple(err))
			return nil
		}
		return err
	}

	fmt.Fprintf(c.app.out, "[%s] Logged: %s\n", timecalc.FormatClock(interval.End), entry.Line())
	return nil
}
