package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"wogger/internal/api"
	"wogger/internal/errors"
	"wogger/internal/repository/logfile"
	"wogger/internal/services"
)

// ExportOptions are the flags of the export command
type ExportOptions struct {
	Format string
}

// ExportCommand writes the log to a csv, json or sqlite file
type ExportCommand struct {
	api          api.API
	app          *App
	opts         *ExportOptions
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App, opts *ExportOptions) *ExportCommand {
	return &ExportCommand{
		api:          app.api,
		app:          app,
		opts:         opts,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	name := c.opts.Format
	if name == "" {
		name = c.app.config.Commands.ExportDefaultFormat
	}
	format, err := services.ParseExportFormat(name)
	if err != nil {
		return c.errorHandler.Handle("export", err)
	}

	path, err := c.api.Export(ctx, format, timeNow())
	if err != nil {
		return c.errorHandler.Handle("export", err)
	}
	fmt.Fprintf(c.app.out, "Exported to %s\n", path)
	return nil
}

// ResetOptions are the flags of the reset command
type ResetOptions struct {
	Yes bool
}

// ResetCommand moves time_log.txt to a timestamped backup
type ResetCommand struct {
	api          api.API
	app          *App
	opts         *ResetOptions
	errorHandler *ErrorHandler
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App, opts *ResetOptions) *ResetCommand {
	return &ResetCommand{
		api:          app.api,
		app:          app,
		opts:         opts,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	if !c.opts.Yes {
		return c.errorHandler.Handle("reset log",
			errors.NewInvalidInputError("yes", false, "pass --yes to move time_log.txt to a backup"))
	}

	backup, err := c.api.Reset(timeNow())
	if err != nil {
		return c.errorHandler.Handle("reset log", err)
	}
	if backup == "" {
		fmt.Fprintf(c.app.out, "No %s to reset in %s\n", logfile.FileName, c.api.DataDir())
		return nil
	}
	fmt.Fprintf(c.app.out, "Moved %s to %s\n", logfile.FileName, filepath.Base(backup))
	return nil
}
