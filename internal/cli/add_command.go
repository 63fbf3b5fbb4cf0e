package cli

import (
	"context"
	"fmt"
	"strings"

	"wogger/internal/api"
	"wogger/internal/errors"
)

// AddCommand appends a manually written log line
type AddCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		api:          app.api,
		app:          app,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	line := strings.TrimSpace(strings.Join(args, " "))
	if line == "" {
		return c.errorHandler.Handle("add line", errors.NewInvalidInputError("line", "", "a log line is required"))
	}

	if err := c.api.AppendLine(line); err != nil {
		return c.errorHandler.Handle("add line", err)
	}

	fmt.Fprintf(c.app.out, "Added: %s\n", line)
	return nil
}

// CheckCommand validates a log line without writing it
type CheckCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewCheckCommand creates a new check command handler
func NewCheckCommand(app *App) *CheckCommand {
	return &CheckCommand{
		api:          app.api,
		app:          app,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the check command. An invalid line is reported and returned
// as an error so the exit status is non-zero.
func (c *CheckCommand) Execute(ctx context.Context, args []string) error {
	line := strings.TrimSpace(strings.Join(args, " "))

	err := c.api.CheckLine(line)
	fmt.Fprintln(c.app.out, c.app.renderer.ValidationResult(line, c.errorHandler.HandleSimple(err)))
	if err != nil {
		return errors.NewValidationError("line is not valid", err)
	}
	return nil
}
