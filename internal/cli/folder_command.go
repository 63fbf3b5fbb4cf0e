package cli

import (
	"context"
	"fmt"

	"wogger/internal/api"
)

// LintCommand re-reads the log and lists the lines that could not be parsed
type LintCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewLintCommand creates a new lint command handler
func NewLintCommand(app *App) *LintCommand {
	return &LintCommand{
		api:          app.api,
		app:          app,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the lint command
func (c *LintCommand) Execute(ctx context.Context, args []string) error {
	skipped, err := c.api.Reload()
	if err != nil {
		return c.errorHandler.Handle("read log", err)
	}
	fmt.Fprintln(c.app.out, c.app.renderer.SkippedLines(c.api.LogPath(), skipped))
	return nil
}

// FolderCommand prints where the log and settings live
type FolderCommand struct {
	api api.API
	app *App
}

// NewFolderCommand creates a new folder command handler
func NewFolderCommand(app *App) *FolderCommand {
	return &FolderCommand{
		api: app.api,
		app: app,
	}
}

// Execute runs the folder command
func (c *FolderCommand) Execute(ctx context.Context, args []string) error {
	fmt.Fprintf(c.app.out, "Data folder: %s\n", c.api.DataDir())
	fmt.Fprintf(c.app.out, "Log file:    %s\n", c.api.LogPath())
	fmt.Fprintf(c.app.out, "Settings:    %s\n", c.api.SettingsPath())
	return nil
}
