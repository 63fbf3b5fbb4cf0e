package cli

import (
	"context"
	"fmt"
	"strings"

	"wogger/internal/api"
	"wogger/internal/errors"
)

// SettingsCommand shows and edits settings.json.
//
//	settings [show]
//	settings set <key> <value>
//	settings reset
type SettingsCommand struct {
	api          api.API
	app          *App
	errorHandler *ErrorHandler
}

// NewSettingsCommand creates a new settings command handler
func NewSettingsCommand(app *App) *SettingsCommand {
	return &SettingsCommand{
		api:          app.api,
		app:          app,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the settings command
func (c *SettingsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.show()
	}

	switch args[0] {
	case "show":
		return c.show()
	case "set":
		if len(args) < 3 {
			return c.errorHandler.Handle("change setting",
				errors.NewInvalidInputError("args", strings.Join(args[1:], " "), "usage: settings set <key> <value>"))
		}
		key := args[1]
		value := strings.Join(args[2:], " ")
		if err := c.api.SetSetting(key, value); err != nil {
			return c.errorHandler.Handle("change setting", err)
		}
		fmt.Fprintf(c.app.out, "Saved %s = %s\n", key, value)
		return nil
	case "reset":
		if err := c.api.ResetSettings(); err != nil {
			return c.errorHandler.Handle("reset settings", err)
		}
		fmt.Fprintln(c.app.out, "Settings reset to defaults")
		return nil
	default:
		return c.errorHandler.Handle("change setting",
			errors.NewInvalidInputError("action", args[0], "expected show, set or reset"))
	}
}

func (c *SettingsCommand) show() error {
	fmt.Fprintln(c.app.out, c.app.renderer.Settings(c.api.SettingsPath(), c.api.SettingsEntries()))
	return nil
}
