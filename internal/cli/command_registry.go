package cli

import (
	"context"
	"sort"

	"wogger/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandOptions holds the per-command flag values
type CommandOptions struct {
	Log    LogOptions
	List   ListOptions
	Week   WeekOptions
	Export ExportOptions
	Reset  ResetOptions
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App, opts *CommandOptions) *CommandRegistry {
	if opts == nil {
		opts = &CommandOptions{}
	}
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("log", NewLogCommand(app, &opts.Log))
	registry.Register("add", NewAddCommand(app))
	registry.Register("check", NewCheckCommand(app))
	registry.Register("list", NewListCommand(app, &opts.List))
	registry.Register("total", NewTotalCommand(app))
	registry.Register("day", NewDayCommand(app))
	registry.Register("week", NewWeekCommand(app, &opts.Week))
	registry.Register("export", NewExportCommand(app, &opts.Export))
	registry.Register("reset", NewResetCommand(app, &opts.Reset))
	registry.Register("lint", NewLintCommand(app))
	registry.Register("folder", NewFolderCommand(app))
	registry.Register("settings", NewSettingsCommand(app))
	registry.Register("watch", NewWatchCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in sorted order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
