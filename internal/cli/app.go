package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"wogger/internal/api"
	"wogger/internal/config"
	"wogger/internal/prompt"
	"wogger/internal/render"
	"wogger/internal/schedule"
	"wogger/internal/settings"
	"wogger/internal/timecalc"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries the dependencies shared by the command handlers
type App struct {
	api          api.API
	config       *config.Config
	out          io.Writer
	renderer     *render.Renderer
	prompter     prompt.Prompter
	newScheduler func(expr string) (*schedule.Scheduler, error)
	errorHandler *ErrorHandler
}

// AppOption configures an App
type AppOption func(*App)

// WithOutput sets where command output is written
func WithOutput(w io.Writer) AppOption {
	return func(a *App) {
		a.out = w
	}
}

// WithPrompter replaces the interactive prompt used by watch
func WithPrompter(p prompt.Prompter) AppOption {
	return func(a *App) {
		a.prompter = p
	}
}

// WithSchedulerFactory replaces how watch builds its scheduler
func WithSchedulerFactory(fn func(expr string) (*schedule.Scheduler, error)) AppOption {
	return func(a *App) {
		a.newScheduler = fn
	}
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		api:          apiInstance,
		config:       cfg,
		out:          os.Stdout,
		renderer:     render.NewRenderer(cfg.Display.Width),
		newScheduler: func(expr string) (*schedule.Scheduler, error) { return schedule.New(expr) },
		errorHandler: NewErrorHandler(),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.prompter == nil {
		app.prompter = prompt.NewHuhPrompter(
			prompt.WithSound(func() bool { return apiInstance.Settings().SoundOn }))
	}
	return app
}

// NewAppWithDefaultStore loads settings.json from the configured location
// and creates the application over it
func NewAppWithDefaultStore(cfg *config.Config, opts ...AppOption) (*App, error) {
	storeOpts := []settings.Option{
		settings.WithDirPermissions(os.FileMode(cfg.Data.DirPermissions)),
	}
	if cfg.Data.Dir != "" {
		storeOpts = append(storeOpts, settings.WithDataDirOverride(cfg.Data.Dir))
	}

	store := settings.NewStore(cfg.GetSettingsPath(), cfg.ResolveDataDir(""), storeOpts...)
	if err := store.Load(); err != nil {
		return nil, err
	}

	apiInstance, err := api.New(store)
	if err != nil {
		return nil, err
	}
	return NewApp(apiInstance, cfg, opts...), nil
}

// parseDay resolves an optional YYYY-MM-DD argument, defaulting to today
func parseDay(args []string) (time.Time, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return timeNow(), nil
	}
	return timecalc.ParseDate(strings.TrimSpace(args[0]))
}

// atClock combines the date of day with an HH:MM clock
func atClock(day time.Time, clock string) (time.Time, error) {
	minutes, err := timecalc.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return midnight.Add(time.Duration(minutes) * time.Minute), nil
}
