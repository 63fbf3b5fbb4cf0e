package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"wogger/internal/config"
	"wogger/internal/logging"
)

// AppFactory builds the application once the configuration is resolved
type AppFactory func(cfg *config.Config) (*App, error)

// DefaultAppFactory loads settings.json from the configured location and
// writes command output to out
func DefaultAppFactory(out io.Writer) AppFactory {
	return func(cfg *config.Config) (*App, error) {
		return NewAppWithDefaultStore(cfg, WithOutput(out))
	}
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd      *cobra.Command
	newApp   AppFactory
	config   *config.Config
	app      *App
	options  CommandOptions
	registry *CommandRegistry
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(newApp AppFactory) *RootCommand {
	root := &RootCommand{
		newApp: newApp,
	}

	root.cmd = &cobra.Command{
		Use:   "wogger",
		Short: "A quarter-hour work logger",
		Long: `Wogger asks what you are working on at a fixed cadence and appends the
answer to time_log.txt, one line per interval:

  2024-03-04 09:00 - 09:15 | Email

FEATURES:
  • Prompt on a cron cadence and log the interval that just ended
  • Append or check hand-written lines
  • Per-task totals, day and week overviews against a work schedule
  • Export to CSV, JSON or SQLite
  • Settings kept in settings.json

EXAMPLES:
  wogger watch                             # Prompt at every popup_cron firing
  wogger log --start 09:00 --end 09:45 Email
  wogger add "2024-03-04 09:00 - 09:15 | Email"
  wogger list --today                      # Tasks logged today
  wogger week --chart                      # Week overview with a bar chart
  wogger export --format json              # Write time_log_export_<stamp>.json
  wogger settings set popup_cron "0,30 * * * *"

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

    WOGGER_SETTINGS_DIR                    Folder holding settings.json
    WOGGER_SETTINGS_FILE                   Settings file name (default: settings.json)
    WOGGER_DATA_DIR                        Overrides data_folder from settings.json
    WOGGER_DISPLAY_WIDTH                   Table width (default: 60)
    WOGGER_APP_TIMEOUT                     Timeout of one-shot commands (default: 60s)
    WOGGER_APP_VERBOSE                     Enable debug output (default: false)
    WOGGER_WATCH_TIMEOUT                   Stop watch after this long (default: never)
    WOGGER_EXPORT_FORMAT                   Default export format (default: csv)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides the arguments, used by tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Config returns the configuration resolved by the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("settings-dir", "", "Folder holding settings.json (overrides WOGGER_SETTINGS_DIR)")
	flags.String("settings-file", "", "Settings file name (overrides WOGGER_SETTINGS_FILE)")
	flags.String("data-dir", "", "Folder holding time_log.txt (overrides WOGGER_DATA_DIR)")
	flags.Int("display-width", 0, "Table width (overrides WOGGER_DISPLAY_WIDTH)")
	flags.Duration("app-timeout", 0, "Timeout of one-shot commands (overrides WOGGER_APP_TIMEOUT)")
	flags.BoolP("verbose", "v", false, "Enable debug output (overrides WOGGER_APP_VERBOSE)")
	flags.Duration("watch-timeout", 0, "Stop watch after this long (overrides WOGGER_WATCH_TIMEOUT)")
	flags.String("export-format", "", "Default export format (overrides WOGGER_EXPORT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	opts := &r.options

	logCmd := &cobra.Command{
		Use:   "log [task name]",
		Short: "Log a task for an interval of the day",
		Long: `Log a task for an interval. The end defaults to the current minute and the
date to today. An empty task name is logged as Unspecified.

Examples:
  wogger log --start 09:00 Email
  wogger log --date 2024-03-04 --start 13:00 --end 14:30 "Code review"`,
		RunE: r.run("log", r.getAppTimeout),
	}
	logCmd.Flags().StringVar(&opts.Log.Start, "start", "", "Start of the interval (HH:MM)")
	logCmd.Flags().StringVar(&opts.Log.End, "end", "", "End of the interval (HH:MM, default now)")
	logCmd.Flags().StringVar(&opts.Log.Date, "date", "", "Date of the interval (YYYY-MM-DD, default today)")

	addCmd := &cobra.Command{
		Use:   "add <line>",
		Short: "Append a hand-written log line",
		Long: `Append a line after checking it has the form
  YYYY-MM-DD HH:MM - HH:MM | task name`,
		Args: cobra.MinimumNArgs(1),
		RunE: r.run("add", r.getAppTimeout),
	}

	checkCmd := &cobra.Command{
		Use:   "check <line>",
		Short: "Check a log line without writing it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.run("check", r.getAppTimeout),
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks with their totals",
		Args:  cobra.NoArgs,
		RunE:  r.run("list", r.getAppTimeout),
	}
	listCmd.Flags().BoolVar(&opts.List.Today, "today", false, "Only tasks logged today")

	totalCmd := &cobra.Command{
		Use:   "total [task name]",
		Short: "Show the total of a task, or of all tasks",
		RunE:  r.run("total", r.getAppTimeout),
	}

	dayCmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show what was logged on a day",
		Args:  cobra.MaximumNArgs(1),
		RunE:  r.run("day", r.getAppTimeout),
	}

	weekCmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week overview",
		Args:  cobra.NoArgs,
		RunE:  r.run("week", r.getAppTimeout),
	}
	weekCmd.Flags().IntVar(&opts.Week.Offset, "offset", 0, "Weeks relative to this one (-1 is last week)")
	weekCmd.Flags().BoolVar(&opts.Week.Chart, "chart", false, "Add a bar chart of the logged hours")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the log to csv, json or sqlite",
		Long: `Export every line with a start, end and task to a new file in the data folder
named time_log_export_<YYYYMMDDHHMMSS>.<csv|json|db>.`,
		Args: cobra.NoArgs,
		RunE: r.run("export", r.getAppTimeout),
	}
	exportCmd.Flags().StringVarP(&opts.Export.Format, "format", "f", "", "csv, json or sqlite (default from --export-format)")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Move time_log.txt to a timestamped backup",
		Args:  cobra.NoArgs,
		RunE:  r.run("reset", r.getAppTimeout),
	}
	resetCmd.Flags().BoolVar(&opts.Reset.Yes, "yes", false, "Confirm the reset")

	lintCmd := &cobra.Command{
		Use:   "lint",
		Short: "List lines of time_log.txt that could not be read",
		Args:  cobra.NoArgs,
		RunE:  r.run("lint", r.getAppTimeout),
	}

	folderCmd := &cobra.Command{
		Use:   "folder",
		Short: "Show where the log and settings are kept",
		Args:  cobra.NoArgs,
		RunE:  r.run("folder", r.getAppTimeout),
	}

	settingsCmd := &cobra.Command{
		Use:   "settings [show | set <key> <value> | reset]",
		Short: "Show or change settings",
		Long: `Show or change settings.json.

Keys:
  sound_on, data_folder, popup_cron, work_schedule.<Weekday>,
  standart_work_day, standart_days_in_week, wogger_mode, show_week_overview`,
		RunE: r.run("settings", r.getAppTimeout),
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Prompt for the current task at every popup_cron firing",
		Args:  cobra.NoArgs,
		RunE:  r.run("watch", nil),
	}

	r.cmd.AddCommand(
		logCmd,
		addCmd,
		checkCmd,
		listCmd,
		totalCmd,
		dayCmd,
		weekCmd,
		exportCmd,
		resetCmd,
		lintCmd,
		folderCmd,
		settingsCmd,
		watchCmd,
	)
}

// run returns a RunE that dispatches to the registered handler. A nil
// timeout leaves the context open, for long-running commands.
func (r *RootCommand) run(name string, timeout func() time.Duration) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if timeout != nil {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout())
			defer cancel()
		}
		return r.registry.Execute(ctx, name, args)
	}
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// setup resolves the configuration and builds the app and its handlers
func (r *RootCommand) setup() error {
	cfg, err := config.NewLoader().LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return err
	}
	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)

	if r.newApp == nil {
		r.newApp = DefaultAppFactory(os.Stdout)
	}
	app, err := r.newApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	r.app = app
	r.registry = NewCommandRegistry(app, &r.options)
	return nil
}

// getOverridesFromFlags collects the global flags the user actually set
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("settings-dir") {
		v, _ := flags.GetString("settings-dir")
		overrides.SettingsDir = &v
	}
	if flags.Changed("settings-file") {
		v, _ := flags.GetString("settings-file")
		overrides.SettingsFile = &v
	}
	if flags.Changed("data-dir") {
		v, _ := flags.GetString("data-dir")
		overrides.DataDir = &v
	}
	if flags.Changed("display-width") {
		v, _ := flags.GetInt("display-width")
		overrides.DisplayWidth = &v
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		overrides.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		overrides.Verbose = &v
	}
	if flags.Changed("watch-timeout") {
		v, _ := flags.GetDuration("watch-timeout")
		overrides.WatchTimeout = &v
	}
	if flags.Changed("export-format") {
		v, _ := flags.GetString("export-format")
		overrides.ExportFormat = &v
	}

	return overrides
}
