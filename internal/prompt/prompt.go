// Package prompt asks the user what they worked on during an interval.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"wogger/internal/domain"
	"wogger/internal/schedule"
	"wogger/internal/timecalc"
)

const bell = "\a"

// noSelection is the select value meaning "use the typed name"
const noSelection = ""

// Prompter asks for the task worked on during an interval
type Prompter interface {
	AskTask(ctx context.Context, interval schedule.Interval, knownTasks []string) (string, error)
}

// HuhPrompter shows a huh form with the known tasks and a free-text input
type HuhPrompter struct {
	out        io.Writer
	in         io.Reader
	soundOn    func() bool
	accessible bool
}

// Option configures a HuhPrompter
type Option func(*HuhPrompter)

// WithIO sets the terminal streams used by the form
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *HuhPrompter) {
		p.in = in
		p.out = out
	}
}

// WithSound rings the terminal bell before each prompt when soundOn returns true
func WithSound(soundOn func() bool) Option {
	return func(p *HuhPrompter) {
		p.soundOn = soundOn
	}
}

// WithAccessible switches the form to plain line-based input
func WithAccessible(accessible bool) Option {
	return func(p *HuhPrompter) {
		p.accessible = accessible
	}
}

// NewHuhPrompter creates a prompter on stdin and stdout
func NewHuhPrompter(opts ...Option) *HuhPrompter {
	p := &HuhPrompter{
		out:     os.Stdout,
		in:      os.Stdin,
		soundOn: func() bool { return false },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AskTask shows the form and returns the resolved task name
func (p *HuhPrompter) AskTask(ctx context.Context, interval schedule.Interval, knownTasks []string) (string, error) {
	if p.soundOn() {
		fmt.Fprint(p.out, bell)
	}

	var typed, selected string
	fields := []huh.Field{
		huh.NewNote().
			Title("What did you work on?").
			Description(Title(interval)),
	}
	if len(knownTasks) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Title("Previous tasks").
			Options(TaskOptions(knownTasks)...).
			Value(&selected))
	}
	fields = append(fields, huh.NewInput().
		Title("Task").
		Placeholder(domain.UnspecifiedTask).
		Value(&typed))

	form := huh.NewForm(huh.NewGroup(fields...)).
		WithInput(p.in).
		WithOutput(p.out).
		WithAccessible(p.accessible).
		WithShowHelp(true)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return ResolveTaskName(typed, selected), nil
}

// IsAborted reports whether err means the user closed the prompt
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

// ResolveTaskName prefers the typed text over the selection; both empty
// yields Unspecified
func ResolveTaskName(typed, selected string) string {
	if name := strings.TrimSpace(typed); name != "" {
		return name
	}
	if name := strings.TrimSpace(selected); name != "" {
		return name
	}
	return domain.UnspecifiedTask
}

// TaskOptions builds the select options, led by an entry for typing a new name
func TaskOptions(knownTasks []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(knownTasks)+1)
	options = append(options, huh.NewOption("(type a new task)", noSelection))
	for _, task := range knownTasks {
		options = append(options, huh.NewOption(task, task))
	}
	return options
}

// Title describes the interval as "<date> HH:MM - HH:MM"
func Title(interval schedule.Interval) string {
	return fmt.Sprintf("%s %s - %s",
		timecalc.FormatDate(interval.Start),
		timecalc.FormatClock(interval.Start),
		timecalc.FormatClock(interval.End))
}
