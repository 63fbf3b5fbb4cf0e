// Package schedule fires a handler on the boundaries of a cron expression.
package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"wogger/internal/errors"
	"wogger/internal/logging"
	"wogger/internal/timecalc"
	"wogger/internal/validation"
)

// prevWindows are the look-back spans searched by Prev, smallest first
var prevWindows = []time.Duration{
	time.Hour,
	24 * time.Hour,
	7 * 24 * time.Hour,
	31 * 24 * time.Hour,
	366 * 24 * time.Hour,
}

// Interval is the span between two consecutive firings
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Handler is called once per firing
type Handler func(ctx context.Context, interval Interval) error

// Scheduler computes firings of a five-field cron expression
type Scheduler struct {
	expr     string
	schedule cron.Schedule
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithClock replaces time.Now and time.After
func WithClock(now func() time.Time, after func(time.Duration) <-chan time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
		if after != nil {
			s.after = after
		}
	}
}

// ParseCadence checks expr with the settings cron rules and parses it as a
// standard five-field expression
func ParseCadence(expr string) (cron.Schedule, error) {
	if err := validation.NewSettingsValidator().ValidateCron(expr); err != nil {
		return nil, err
	}
	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, errors.NewParseError("cron expression", expr, err)
	}
	return schedule, nil
}

// New creates a Scheduler for expr
func New(expr string, opts ...Option) (*Scheduler, error) {
	schedule, err := ParseCadence(expr)
	if err != nil {
		return nil, err
	}

	s := &Scheduler{
		expr:     expr,
		schedule: schedule,
		now:      time.Now,
		after:    time.After,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Expression returns the cron expression
func (s *Scheduler) Expression() string {
	return s.expr
}

// Next returns the first firing strictly after t
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Prev returns the latest firing strictly before t. ok is false when there
// is none within a year.
func (s *Scheduler) Prev(t time.Time) (time.Time, bool) {
	for _, window := range prevWindows {
		var prev time.Time
		for fire := s.schedule.Next(t.Add(-window)); !fire.IsZero() && fire.Before(t); fire = s.schedule.Next(fire) {
			prev = fire
		}
		if !prev.IsZero() {
			return prev, true
		}
	}
	return time.Time{}, false
}

// Run waits for each firing and calls fn with the interval ending at it.
// The next firing is computed from the clock after fn returns, so firings
// missed while fn was running are not replayed. Run returns when ctx is
// done or fn returns an error.
func (s *Scheduler) Run(ctx context.Context, fn Handler) error {
	last := s.now()
	for {
		now := s.now()
		next := s.Next(now)
		if next.IsZero() {
			// Expressions such as "0 0 30 2 *" never fire.
			next = timecalc.NextQuarterHour(now.Add(time.Second))
			logging.Debugf("%q has no upcoming firing, prompting at %s\n", s.expr, timecalc.FormatClock(next))
		}

		logging.Debugf("next prompt at %s\n", next.Format(time.RFC3339))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.after(next.Sub(now)):
		}

		start, ok := s.Prev(next)
		if !ok {
			start = last
		}
		if err := fn(ctx, Interval{Start: start, End: next}); err != nil {
			return err
		}
		last = next
	}
}
