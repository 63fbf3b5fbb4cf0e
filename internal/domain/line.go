package domain

import (
	"errors"
	"strings"
)

var (
	// ErrMissingPipe is returned for lines without a "|" between times and task.
	ErrMissingPipe = errors.New(`missing "|" between times and task`)
	// ErrTooFewTokens is returned when the time part has fewer than 4 tokens.
	ErrTooFewTokens = errors.New("expected <date> <start> - <end> before \"|\"")
)

// LineTokens are the raw pieces of a log line before any parsing
type LineTokens struct {
	Date      string
	Start     string
	Separator string
	End       string
	Task      string
}

// TokenizeLine trims line, splits it on the first "|" and splits the left
// side on whitespace. Extra tokens after the fourth are ignored. The task is
// trimmed and may be empty.
func TokenizeLine(line string) (LineTokens, error) {
	line = strings.TrimSpace(line)
	timePart, taskPart, found := strings.Cut(line, "|")
	if !found {
		return LineTokens{}, ErrMissingPipe
	}

	fields := strings.Fields(timePart)
	if len(fields) < 4 {
		return LineTokens{}, ErrTooFewTokens
	}

	return LineTokens{
		Date:      fields[0],
		Start:     fields[1],
		Separator: fields[2],
		End:       fields[3],
		Task:      strings.TrimSpace(taskPart),
	}, nil
}
