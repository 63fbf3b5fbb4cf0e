// Package logfile owns time_log.txt: tolerant parsing, appends and
// rename-to-backup.
package logfile

import (
	"bufio"
	"io"
	"strings"

	"wogger/internal/domain"
	"wogger/internal/errors"
	"wogger/internal/logging"
	"wogger/internal/timecalc"
)

// SkippedLine is a non-blank line that did not match the grammar
type SkippedLine struct {
	LineNumber int
	Text       string
	Reason     string
}

// ParseResult holds the entries of a scan in file order and the lines that were skipped
type ParseResult struct {
	Entries []domain.LogEntry
	Skipped []SkippedLine
}

// ParseLine tokenizes one line and computes its duration. Only tokenization
// failures are errors; unparseable clock times leave HasDuration false.
func ParseLine(line string) (domain.LogEntry, error) {
	tokens, err := domain.TokenizeLine(line)
	if err != nil {
		return domain.LogEntry{}, err
	}

	entry := domain.LogEntry{
		Date:      tokens.Date,
		Start:     tokens.Start,
		Separator: tokens.Separator,
		End:       tokens.End,
		Task:      tokens.Task,
	}
	if minutes, err := timecalc.MinutesBetween(tokens.Start, tokens.End); err == nil {
		entry.Minutes = minutes
		entry.HasDuration = true
	}
	return entry, nil
}

// Parse reads every line from r. Blank lines are ignored; lines that fail
// tokenization are reported in Skipped and never returned as an error.
// Lines have no length limit.
func Parse(r io.Reader) (ParseResult, error) {
	var result ParseResult

	reader := bufio.NewReader(r)
	lineNumber := 0
	for {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return result, errors.WrapError(readErr, errors.ErrorTypeIO, "read time log")
		}
		if readErr == io.EOF && text == "" {
			break
		}
		lineNumber++
		text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

		if strings.TrimSpace(text) != "" {
			entry, err := ParseLine(text)
			if err != nil {
				logging.Debugf("skipping line %d: %v\n", lineNumber, err)
				result.Skipped = append(result.Skipped, SkippedLine{
					LineNumber: lineNumber,
					Text:       text,
					Reason:     err.Error(),
				})
			} else {
				result.Entries = append(result.Entries, entry)
			}
		}

		if readErr == io.EOF {
			break
		}
	}
	return result, nil
}
