package editor

import "strings"

// Entry is one evaluated expression, newest first in Editor.History.
type Entry struct {
	Expression string
	Result     string
}

// sep separates expression and result in the persisted form. The editor
// never emits spaces into an expression, so the separator is unambiguous.
const sep = " = "

// History returns the evaluation history, most recent first. The returned
// slice is a copy.
func (e *Editor) History() []Entry {
	return append([]Entry(nil), e.history...)
}

// formatHistory serializes entries as "<expression> = <result>" lines.
func formatHistory(entries []Entry) []string {
	lines := make([]string, len(entries))
	for i, h := range entries {
		lines[i] = h.Expression + sep + h.Result
	}
	return lines
}

// parseHistory is the inverse of formatHistory. Lines that do not contain
// the separator are skipped.
func parseHistory(lines []string) []Entry {
	var entries []Entry
	for _, l := range lines {
		expr, result, ok := strings.Cut(l, sep)
		if !ok {
			continue
		}
		entries = append(entries, Entry{Expression: expr, Result: result})
	}
	if len(entries) > maxHistory {
		entries = entries[:maxHistory]
	}
	return entries
}
