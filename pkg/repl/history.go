package repl

import (
	"fmt"
	"os"
	"strings"
)

// DefaultHistoryLimit matches the line editor's own default buffer size.
const DefaultHistoryLimit = 500

// History is an ordered list of accepted commands with a size limit.
// Consecutive duplicates are suppressed. It persists as a plain text file,
// one command per line, oldest first.
type History struct {
	entries []string
	limit   int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		entries: make([]string, 0, limit),
		limit:   limit,
	}
}

// Add appends a command and reports whether it was recorded. A repeat of
// the last entry is skipped.
func (h *History) Add(entry string) bool {
	if entry == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return false
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.limit {
		h.entries = h.entries[len(h.entries)-h.limit:]
	}
	return true
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	result := make([]string, len(h.entries))
	copy(result, h.entries)
	return result
}

func (h *History) Len() int {
	return len(h.entries)
}

// Load replaces the current entries with the file's contents. Blank lines
// are skipped; surrounding whitespace is trimmed.
func (h *History) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	h.entries = h.entries[:0]
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.Add(line)
	}
	return nil
}

// Save writes the entries to path, one per line, oldest first. The file is
// user-private since command lines may carry sensitive input.
func (h *History) Save(path string) error {
	var b strings.Builder
	for _, entry := range h.entries {
		b.WriteString(entry)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
