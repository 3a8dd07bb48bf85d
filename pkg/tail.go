// Package pkg provides utilities for emsetup.
package pkg

import (
	"bytes"
	"strings"
	"sync"
)

// TailBuffer is an io.Writer that keeps only the last complete lines written to it.
// It is safe for concurrent use.
type TailBuffer struct {
	mu      sync.Mutex
	limit   int
	lines   []string
	partial bytes.Buffer
}

// NewTailBuffer creates a TailBuffer keeping at most limit lines. A non-positive
// limit keeps a single line.
func NewTailBuffer(limit int) *TailBuffer {
	if limit <= 0 {
		limit = 1
	}

	return &TailBuffer{limit: limit}
}

// Write implements io.Writer. Carriage returns start a new line so progress bars
// do not accumulate into one huge line.
func (t *TailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, b := range p {
		if b == '\n' || b == '\r' {
			t.flushLocked()
			continue
		}

		t.partial.WriteByte(b)
	}

	return len(p), nil
}

func (t *TailBuffer) flushLocked() {
	line := strings.TrimRight(t.partial.String(), " \t")
	t.partial.Reset()

	if line == "" {
		return
	}

	t.lines = append(t.lines, line)
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

// Lines returns the retained lines, oldest first, including any unterminated line.
func (t *TailBuffer) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	lines := make([]string, 0, len(t.lines)+1)
	lines = append(lines, t.lines...)

	if pending := strings.TrimSpace(t.partial.String()); pending != "" {
		lines = append(lines, pending)
		if len(lines) > t.limit {
			lines = lines[len(lines)-t.limit:]
		}
	}

	return lines
}

// Last returns the most recent line or "".
func (t *TailBuffer) Last() string {
	lines := t.Lines()
	if len(lines) == 0 {
		return ""
	}

	return lines[len(lines)-1]
}

// Reset drops everything retained so far.
func (t *TailBuffer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = nil
	t.partial.Reset()
}
