package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/rhy/internal/ui/style"
)

var _ progrock.Writer = (*TapeWriter)(nil)

// TapeWriter implements progrock.Writer by printing every status update as it arrives.
// Vertex output is prefixed with the vertex name and each vertex prints one final status line.
type TapeWriter struct {
	mu    sync.Mutex
	out   io.Writer
	names map[string]string
	done  map[string]bool
}

// NewTapeWriter creates a TapeWriter printing to w.
func NewTapeWriter(w io.Writer) *TapeWriter {
	return &TapeWriter{
		out:   w,
		names: make(map[string]string),
		done:  make(map[string]bool),
	}
}

// WriteStatus renders the logs and vertex completions of u.
func (t *TapeWriter) WriteStatus(u *progrock.StatusUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, v := range u.GetVertexes() {
		t.names[v.GetId()] = v.GetName()
	}

	for _, l := range u.GetLogs() {
		name := t.names[l.GetVertex()]
		for _, line := range strings.Split(strings.TrimRight(string(l.GetData()), "\n"), "\n") {
			if _, err := fmt.Fprintf(t.out, "%s | %s\n", name, line); err != nil {
				return err
			}
		}
	}

	for _, v := range u.GetVertexes() {
		id := v.GetId()
		if v.GetCompleted() == nil || t.done[id] {
			continue
		}
		t.done[id] = true

		var err error
		switch {
		case v.GetError() != "":
			_, err = fmt.Fprintf(t.out, "%s %s: %s\n", style.Cross, v.GetName(), v.GetError())
		case v.GetCached():
			_, err = fmt.Fprintf(t.out, "%s %s (already settled)\n", style.Check, v.GetName())
		default:
			_, err = fmt.Fprintf(t.out, "%s %s\n", style.Check, v.GetName())
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// Close does nothing; the writer is owned by the caller.
func (t *TapeWriter) Close() error {
	return nil
}
