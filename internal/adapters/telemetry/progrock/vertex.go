package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/rhy/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	ticks  int
}

// Stdout returns a writer to capture standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log records a structured log message associated with this vertex.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Tick records one poll iteration on the vertex output.
func (v *Vertex) Tick() {
	v.ticks++
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "tick %d\n", v.ticks)
}

// Complete marks the vertex as finished (successfully or with an error).
// A vertex that settled without a single tick is reported as cached.
func (v *Vertex) Complete(err error) {
	if err == nil && v.ticks == 0 {
		v.vertex.Cached()
	}
	v.vertex.Done(err)
}
