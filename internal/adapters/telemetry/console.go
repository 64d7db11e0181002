package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/rhy/internal/ui/output"
	"go.trai.ch/rhy/internal/ui/style"
)

var _ ports.Telemetry = (*Console)(nil)

// Console implements ports.Telemetry by printing a dot per poll tick.
type Console struct {
	out *termenv.Output
}

// NewConsole creates a Console writing to w, or to os.Stderr when w is nil.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{out: output.New(w)}
}

// Record starts a new console vertex.
func (c *Console) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &ConsoleVertex{out: c.out, name: name, status: domain.VertexStatusRunning}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (c *Console) Close() error {
	return nil
}

// ConsoleVertex implements ports.Vertex on a terminal.
type ConsoleVertex struct {
	out    *termenv.Output
	name   string
	ticks  int
	status domain.VertexStatus
}

// Stdout returns the underlying terminal writer.
func (v *ConsoleVertex) Stdout() io.Writer {
	return v.out
}

// Log prints msg prefixed with its level.
func (v *ConsoleVertex) Log(level domain.LogLevel, msg string) {
	v.breakLine()
	_, _ = fmt.Fprintf(v.out, "[%s] %s\n", level.String(), msg)
}

// Tick prints a single dot without a newline.
func (v *ConsoleVertex) Tick() {
	v.ticks++
	_, _ = v.out.WriteString(".")
}

// Complete terminates the dot line and prints the final status.
func (v *ConsoleVertex) Complete(err error) {
	if v.status.IsTerminal() {
		return
	}
	v.breakLine()

	if err != nil {
		v.status = domain.VertexStatusFailed
		line := v.out.String(style.Cross + " " + v.name).Foreground(termenv.RGBColor(string(style.Red)))
		_, _ = v.out.WriteString(line.String() + "\n")
		return
	}

	v.status = domain.VertexStatusCompleted
	if v.ticks == 0 {
		return
	}
	line := v.out.String(style.Check + " " + v.name).Foreground(termenv.RGBColor(string(style.Green)))
	_, _ = v.out.WriteString(line.String() + "\n")
}

// Status reports the vertex lifecycle state.
func (v *ConsoleVertex) Status() domain.VertexStatus {
	return v.status
}

func (v *ConsoleVertex) breakLine() {
	if v.ticks > 0 && !v.status.IsTerminal() {
		_, _ = v.out.WriteString("\n")
		v.ticks = 0
	}
}
