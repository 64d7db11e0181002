package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rhy/internal/adapters/telemetry"
	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Telemetry = (*telemetry.Console)(nil)
	var _ ports.Vertex = (*telemetry.ConsoleVertex)(nil)
	var _ ports.Telemetry = (*telemetry.NoOp)(nil)
	var _ ports.Vertex = (*telemetry.NoOpVertex)(nil)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want telemetry.Mode
	}{
		{"", telemetry.ModePlain},
		{"plain", telemetry.ModePlain},
		{"TAPE", telemetry.ModeTape},
		{"none", telemetry.ModeNone},
	}
	for _, tt := range tests {
		got, err := telemetry.ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := telemetry.ParseMode("fancy")
	require.Error(t, err)
}

func TestNew_SelectsImplementation(t *testing.T) {
	buf := new(bytes.Buffer)

	assert.IsType(t, &telemetry.Console{}, telemetry.New(telemetry.ModePlain, buf))
	assert.IsType(t, &telemetry.NoOp{}, telemetry.New(telemetry.ModeNone, buf))
	assert.NotNil(t, telemetry.New(telemetry.ModeTape, buf))
}

func TestNew_TapeModePrintsProgress(t *testing.T) {
	buf := new(bytes.Buffer)
	tel := telemetry.New(telemetry.ModeTape, buf)

	_, vertex := tel.Record(context.Background(), "/remote/a.txt")
	vertex.Tick()
	vertex.Complete(nil)
	require.NoError(t, tel.Close())

	assert.Contains(t, buf.String(), "/remote/a.txt | tick 1\n")
	assert.Contains(t, buf.String(), "✓ /remote/a.txt\n")
}

func TestConsole_DotsThenNewline(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)
	console := telemetry.NewConsole(buf)

	ctx, vertex := console.Record(context.Background(), "/remote/a.txt")
	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, got)

	vertex.Tick()
	vertex.Tick()
	vertex.Tick()
	vertex.Complete(nil)

	assert.Equal(t, "...\n✓ /remote/a.txt\n", buf.String())
	require.NoError(t, console.Close())
}

func TestConsole_ImmediateSettlePrintsNothing(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)

	_, vertex := telemetry.NewConsole(buf).Record(context.Background(), "/remote/a.txt")
	vertex.Complete(nil)

	assert.Empty(t, buf.String())
	assert.Equal(t, domain.VertexStatusCompleted, vertex.(*telemetry.ConsoleVertex).Status())
}

func TestConsole_FailureAndLog(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := new(bytes.Buffer)

	_, vertex := telemetry.NewConsole(buf).Record(context.Background(), "/remote/a.txt")
	vertex.Tick()
	vertex.Log(domain.LogLevelWarn, "still changing")
	vertex.Complete(errors.New("timed out"))
	vertex.Complete(nil)

	assert.Equal(t, ".\n[WARN] still changing\n✗ /remote/a.txt\n", buf.String())
	assert.Equal(t, domain.VertexStatusFailed, vertex.(*telemetry.ConsoleVertex).Status())
}

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	_, vertex := tel.Record(context.Background(), "x")
	vertex.Tick()
	vertex.Log(domain.LogLevelInfo, "ignored")
	vertex.Complete(nil)

	n, err := vertex.Stdout().Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	require.NoError(t, tel.Close())
}
