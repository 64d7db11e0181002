// Package telemetry reports settle progress to the terminal.
package telemetry

import (
	"io"
	"strings"

	"go.trai.ch/rhy/internal/adapters/telemetry/progrock"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mode selects how progress is reported.
type Mode string

const (
	// ModePlain prints one dot per poll tick, like a classic progress ticker.
	ModePlain Mode = "plain"
	// ModeTape records vertices on a progrock tape printed line by line.
	ModeTape Mode = "tape"
	// ModeNone discards all progress.
	ModeNone Mode = "none"
)

// ParseMode converts a flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModePlain, "":
		return ModePlain, nil
	case ModeTape:
		return ModeTape, nil
	case ModeNone:
		return ModeNone, nil
	default:
		return "", zerr.With(zerr.New("unknown progress mode, expected plain, tape or none"), "progress", s)
	}
}

// New creates the Telemetry implementation for mode, writing to w where applicable.
func New(mode Mode, w io.Writer) ports.Telemetry {
	switch mode {
	case ModeTape:
		return progrock.New(w)
	case ModeNone:
		return NewNoOp()
	default:
		return NewConsole(w)
	}
}
