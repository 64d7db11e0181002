package fs

import (
	"errors"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"go.trai.ch/rhy/internal/core/domain"
	"go.trai.ch/rhy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FreshnessProbe = (*Probe)(nil)

// Probe implements the FreshnessProbe interface on a billy filesystem.
type Probe struct {
	fs billy.Filesystem
}

// NewProbe creates a new Probe.
func NewProbe(fs billy.Filesystem) *Probe {
	return &Probe{fs: fs}
}

// ModTime opens the file at path and returns its last modification time.
func (p *Probe) ModTime(path string) (time.Time, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		msg := "failed to open file"
		if errors.Is(err, os.ErrNotExist) {
			msg = "file does not exist"
		}
		return time.Time{}, zerr.With(zerr.Wrap(domain.ErrPathNotFound, msg), "path", path)
	}
	_ = f.Close()

	info, err := p.fs.Stat(path)
	if err != nil {
		return time.Time{}, zerr.With(zerr.Wrap(domain.ErrMetadataUnavailable, err.Error()), "path", path)
	}

	return info.ModTime(), nil
}

// Age returns how long ago the file at path was last modified, measured from now.
func (p *Probe) Age(path string, now time.Time) (time.Duration, error) {
	mtime, err := p.ModTime(path)
	if err != nil {
		return 0, err
	}

	age := now.Sub(mtime)
	if age < 0 {
		err := zerr.With(zerr.Wrap(domain.ErrClockSkew, "cannot compute file age"), "path", path)
		return 0, zerr.With(err, "mtime", mtime.Format(time.RFC3339Nano))
	}

	return age, nil
}
