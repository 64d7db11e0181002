package fs

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Walker provides file walking functionality.
type Walker struct {
	fs billy.Filesystem
}

// NewWalker creates a new Walker.
func NewWalker(fs billy.Filesystem) *Walker {
	return &Walker{fs: fs}
}

// WalkFiles yields every regular file below root in lexical order.
// Directories and symlinks are not yielded. A traversal error is yielded once and ends the walk.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := util.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !errors.Is(err, filepath.SkipAll) && !stopped {
			yield("", err)
		}
	}
}
