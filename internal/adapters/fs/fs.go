// Package fs provides file system adapters for mapping, probing and invalidating cache files.
package fs

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// NewLocal returns a billy filesystem rooted at "/" so absolute host paths resolve unchanged.
func NewLocal() billy.Filesystem {
	return osfs.New("/")
}
