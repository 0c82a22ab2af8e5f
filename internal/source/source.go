// Package source opens tree updates stored on disk, either as YAML tree
// descriptions or as binary .axt snapshots.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/axkit/internal/format"
	"github.com/joshuapare/axkit/internal/mmfile"
	"github.com/joshuapare/axkit/internal/treefile"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
	"github.com/joshuapare/axkit/pkg/types"
)

// SnapshotExt is the file extension of binary snapshots.
const SnapshotExt = ".axt"

// IsSnapshot reports whether path names a .axt snapshot rather than YAML.
func IsSnapshot(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SnapshotExt)
}

// Open reads the update stored at path. Snapshots are memory-mapped and
// checked against limits; YAML files are parsed whole.
func Open(path string, classes *node.ClassSet, limits types.Limits) (tree.Update, error) {
	if !IsSnapshot(path) {
		return treefile.Load(path, classes)
	}
	f, err := mmfile.Map(path, limits.MaxSnapshotSize)
	if err != nil {
		return tree.Update{}, err
	}
	defer f.Close()

	u, err := format.Decode(f.Data, classes, limits)
	if err != nil {
		return tree.Update{}, fmt.Errorf("%s: %w", path, err)
	}
	return u, nil
}
