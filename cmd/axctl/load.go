package main

import (
	"github.com/joshuapare/axkit/internal/logger"
	"github.com/joshuapare/axkit/internal/source"
	"github.com/joshuapare/axkit/pkg/node"
	"github.com/joshuapare/axkit/pkg/tree"
)

func isSnapshot(path string) bool { return source.IsSnapshot(path) }

// loadUpdate reads a YAML tree file or a .axt snapshot.
func loadUpdate(path string, classes *node.ClassSet) (tree.Update, error) {
	limits, err := cfg.LimitSet()
	if err != nil {
		return tree.Update{}, err
	}
	p := newProgress(logger.L)
	u, err := source.Open(path, classes, limits)
	if err != nil {
		return tree.Update{}, err
	}
	p.done("loaded tree update", "path", path, "snapshot", isSnapshot(path), "nodes", u.Len())
	return u, nil
}
