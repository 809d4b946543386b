// Package aggregate reads the header configs of many sources at once.
package aggregate

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Othello1111/rocketsass/pkg/header"
)

// ReadFunc reads the config of a single source file.
type ReadFunc func(path string) (header.Config, error)

// Collector reads all configs concurrently. Collect returns once every read
// has finished, no matter in which order they complete.
type Collector struct {
	Base string
	Read ReadFunc
}

func NewCollector(base string) *Collector {
	return &Collector{Base: base, Read: header.ReadConfig}
}

// Collect reads the config of each file in Base. The result has one config
// per file in the same order as files. The first failing read aborts the
// whole collection and no configs are returned.
func (c *Collector) Collect(ctx context.Context, files []string) ([]header.Config, error) {
	read := c.Read
	if read == nil {
		read = header.ReadConfig
	}

	configs := make([]header.Config, len(files))
	group, gctx := errgroup.WithContext(ctx)

	for idx, name := range files {
		idx, path := idx, filepath.Join(c.Base, name)
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			config, err := read(path)
			if err != nil {
				return err
			}

			configs[idx] = config
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return configs, nil
}
