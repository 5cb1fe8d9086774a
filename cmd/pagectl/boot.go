package main

import (
	"fmt"
	"io"

	"github.com/joshuapare/pagefs/internal/config"
	"github.com/joshuapare/pagefs/internal/logger"
	"github.com/joshuapare/pagefs/memfs"
	"github.com/joshuapare/pagefs/memfs/alloc"
	"github.com/joshuapare/pagefs/shell"
)

// system is one booted instance: the arena, the directory on top of it and
// the shell in front of both.
type system struct {
	alloc *alloc.BumpAllocator
	table *memfs.Table
	shell *shell.Shell
}

// bootSystem performs the one-time startup. A directory that cannot get its
// storage halts startup; there is nothing to fall back to.
func bootSystem(cfg *config.Config, out io.Writer, stopOnError bool) (*system, error) {
	ba, err := alloc.NewBump(cfg.AllocOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create allocator: %w", err)
	}

	tbl, err := memfs.New(ba, cfg.TableOptions())
	if err != nil {
		_ = ba.Close()
		logger.Error("boot halted", "error", err)
		return nil, fmt.Errorf("boot halted: %w", err)
	}

	sh := shell.New(tbl, ba, out, &shell.Options{
		Logger:      logger.L,
		StopOnError: stopOnError,
	})
	return &system{alloc: ba, table: tbl, shell: sh}, nil
}

// Close releases the arena.
func (s *system) Close() error {
	return s.alloc.Close()
}
