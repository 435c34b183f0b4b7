package filestore

import (
	"cmp"
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/aweris/filestore/internal/ioerr"
	"github.com/aweris/filestore/internal/layout"
)

// Stats summarizes the contents of a store.
type Stats struct {
	Objects    int    `json:"objects" yaml:"objects"`
	Bytes      int64  `json:"bytes" yaml:"bytes"`
	References uint64 `json:"references" yaml:"references"`
}

// ProblemKind names an inconsistency found by Check.
type ProblemKind string

const (
	// ProblemOrphanContent is content whose refcount is zero, typically left
	// by a failed removal during Delete.
	ProblemOrphanContent ProblemKind = "orphan-content"
	// ProblemDanglingRefcount is a refcount record without content.
	ProblemDanglingRefcount ProblemKind = "dangling-refcount"
)

// Problem is one inconsistency in the store.
type Problem struct {
	Key  FileKey     `json:"key" yaml:"key"`
	Kind ProblemKind `json:"kind" yaml:"kind"`
	Path string      `json:"path" yaml:"path"`
}

// Keys yields every key with stored content, in shard order. Iteration stops
// after the first error.
func (s *Store) Keys() iter.Seq2[FileKey, error] {
	return func(yield func(FileKey, error) bool) {
		shards, err := s.shards()
		if err != nil {
			yield("", err)
			return
		}
		for _, shard := range shards {
			entries, err := os.ReadDir(filepath.Join(s.root, shard))
			if err != nil {
				yield("", ioerr.Wrap(err, "unable to read shard", shard))
				return
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				if key, ok := layout.KeyFromPath(shard, e.Name(), KeyLen); ok {
					if !yield(FileKey(key), nil) {
						return
					}
				}
			}
		}
	}
}

// Stats counts objects, their total size and the references held on them.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	reports, err := s.scan(ctx)
	if err != nil {
		return Stats{}, err
	}

	var total Stats
	for _, r := range reports {
		total.Objects += r.stats.Objects
		total.Bytes += r.stats.Bytes
		total.References += r.stats.References
	}
	return total, nil
}

// Check reports inconsistencies between content files and refcount records.
// It never modifies the store.
func (s *Store) Check(ctx context.Context) ([]Problem, error) {
	reports, err := s.scan(ctx)
	if err != nil {
		return nil, err
	}

	var problems []Problem
	for _, r := range reports {
		problems = append(problems, r.problems...)
	}
	slices.SortFunc(problems, func(a, b Problem) int {
		return cmp.Or(cmp.Compare(a.Key, b.Key), cmp.Compare(a.Kind, b.Kind))
	})
	return problems, nil
}

type shardReport struct {
	stats    Stats
	problems []Problem
}

func (s *Store) scan(ctx context.Context) ([]shardReport, error) {
	shards, err := s.shards()
	if err != nil {
		return nil, err
	}

	p := pool.NewWithResults[shardReport]().
		WithContext(ctx).
		WithMaxGoroutines(s.opts.Concurrency).
		WithCancelOnError()
	for _, shard := range shards {
		p.Go(func(ctx context.Context) (shardReport, error) {
			return s.scanShard(ctx, shard)
		})
	}
	return p.Wait()
}

func (s *Store) scanShard(ctx context.Context, shard string) (shardReport, error) {
	var r shardReport
	dir := filepath.Join(s.root, shard)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return r, ioerr.Wrap(err, "unable to read shard", dir)
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if e.IsDir() {
			continue
		}
		name := e.Name()

		if base, ok := strings.CutSuffix(name, layout.RefcountExt); ok {
			key, ok := layout.KeyFromPath(shard, base, KeyLen)
			if !ok {
				continue
			}
			_, err := os.Stat(layout.ContentPath(s.root, key))
			if errors.Is(err, fs.ErrNotExist) {
				r.problems = append(r.problems, Problem{
					Key:  FileKey(key),
					Kind: ProblemDanglingRefcount,
					Path: filepath.Join(dir, name),
				})
			} else if err != nil {
				return r, ioerr.Wrap(err, "unable to stat file", filepath.Join(dir, base))
			}
			continue
		}

		key, ok := layout.KeyFromPath(shard, name, KeyLen)
		if !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed while scanning.
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return r, ioerr.Wrap(err, "unable to stat file", filepath.Join(dir, name))
		}
		n, err := s.ledger.Get(key)
		if err != nil {
			return r, err
		}

		r.stats.Objects++
		r.stats.Bytes += info.Size()
		r.stats.References += uint64(n)
		if n == 0 {
			r.problems = append(r.problems, Problem{
				Key:  FileKey(key),
				Kind: ProblemOrphanContent,
				Path: filepath.Join(dir, name),
			})
		}
	}
	return r, nil
}

// shards lists the shard directories under the root in name order.
func (s *Store) shards() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, ioerr.Wrap(err, "unable to read root directory", s.root)
	}

	var shards []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() && len(name) == layout.ShardLen && layout.IsHex(name) {
			shards = append(shards, name)
		}
	}
	return shards, nil
}
