// Package batch runs a function over many parcel directories with bounded
// concurrency. One parcel failing never stops the others.
package batch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Markers are the files that make a directory a parcel directory.
var Markers = []string{"input.html", "property_seed.json"}

// MaxConcurrency bounds Runner.Concurrency.
const MaxConcurrency = 64

// Func processes one parcel directory.
type Func[T any] func(ctx context.Context, dir string) (T, error)

// Outcome is the result for one directory.
type Outcome[T any] struct {
	Dir      string
	Value    T
	Err      error
	Duration time.Duration
}

// Runner fans a Func out over directories.
type Runner[T any] struct {
	// Concurrency <= 0 picks a value from the CPU count.
	Concurrency int
	// Progress is called once per finished directory, never concurrently.
	Progress func(done, total int, o Outcome[T])
}

// DefaultConcurrency is twice the CPU count, capped at MaxConcurrency.
func DefaultConcurrency() int {
	n := runtime.NumCPU() * 2
	if n > MaxConcurrency {
		n = MaxConcurrency
	}
	return n
}

// Run discovers parcel directories under root and runs fn on each. The error
// is only for discovery; per-directory failures are in the outcomes.
func (r *Runner[T]) Run(ctx context.Context, root string, fn Func[T]) ([]Outcome[T], error) {
	dirs, err := Discover(root)
	if err != nil {
		return nil, err
	}
	return r.RunDirs(ctx, dirs, fn), nil
}

// RunDirs runs fn on every dir. Outcomes are in the order of dirs. Once ctx
// is done, directories not yet started get ctx.Err().
func (r *Runner[T]) RunDirs(ctx context.Context, dirs []string, fn Func[T]) []Outcome[T] {
	limit := r.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency()
	}
	if limit > MaxConcurrency {
		limit = MaxConcurrency
	}

	out := make([]Outcome[T], len(dirs))
	var (
		mu   sync.Mutex
		done int
	)

	var g errgroup.Group
	g.SetLimit(limit)
	for i, dir := range dirs {
		g.Go(func() error {
			o := Outcome[T]{Dir: dir}
			if err := ctx.Err(); err != nil {
				o.Err = err
			} else {
				start := time.Now()
				o.Value, o.Err = fn(ctx, dir)
				o.Duration = time.Since(start)
			}
			out[i] = o

			if o.Err != nil && !errors.Is(o.Err, context.Canceled) {
				log.Error().Err(o.Err).Str("dir", dir).Msg("Parcel failed")
			}

			mu.Lock()
			done++
			if r.Progress != nil {
				r.Progress(done, len(dirs), o)
			}
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	log.Debug().Int("count", len(dirs)).Int("concurrency", limit).Msg("Batch finished")
	return out
}

// Failed counts outcomes with an error.
func Failed[T any](outcomes []Outcome[T]) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// Discover returns the parcel directories under root in lexical order. A
// parcel directory is not searched further; hidden directories are skipped.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "discover", Path: root, Err: errors.New("not a directory")}
	}

	var dirs []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if isParcelDir(path) {
			dirs = append(dirs, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}

func isParcelDir(dir string) bool {
	for _, m := range Markers {
		if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
			return true
		}
	}
	return false
}
