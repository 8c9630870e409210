package loader

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"types-editor/internal/logger"
	"types-editor/internal/types"
)

const component = "TypesLoader"

// Result is delivered once per Start call that was not superseded
type Result struct {
	Dir   string
	Path  string
	Items []types.Item
	Err   error
}

// Loader reads <mission>/<typesPath> and extracts its records. Loads run
// under ctx and stop when it is cancelled.
type Loader struct {
	ctx       context.Context
	logger    logger.Logger
	typesPath string
	readFile  func(path string) ([]byte, error)

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

func New(ctx context.Context, log logger.Logger, typesPath string) *Loader {
	return &Loader{
		ctx:       ctx,
		logger:    log,
		typesPath: filepath.FromSlash(typesPath),
		readFile:  os.ReadFile,
	}
}

// Path returns the types file location for a mission directory
func (l *Loader) Path(dir string) string {
	return filepath.Join(dir, l.typesPath)
}

// Load reads and extracts synchronously
func (l *Loader) Load(ctx context.Context, dir string) ([]types.Item, error) {
	path := l.Path(dir)
	start := time.Now()

	l.logger.Debug(component, "reading types file", map[string]interface{}{
		"path": path,
	})

	data, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := types.Extract(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	l.logger.Info(component, "types loaded", map[string]interface{}{
		"path":       path,
		"size_bytes": len(data),
		"records":    len(items),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return items, nil
}

// Start loads dir in the background and calls done with the result. A
// later Start supersedes an earlier one, whose result is then dropped.
// Failures are logged here; done still receives them.
func (l *Loader) Start(dir string, done func(Result)) {
	ctx, cancel := context.WithCancel(l.ctx)

	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	l.cancel = cancel
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		items, err := l.Load(ctx, dir)
		if err != nil && ctx.Err() == nil {
			l.logger.Error(component, err, map[string]interface{}{
				"dir": dir,
			})
		}

		l.mu.Lock()
		current := gen == l.generation && ctx.Err() == nil
		l.mu.Unlock()
		if !current {
			l.logger.Debug(component, "discarding superseded load", map[string]interface{}{
				"dir": dir,
			})
			return
		}

		done(Result{Dir: dir, Path: l.Path(dir), Items: items, Err: err})
	}()
}

// Shutdown drops the result of any load in flight and waits for it to
// return. The loads themselves stop once the parent context is cancelled.
func (l *Loader) Shutdown() {
	l.mu.Lock()
	l.generation++
	l.mu.Unlock()

	l.wg.Wait()
}
