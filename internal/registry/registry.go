// Package registry provides a global registry for frontend backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-runner/internal/config"
	"github.com/vovakirdan/nebula-runner/internal/core"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// RunStore records finished rounds. It is satisfied by *storage.Store.
type RunStore interface {
	SaveRun(outcome core.Outcome, elapsedSecs float64, frames int, backend string) (int64, error)
	UpdateRunOutcome(id int64, outcome core.Outcome) error
}

// RunOptions is everything a backend needs to play.
type RunOptions struct {
	Config config.RunnerConfig
	Store  RunStore    // May be nil; runs are then not recorded
	Logger *log.Logger // Never nil
}

// Recorder returns a session finish handler that logs the round and saves
// it to the store under backendID. A revised result updates the run saved
// last instead of adding one. Storage errors are logged, not returned.
func (o RunOptions) Recorder(backendID string) func(runner.RunResult) {
	var lastID int64
	return func(r runner.RunResult) {
		if r.Revised {
			o.Logger.Info("round revised", "backend", backendID, "outcome", r.Outcome)
		} else {
			o.Logger.Info("round finished", "backend", backendID, "outcome", r.Outcome, "elapsed", r.Elapsed, "frames", r.Frames)
		}
		if o.Store == nil {
			return
		}

		if r.Revised && lastID != 0 {
			if err := o.Store.UpdateRunOutcome(lastID, r.Outcome); err != nil {
				o.Logger.Warn("cannot revise run", "id", lastID, "err", err)
			}
			return
		}

		id, err := o.Store.SaveRun(r.Outcome, r.Elapsed, r.Frames, backendID)
		if err != nil {
			o.Logger.Warn("cannot record run", "err", err)
			lastID = 0
			return
		}
		lastID = id
	}
}

// Backend is a frontend that owns the window or terminal, the clock and
// the input mapping, and drives a runner session until the player quits.
type Backend interface {
	// ID returns a unique identifier for this backend (e.g., "window", "tui").
	// Used for CLI flags and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the player quits. It blocks.
	Run(opts RunOptions) error
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new backend by its ID.
// Returns an error if the backend ID is not registered.
func Create(id string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
