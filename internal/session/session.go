// Package session provides the Go-native analogue of spec §6.1's opaque
// interactive MODE handle API (init/askAll/tellAll/population/destroy),
// grounded on the teacher's JobManager: a UUID-keyed map guarded by a
// single RWMutex, since sessions are looked up far more often than they
// are created or destroyed.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kestrelopt/modelde/internal/fitness"
	"github.com/kestrelopt/modelde/internal/mode"
)

// ErrNotFound is returned by every Manager method given an unknown or
// already-destroyed handle.
type ErrNotFound struct {
	Handle string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("session: no such handle %q", e.Handle)
}

type entry struct {
	opt *mode.Optimizer
	fit *fitness.MultiObjective

	mu       sync.Mutex  // serializes askAll/tellAll against one handle
	asked    [][]float64 // candidate vectors returned by the last AskAll
	slots    []int       // slot id returned by the last AskAll, aligned by row
	awaiting bool
}

// Manager owns every live interactive MODE session in the process.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*entry)}
}

// Init constructs a MODE optimizer from cfg and returns its handle. The
// initial population is sampled and evaluated synchronously through fit,
// per mode.New.
func (m *Manager) Init(cfg mode.Config, fit *fitness.MultiObjective) (string, error) {
	o, err := mode.New(cfg, fit, nil)
	if err != nil {
		return "", err
	}
	handle := uuid.New().String()

	m.mu.Lock()
	m.sessions[handle] = &entry{opt: o, fit: fit}
	m.mu.Unlock()
	return handle, nil
}

func (m *Manager) get(handle string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.sessions[handle]
	m.mu.RUnlock()
	if !ok {
		return nil, &ErrNotFound{Handle: handle}
	}
	return e, nil
}

// AskAll returns one candidate decision vector per population slot, per
// §6.1's askAll. It must be followed by exactly one TellAll (or
// TellAllWithStrategy) before the next AskAll on the same handle.
func (m *Manager) AskAll(handle string) ([][]float64, error) {
	e, err := m.get(handle)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.awaiting {
		return nil, fmt.Errorf("session: AskAll called again before TellAll on handle %q", handle)
	}

	popsize := len(e.opt.Population())
	x := make([][]float64, popsize)
	slots := make([]int, popsize)
	for i := 0; i < popsize; i++ {
		xi, slot := e.opt.Ask()
		x[i] = xi
		slots[i] = slot
	}
	e.asked = x
	e.slots = slots
	e.awaiting = true
	return x, nil
}

// TellAll reports the caller's evaluation of the vectors returned by the
// last AskAll, in the same row order, per §6.1's tellAll. It returns
// whether the optimizer's cooperative termination flag is now set.
func (m *Manager) TellAll(handle string, y [][]float64) (bool, error) {
	e, err := m.get(handle)
	if err != nil {
		return false, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.awaiting {
		return false, fmt.Errorf("session: TellAll called without a matching AskAll on handle %q", handle)
	}
	if len(y) != len(e.slots) {
		return false, fmt.Errorf("session: TellAll got %d rows, want %d", len(y), len(e.slots))
	}

	for i, slot := range e.slots {
		e.opt.Tell(e.asked[i], y[i], slot)
	}
	e.awaiting = false
	e.slots = nil
	e.asked = nil
	return e.fit.Terminated(), nil
}

// TellAllWithStrategy is TellAll plus a mid-run variation-strategy switch,
// per §6.1's tellAll variant and §8 scenario 6.
func (m *Manager) TellAllWithStrategy(handle string, y [][]float64, nsgaUpdate bool, paretoUpdate float64) (bool, error) {
	e, err := m.get(handle)
	if err != nil {
		return false, err
	}
	e.opt.SwitchStrategy(nsgaUpdate, paretoUpdate)
	return m.TellAll(handle, y)
}

// Population returns the handle's current survivors' decision vectors.
func (m *Manager) Population(handle string) ([][]float64, error) {
	e, err := m.get(handle)
	if err != nil {
		return nil, err
	}
	return e.opt.Population(), nil
}

// Destroy frees the handle. Destroying an unknown handle is a no-op,
// mirroring the idempotent-free convention the spec's C-style API
// implies.
func (m *Manager) Destroy(handle string) {
	m.mu.Lock()
	delete(m.sessions, handle)
	m.mu.Unlock()
}
