// Package timeout implements a one-shot timer primitive over an
// executor, grounded on original_source's netkit/timeout_monitor.h.
package timeout

import (
	"sync"
	"time"

	"github.com/nabbar/netkit/executor"
)

// Monitor is a cancelable one-shot timer that fires its callback on the
// given Executor, preserving the single-threaded-per-connection property:
// the callback never runs concurrently with other work posted to the same
// Executor.
type Monitor struct {
	mu    sync.Mutex
	timer *time.Timer
	ex    executor.Executor
}

// New creates an unarmed Monitor bound to ex.
func New(ex executor.Executor) *Monitor {
	return &Monitor{ex: ex}
}

// ExpiresAfter arms the monitor to invoke fn after d, on the bound
// Executor. Re-arming cancels any previously scheduled firing.
func (m *Monitor) ExpiresAfter(d time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(d, func() {
		m.ex.Post(fn)
	})
}

// ExpiresNever cancels any pending firing; connections call it once
// header parse completes and dispatch begins.
func (m *Monitor) ExpiresNever() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
