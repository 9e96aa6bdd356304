// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Thread-safe configuration store with dynamic update and hot-reload propagation.
//
// PoolConfig carries the mempool.Pool construction parameters (capacity,
// slot size, verifier toggle, NUMA preference) plus pipeline tunables that
// remain safe to reload live (ingest worker count, log verbosity).
// Capacity and SlotSize are read once by cmd/filemempoolctl at
// construction and never mutated afterward, preserving the base spec's
// Non-goal against dynamic pool growth; only the ConfigStore-backed
// tunables below flow through OnReload/SetConfig.

package control

import (
	"sync"
)

// ConfigStore is a dynamic key/value map with atomic snapshot and listener support.
type ConfigStore struct {
	mu        sync.RWMutex
	config    map[string]any
	listeners []func()
}

// NewConfigStore initializes a new config store with empty data.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		config:    make(map[string]any),
		listeners: make([]func(), 0),
	}
}

// GetSnapshot returns a copy of all config values.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	copy := make(map[string]any, len(cs.config))
	for k, v := range cs.config {
		copy[k] = v
	}
	return copy
}

// SetConfig merges new values and dispatches reload if needed.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	for k, v := range newCfg {
		cs.config[k] = v
	}
	cs.dispatchReload()
}

// OnReload registers a listener hook called on config changes.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}

// dispatchReload invokes all listeners.
func (cs *ConfigStore) dispatchReload() {
	for _, fn := range cs.listeners {
		go fn()
	}
}

// PoolConfig holds the construction parameters for a mempool.Pool plus
// live-reloadable pipeline tunables. Construction fields are read once;
// Tunables is a ConfigStore so ingest workers can observe changes (worker
// count, log verbosity) without restarting the pool.
type PoolConfig struct {
	Capacity   uint64
	SlotSize   int
	VerifyOnOp bool
	NUMANode   int

	Tunables *ConfigStore
}

// DefaultPoolConfig returns a baseline configuration sized for a modest
// file-reassembly workload.
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		Capacity:   4096,
		SlotSize:   4096,
		VerifyOnOp: false,
		NUMANode:   -1,
		Tunables:   NewConfigStore(),
	}
}
