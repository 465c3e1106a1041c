package connector

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoProvider is returned when no provider is registered for an engine.
var ErrNoProvider = errors.New("connector: no provider registered")

var globalManager = &Manager{
	providers: make(map[DBType]Provider),
}

// Manager keeps the engine to provider mapping. Providers register
// themselves from init functions, so the zero-config path is a blank import.
type Manager struct {
	providers map[DBType]Provider
	mu        sync.RWMutex
}

// Register binds a provider to an engine, replacing any previous one.
func Register(t DBType, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[t] = provider
}

// Unregister removes the provider of an engine.
func Unregister(t DBType) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	delete(globalManager.providers, t)
}

// Lookup returns the provider registered for an engine.
func Lookup(t DBType) (Provider, error) {
	globalManager.mu.RLock()
	provider, ok := globalManager.providers[t]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoProvider, t)
	}
	return provider, nil
}
