package ggwin

import (
	"sort"
	"sync"
)

// DriverFactory creates a windowing-layer implementation.
// Factories should validate the environment and return descriptive errors.
type DriverFactory func() (Platform, error)

// driverEntry represents a registered windowing driver.
type driverEntry struct {
	name      string
	priority  int
	factory   DriverFactory
	available func() bool
}

// driverRegistry manages registered windowing drivers.
//
// The registry lets driver packages register themselves from an init
// function, so applications select a driver with a blank import instead of
// build-time wiring:
//
//	import _ "github.com/gogpu/ggwin/driver/glfwdriver"
type driverRegistry struct {
	mu      sync.RWMutex
	entries map[string]*driverEntry
}

// drivers is the process-wide driver registry.
var drivers = &driverRegistry{}

// RegisterDriver adds a windowing driver to the registry.
//
// Parameters:
//   - name: unique identifier (e.g., "glfw")
//   - priority: selection order (higher = preferred)
//   - factory: function creating the Platform
//   - available: reports if the driver can run on this system
//
// If available is nil, the driver is assumed always available.
// Registering a name that already exists replaces the previous entry.
func RegisterDriver(name string, priority int, factory DriverFactory, available func() bool) {
	drivers.register(name, priority, factory, available)
}

// Drivers returns all registered driver names sorted by priority
// (highest first).
func Drivers() []string {
	return drivers.sortedNames(false)
}

func (r *driverRegistry) register(name string, priority int, factory DriverFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*driverEntry)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.entries[name] = &driverEntry{
		name:      name,
		priority:  priority,
		factory:   factory,
		available: available,
	}
}

// newPlatform creates a Platform using the best available driver, trying
// each in priority order. Returns ErrNoDriver if none is registered or
// every factory fails.
func (r *driverRegistry) newPlatform() (Platform, error) {
	names := r.sortedNames(true)
	if len(names) == 0 {
		return nil, ErrNoDriver
	}

	var lastErr error
	for _, name := range names {
		p, err := r.newPlatformByName(name)
		if err == nil {
			Logger().Info("ggwin: windowing driver selected", "driver", name)
			return p, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoDriver
}

// newPlatformByName creates a Platform using a specific driver.
func (r *driverRegistry) newPlatformByName(name string) (Platform, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DriverNotFoundError{Name: name}
	}
	if !entry.available() {
		return nil, &DriverUnavailableError{Name: name}
	}
	return entry.factory()
}

// sortedNames returns driver names sorted by priority (highest first).
// If onlyAvailable is true, filters to available drivers only.
func (r *driverRegistry) sortedNames(onlyAvailable bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}
	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].priority > entries[j].priority
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
