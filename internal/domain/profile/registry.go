package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync/atomic"
)

var (
	// ErrInvalidProfile marks load-time configuration failures. These
	// are fatal at startup, before any document is processed.
	ErrInvalidProfile = errors.New("invalid vendor profile")

	// ErrVendorNotFound is returned by Get for unknown vendor keys.
	ErrVendorNotFound = errors.New("vendor profile not found")
)

// Registry is an immutable catalog of compiled vendor profiles, held
// in fixed priority order. It is shared read-only across concurrent
// document runs and never mutated after construction.
type Registry struct {
	ordered []*Compiled
	byKey   map[string]*Compiled
}

// NewRegistry validates and compiles the given profiles. Duplicate
// keys and non-compiling patterns fail the whole load.
func NewRegistry(profiles []VendorProfile) (*Registry, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no profiles configured", ErrInvalidProfile)
	}

	r := &Registry{byKey: make(map[string]*Compiled, len(profiles))}
	for _, p := range profiles {
		c, err := Compile(p)
		if err != nil {
			return nil, err
		}
		if _, dup := r.byKey[c.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate vendor key %q", ErrInvalidProfile, c.Key)
		}
		r.byKey[c.Key] = c
		r.ordered = append(r.ordered, c)
	}

	sort.SliceStable(r.ordered, func(i, j int) bool {
		return r.ordered[i].Priority < r.ordered[j].Priority
	})
	return r, nil
}

// Default builds the registry from the built-in vendor profiles.
func Default() (*Registry, error) {
	return NewRegistry(defaultProfiles())
}

// LoadFile builds a registry from a JSON profile file, replacing the
// built-ins wholesale.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}

	var profiles []VendorProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidProfile, path, err)
	}
	return NewRegistry(profiles)
}

// Get returns the compiled profile for a vendor key.
func (r *Registry) Get(key string) (*Compiled, error) {
	if c, ok := r.byKey[key]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrVendorNotFound, key)
}

// All returns the profiles in priority order. The returned slice is
// shared; callers must not modify it.
func (r *Registry) All() []*Compiled {
	return r.ordered
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int { return len(r.ordered) }

// Store holds the active registry snapshot. Reload swaps the snapshot
// atomically so concurrent document runs never observe a partially
// updated catalog.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore creates a store seeded with the given registry.
func NewStore(r *Registry) *Store {
	s := &Store{}
	s.current.Store(r)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Reload validates the replacement profiles and, only on success,
// swaps them in. A failed reload leaves the previous snapshot active.
func (s *Store) Reload(profiles []VendorProfile) error {
	r, err := NewRegistry(profiles)
	if err != nil {
		return err
	}
	s.current.Store(r)
	return nil
}
