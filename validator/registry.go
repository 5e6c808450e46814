package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/formkit-go/formschema/schema"
)

// Registry stores named schemas and builds validators from them on demand.
// It performs no caching of validator instances: every CreateValidator call
// constructs a fresh one, so late schema mutations and late rule
// registrations are always picked up.
type Registry struct {
	mu         sync.RWMutex
	schemas    map[string]*schema.Schema
	strict     bool
	engineOpts []Option
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithEngineOptions sets the options applied to every validator the registry
// creates.
func WithEngineOptions(opts ...Option) RegistryOption {
	return func(r *Registry) {
		r.engineOpts = opts
	}
}

// WithStrictSchemas makes Register and LoadDir run CheckSchema, rejecting
// schemas with unregistered rule keys, malformed patterns, unknown format
// names or unparseable cross-field expressions instead of deferring those
// faults to validation time.
func WithStrictSchemas() RegistryOption {
	return func(r *Registry) {
		r.strict = true
	}
}

// NewRegistry creates an empty schema registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{schemas: make(map[string]*schema.Schema)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores a schema under the given key, replacing any previous one.
// The error is always nil unless the registry is strict.
func (r *Registry) Register(key string, s *schema.Schema) error {
	if r.strict {
		if err := r.check(s); err != nil {
			return fmt.Errorf("schema %q: %w", key, err)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemas[key] = s
	return nil
}

// CreateValidator builds a fresh validator for the named schema.
func (r *Registry) CreateValidator(key string) (*Validator, error) {
	r.mu.RLock()
	s, ok := r.schemas[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, key)
	}
	return New(s, r.engineOpts...)
}

// GetSchema returns the schema registered under the key.
func (r *Registry) GetSchema(key string) (*schema.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[key]
	return s, ok
}

// Has reports whether a schema is registered under the key.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.schemas[key]
	return ok
}

// Unregister removes the schema registered under the key, if any.
func (r *Registry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.schemas, key)
}

// Keys returns the registered schema keys, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.schemas))
	for key := range r.schemas {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LoadDir registers every supported schema file (*.json, *.yaml, *.yml)
// found directly in dir, keyed by file basename without extension. A file
// that fails to parse aborts the load.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read schema dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := schema.NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read schema file %q: %w", entry.Name(), err)
		}
		s, err := parser.Parse(data)
		if err != nil {
			return fmt.Errorf("parse schema file %q: %w", entry.Name(), err)
		}

		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if err := r.Register(key, s); err != nil {
			return err
		}
	}
	return nil
}
