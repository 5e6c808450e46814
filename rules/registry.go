package rules

import "sync"

// Func is a rule predicate. It receives the post-conversion field value and
// the parameter declared for the rule in the schema, and reports whether the
// value is acceptable. Predicates must be pure and must not panic.
type Func func(value any, param any) bool

// Registry is a named table of rule predicates. Each validator holds a
// registry value, so tests and multi-tenant hosts can isolate rule sets;
// the process-wide Default registry backs the package-level Register for
// hosts that want the classic global surface.
//
// Registration is expected during application setup, before validations run
// concurrently; the lock makes late registration safe regardless.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Func
}

// New creates a registry preloaded with the built-in rules.
func New() *Registry {
	r := &Registry{rules: make(map[string]Func, len(builtins))}
	for name, fn := range builtins {
		r.rules[name] = fn
	}
	return r
}

// NewEmpty creates a registry with no rules at all.
func NewEmpty() *Registry {
	return &Registry{rules: make(map[string]Func)}
}

// Register installs or replaces the named rule. The last registration for a
// given name wins; rules are never removed.
func (r *Registry) Register(name string, fn Func) {
	if name == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[name] = fn
}

// Has reports whether a rule with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[name]
	return ok
}

// Apply runs the named rule against a value. An unregistered name fails
// closed rather than passing the value through.
func (r *Registry) Apply(name string, value, param any) bool {
	r.mu.RLock()
	fn, ok := r.rules[name]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	return fn(value, param)
}

// Names returns the registered rule names in unspecified order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	return names
}

var defaultRegistry = New()

// Default returns the process-wide registry used by validators that are not
// given an explicit one.
func Default() *Registry {
	return defaultRegistry
}

// Register installs or replaces a rule in the process-wide registry.
func Register(name string, fn Func) {
	defaultRegistry.Register(name, fn)
}
