package revision

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Fields that are bookkeeping for every tracked model and never diffed.
var alwaysExcluded = []string{"id", "revision", "created_at", "updated_at"}

// RedactFunc masks a field value before it is written to the revision trail.
type RedactFunc func(field string, v any) any

// Option configures how a model participates in diffing.
type Option func(*modelConfig)

// Exclude removes fields from diff computation and snapshots. A dot path
// removes a nested field only.
func Exclude(fields ...string) Option {
	return func(c *modelConfig) {
		c.exclude = append(c.exclude, fields...)
	}
}

// Only restricts tracking to the given fields.
func Only(fields ...string) Option {
	return func(c *modelConfig) {
		c.only = append(c.only, fields...)
	}
}

// Redact replaces the stored value of field, a top-level name or a dot
// path, with fn's result.
func Redact(field string, fn RedactFunc) Option {
	return func(c *modelConfig) {
		c.redact[field] = fn
	}
}

type modelConfig struct {
	exclude []string
	only    []string
	redact  map[string]RedactFunc
}

// Registry holds the set of tracked models and their field rules.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*modelConfig
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*modelConfig)}
}

// Register opts a model into revision tracking. Registering the same model
// again replaces its options.
func (r *Registry) Register(model string, opts ...Option) {
	cfg := &modelConfig{
		exclude: slices.Clone(alwaysExcluded),
		redact:  make(map[string]RedactFunc),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r.mu.Lock()
	r.models[model] = cfg
	r.mu.Unlock()
}

// Tracked reports whether model has been registered.
func (r *Registry) Tracked(model string) bool {
	_, ok := r.lookup(model)
	return ok
}

// Models returns the registered model names in sorted order.
func (r *Registry) Models() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExcludedFields lists the fields never diffed for model, sorted.
// Returns nil for an unregistered model.
func (r *Registry) ExcludedFields(model string) []string {
	cfg, ok := r.lookup(model)
	if !ok {
		return nil
	}
	out := slices.Clone(cfg.exclude)
	sort.Strings(out)
	return slices.Compact(out)
}

func (r *Registry) lookup(model string) (*modelConfig, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.models[model]
	return cfg, ok
}

// document normalises the raw fields of a record, then applies the field
// rules. Rule fields are dot paths, so "address.city" reaches into the
// nested address document.
func (c *modelConfig) document(fields map[string]any) (map[string]any, error) {
	doc, err := normalize(fields)
	if err != nil {
		return nil, err
	}

	if len(c.only) > 0 {
		picked := make(map[string]any, len(c.only))
		for _, path := range c.only {
			parts := strings.Split(path, ".")
			if v, ok := lookupPath(doc, parts); ok {
				setPath(picked, parts, v)
			}
		}
		doc = picked
	}
	for _, path := range c.exclude {
		removePath(doc, strings.Split(path, "."))
	}
	if len(c.redact) == 0 {
		return doc, nil
	}
	for path, fn := range c.redact {
		parts := strings.Split(path, ".")
		if v, ok := lookupPath(doc, parts); ok && fn != nil {
			setPath(doc, parts, fn(path, v))
		}
	}
	// Redact functions may return values that do not survive a JSON round
	// trip unchanged.
	return normalize(doc)
}

func lookupPath(m map[string]any, parts []string) (any, bool) {
	for _, p := range parts[:len(parts)-1] {
		next, ok := m[p].(map[string]any)
		if !ok {
			return nil, false
		}
		m = next
	}
	v, ok := m[parts[len(parts)-1]]
	return v, ok
}

// normalize round-trips v through JSON so that values compare the same way
// they will be stored: numbers become float64, structs become maps.
func normalize(fields map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	out := make(map[string]any, len(fields))
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal fields: %w", err)
	}
	return out, nil
}
