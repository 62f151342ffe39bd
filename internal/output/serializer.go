package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Marshaler converts a result value into serialized bytes.
type Marshaler func(v any) ([]byte, error)

// Registry maps format names to Marshaler functions, enabling a shared
// --format flag across commands.
type Registry struct {
	mu         sync.RWMutex
	marshalers map[string]Marshaler
}

// NewRegistry creates an empty format registry.
func NewRegistry() *Registry {
	return &Registry{
		marshalers: make(map[string]Marshaler),
	}
}

// Register adds a marshaler under the given format name.
// Existing entries for the same name are overwritten.
func (r *Registry) Register(name string, m Marshaler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.marshalers[name] = m
}

// Marshaler returns the marshaler for the given format, or an error if
// not found.
func (r *Registry) Marshaler(name string) (Marshaler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.marshalers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %s)", name, r.AvailableFormats())
	}

	return m, nil
}

// Formats returns the sorted list of registered format names.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.marshalers))
	for name := range r.marshalers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// AvailableFormats returns a comma-separated string of registered format names.
func (r *Registry) AvailableFormats() string {
	formats := r.Formats()
	if len(formats) == 0 {
		return "none"
	}

	return strings.Join(formats, ", ")
}

// DefaultRegistry returns a registry pre-populated with the built-in
// formats: json, yaml.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register("json", MarshalJSON)
	r.Register("yaml", MarshalYAML)

	return r
}

// MarshalJSON serializes v as indented JSON with a trailing newline.
func MarshalJSON(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing JSON: %w", err)
	}

	return append(data, '\n'), nil
}

// MarshalYAML serializes v as two-space-indented YAML.
func MarshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("serializing YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("flushing YAML encoder: %w", err)
	}

	return buf.Bytes(), nil
}
