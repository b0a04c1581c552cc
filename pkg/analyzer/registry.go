package analyzer

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds analyzers in registration order, each under a unique name
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]FileAnalyzer
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]FileAnalyzer)}
}

// Register adds an analyzer. A second analyzer with the same name is rejected.
func (r *Registry) Register(a FileAnalyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[a.Name()]; exists {
		return fmt.Errorf("analyzer %q already registered", a.Name())
	}
	r.byName[a.Name()] = a
	r.order = append(r.order, a.Name())
	return nil
}

// GetAnalyzersForFormat returns the analyzers accepting format, in registration order
func (r *Registry) GetAnalyzersForFormat(format string) []FileAnalyzer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []FileAnalyzer
	for _, name := range r.order {
		if a := r.byName[name]; a.CanAnalyze(format) {
			matches = append(matches, a)
		}
	}
	return matches
}

// GetSupportedFormats returns the union of all registered formats, sorted
func (r *Registry) GetSupportedFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, a := range r.byName {
		for _, f := range a.SupportedFormats() {
			seen[f] = struct{}{}
		}
	}

	formats := make([]string, 0, len(seen))
	for f := range seen {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
