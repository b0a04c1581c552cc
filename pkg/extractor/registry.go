package extractor

import (
	"fmt"
	"sync"
)

// Registry maps extractor names to extractors
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]DataExtractor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{extractors: make(map[string]DataExtractor)}
}

// Register adds an extractor. Names must be unique.
func (r *Registry) Register(e DataExtractor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.extractors[e.Name()]; exists {
		return fmt.Errorf("extractor %q already registered", e.Name())
	}
	r.extractors[e.Name()] = e
	return nil
}

// GetExtractorByName returns the named extractor when it accepts format, or nil
func (r *Registry) GetExtractorByName(name string, format string) DataExtractor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.extractors[name]; ok && e.CanExtract(format) {
		return e
	}
	return nil
}
