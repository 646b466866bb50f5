package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// Registry manages a collection of reject patterns.
type Registry interface {
	// Register adds a pattern to the registry.
	Register(pattern *RejectPattern) error

	// Unregister removes a pattern from the registry.
	Unregister(name string) error

	// Get returns a pattern by its name.
	Get(name string) (*RejectPattern, bool)

	// List returns all registered patterns.
	List() []*RejectPattern

	// ListByCategory returns patterns belonging to a category.
	ListByCategory(category string) []*RejectPattern

	// Reload reloads all patterns from the configured directory.
	Reload() error

	// Watch starts watching the pattern directory for changes.
	Watch() error

	// StopWatch stops watching the pattern directory.
	StopWatch()

	// LoadDirectory loads all patterns from a directory.
	LoadDirectory(dir string) error

	// LoadFile loads a single pattern file.
	LoadFile(path string) error

	// Reject reports whether candidate matches any registered pattern.
	// A *DefaultRegistry satisfies matcher.RejectFilter through this
	// method, so it can be handed straight to matcher.WithRejectFilters.
	Reject(candidate string) bool
}

// DefaultRegistry is the default implementation of Registry.
type DefaultRegistry struct {
	mu       sync.RWMutex
	patterns map[string]*RejectPattern
	byFile   map[string]string // file path -> pattern name, for handleFileRemove
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
	onChange func(event string, pattern *RejectPattern)
}

// NewRegistry creates an empty pattern registry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		patterns: make(map[string]*RejectPattern),
		byFile:   make(map[string]string),
	}
}

// NewRegistryWithDirectory creates a registry and loads patterns from dir.
func NewRegistryWithDirectory(dir string) (*DefaultRegistry, error) {
	r := NewRegistry()
	r.dir = dir

	if err := r.LoadDirectory(dir); err != nil {
		return nil, err
	}

	return r, nil
}

// Register adds a pattern to the registry, compiling it first if needed.
func (r *DefaultRegistry) Register(pattern *RejectPattern) error {
	if pattern == nil {
		return fmt.Errorf("pattern cannot be nil")
	}

	if err := pattern.Validate(); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if !pattern.IsCompiled() {
		if err := pattern.Compile(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.patterns[pattern.Name]; ok {
		if existing.Version == pattern.Version {
			return fmt.Errorf("pattern %q version %s already registered", pattern.Name, pattern.Version)
		}
	}

	r.patterns[pattern.Name] = pattern
	return nil
}

// Unregister removes a pattern from the registry.
func (r *DefaultRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patterns[name]; !ok {
		return fmt.Errorf("pattern %q not found", name)
	}

	delete(r.patterns, name)
	return nil
}

// Get returns a pattern by name.
func (r *DefaultRegistry) Get(name string) (*RejectPattern, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patterns[name]
	return p, ok
}

// List returns all registered patterns.
func (r *DefaultRegistry) List() []*RejectPattern {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patterns := make([]*RejectPattern, 0, len(r.patterns))
	for _, p := range r.patterns {
		patterns = append(patterns, p)
	}
	return patterns
}

// ListByCategory returns patterns belonging to category.
func (r *DefaultRegistry) ListByCategory(category string) []*RejectPattern {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categoryLower := strings.ToLower(category)
	var patterns []*RejectPattern
	for _, p := range r.patterns {
		if strings.ToLower(p.Category) == categoryLower {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// Count returns the number of registered patterns.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patterns)
}

// Reject reports whether candidate matches any registered pattern.
func (r *DefaultRegistry) Reject(candidate string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.patterns {
		if p.Reject(candidate) {
			return true
		}
	}
	return false
}

// LoadDirectory loads all YAML pattern files from dir.
func (r *DefaultRegistry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		path := filepath.Join(dir, name)
		if err := r.LoadFile(path); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading patterns: %s", strings.Join(loadErrors, "; "))
	}

	return nil
}

// LoadFile loads a single pattern file.
func (r *DefaultRegistry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var p RejectPattern
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	if err := r.Register(&p); err != nil {
		return fmt.Errorf("registering pattern: %w", err)
	}

	r.mu.Lock()
	r.byFile[path] = p.Name
	r.mu.Unlock()

	return nil
}

// Reload clears and reloads all patterns from the configured directory.
func (r *DefaultRegistry) Reload() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for reload")
	}

	r.mu.Lock()
	r.patterns = make(map[string]*RejectPattern)
	r.byFile = make(map[string]string)
	r.mu.Unlock()

	return r.LoadDirectory(r.dir)
}

// SetOnChange sets a callback invoked whenever Watch observes a change.
func (r *DefaultRegistry) SetOnChange(fn func(event string, pattern *RejectPattern)) {
	r.onChange = fn
}

// Watch starts watching the pattern directory for changes in a background
// goroutine. Call StopWatch to end it.
func (r *DefaultRegistry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}

	return nil
}

func (r *DefaultRegistry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}

			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create:
				r.handleFileChange(event.Name, "create")

			case event.Op&fsnotify.Write == fsnotify.Write:
				r.handleFileChange(event.Name, "modify")

			case event.Op&fsnotify.Remove == fsnotify.Remove:
				r.handleFileRemove(event.Name)

			case event.Op&fsnotify.Rename == fsnotify.Rename:
				r.handleFileRemove(event.Name)
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			_ = err
		}
	}
}

func (r *DefaultRegistry) handleFileChange(path string, eventType string) {
	if err := r.LoadFile(path); err != nil {
		_ = err
		return
	}

	if r.onChange != nil {
		if p, ok := r.getPatternByFile(path); ok {
			r.onChange(eventType, p)
		}
	}
}

func (r *DefaultRegistry) handleFileRemove(path string) {
	r.mu.Lock()
	name, tracked := r.byFile[path]
	if tracked {
		delete(r.byFile, path)
		delete(r.patterns, name)
	}
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange("remove", nil)
	}
}

func (r *DefaultRegistry) getPatternByFile(path string) (*RejectPattern, bool) {
	r.mu.RLock()
	name, ok := r.byFile[path]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return r.Get(name)
}

// StopWatch stops a previously started Watch.
func (r *DefaultRegistry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
}

// Clear removes all patterns from the registry.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns = make(map[string]*RejectPattern)
	r.byFile = make(map[string]string)
}
