package rules

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed presets/*.yaml
var presetFiles embed.FS

// PresetRegistry holds the built-in rule sets shipped with the binary.
type PresetRegistry struct {
	presets map[string]*File
	mu      sync.RWMutex
}

// NewPresetRegistry loads and validates every embedded preset.
func NewPresetRegistry() (*PresetRegistry, error) {
	r := &PresetRegistry{
		presets: make(map[string]*File),
	}

	entries, err := presetFiles.ReadDir("presets")
	if err != nil {
		return nil, fmt.Errorf("read embedded presets: %w", err)
	}

	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), ".yaml")
		if err := r.loadPresetFile(name); err != nil {
			return nil, fmt.Errorf("load preset %s: %w", name, err)
		}
	}

	return r, nil
}

func (r *PresetRegistry) loadPresetFile(name string) error {
	data, err := presetFiles.ReadFile(fmt.Sprintf("presets/%s.yaml", name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	f, err := Parse(data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.presets[name] = f
	r.mu.Unlock()

	return nil
}

// Get returns the named preset, or an error listing the known names.
func (r *PresetRegistry) Get(name string) (*File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if f, ok := r.presets[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(r.names(), ", "))
}

// Names lists the available presets in sorted order.
func (r *PresetRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.names()
}

func (r *PresetRegistry) names() []string {
	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
