package source

import "fmt"

// Constructor creates a Source from its configuration.
type Constructor func(cfg Config) (Source, error)

var registry = map[string]Constructor{}

// Register adds a source constructor under the given provider name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the source constructor for the given provider name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown source provider: %s", name)
	}
	return ctor, nil
}

// Providers returns the names of all registered source providers.
func Providers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
