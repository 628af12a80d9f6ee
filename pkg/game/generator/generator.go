package generator

import (
	"fmt"
	"sort"
)

// GridGenerator is an interface for map generation algorithms
type GridGenerator interface {
	Generate(cfg Config) (*Dungeon, error)
	Name() string
}

// Available generators
var (
	Digger = &DiggerGenerator{}
	BSP    = &BSPGenerator{}
)

// DefaultGenerator is the default map generator
var DefaultGenerator GridGenerator = Digger

var generators = map[string]GridGenerator{
	Digger.Name(): Digger,
	BSP.Name():    BSP,
}

// Lookup returns the generator registered under name
func Lookup(name string) (GridGenerator, error) {
	g, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown generator %q", ErrInvalidConfig, name)
	}
	return g, nil
}

// Names returns the registered generator names, sorted
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
