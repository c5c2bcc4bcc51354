package assets

import (
	"fmt"
	"image"

	"github.com/AnyUserName/pixkit/internal/codec"
	"github.com/AnyUserName/pixkit/internal/imgerr"
)

// Adapter converts a pipeline image into a toolkit's native handle
// type. The core never branches on toolkit identity: a GUI binary
// implements Adapter once for its toolkit and passes it in. The
// returned handle has no lifetime coupling to any widget; whoever
// displays it owns it.
type Adapter interface {
	Name() string
	FromImage(img image.Image) (any, error)
}

// AdapterRegistry is an explicit registration table of adapters, built
// at startup by the hosting binary.
type AdapterRegistry struct {
	adapters map[string]Adapter
}

// NewAdapterRegistry builds a registry from the given adapters. The
// memory adapter is always present.
func NewAdapterRegistry(adapters ...Adapter) *AdapterRegistry {
	r := &AdapterRegistry{adapters: make(map[string]Adapter)}
	r.adapters[MemoryAdapter{}.Name()] = MemoryAdapter{}
	for _, a := range adapters {
		r.adapters[a.Name()] = a
	}
	return r
}

// Get returns the named adapter.
func (r *AdapterRegistry) Get(name string) (Adapter, error) {
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown adapter %q", imgerr.ErrInvalidParameter, name)
	}
	return a, nil
}

// Names lists registered adapter names.
func (r *AdapterRegistry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	return names
}

// MemoryAdapter hands back the image itself as an *image.NRGBA. It is
// the toolkit-neutral adapter used by the CLI and by tests.
type MemoryAdapter struct{}

func (MemoryAdapter) Name() string { return "memory" }

func (MemoryAdapter) FromImage(img image.Image) (any, error) {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba, nil
	}
	return codec.NormalizeNRGBA(img), nil
}
