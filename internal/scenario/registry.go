package scenario

import (
	"log/slog"
	"sync/atomic"
)

// Registry publishes the active catalog. Readers call [Registry.Current] per
// call and keep that catalog for the call's lifetime; a reload swaps the
// pointer without touching the published value.
type Registry struct {
	current atomic.Pointer[Catalog]
}

// NewRegistry returns a registry publishing the given catalog.
func NewRegistry(initial *Catalog) *Registry {
	r := &Registry{}
	r.current.Store(initial)
	return r
}

// Current returns the active catalog.
func (r *Registry) Current() *Catalog {
	return r.current.Load()
}

// Swap publishes next and returns the catalog it replaced. The caller must
// have validated next; the registry never inspects it.
func (r *Registry) Swap(next *Catalog) *Catalog {
	old := r.current.Swap(next)
	slog.Info("scenario: catalog swapped", "scenarios", len(next.Scenarios))
	return old
}
