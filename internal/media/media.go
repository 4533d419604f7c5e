package media

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/cutline/internal/timeline"
)

// ErrNotFound indicates the media reference is not registered.
var ErrNotFound = errors.New("media not found")

// Info is the metadata snapshot for one media asset. The processing
// collaborator guarantees duration and natural dimensions are known before
// the asset is registered; the engine never decodes media itself and
// treats these values as opaque facts.
type Info struct {
	Ref      string
	Name     string
	Duration timeline.Ticks
	Width    int
	Height   int
}

// Source is the read contract the engine consumes: resolve a media
// reference to its metadata.
type Source interface {
	Lookup(ref string) (Info, bool)
}

// Registry is an in-memory media metadata store implementing Source.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	assets map[string]Info
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{assets: make(map[string]Info)}
}

// Register stores metadata for an asset and returns its reference.
// A zero Ref is assigned a fresh identity.
func (r *Registry) Register(info Info) (string, error) {
	if info.Duration <= 0 {
		return "", errors.New("media duration must be positive")
	}
	if info.Ref == "" {
		info.Ref = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.assets[info.Ref] = info
	return info.Ref, nil
}

// Lookup resolves a reference to its metadata.
func (r *Registry) Lookup(ref string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.assets[ref]
	return info, ok
}

// Remove forgets an asset. Unknown references are ignored.
func (r *Registry) Remove(ref string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.assets, ref)
}

// Len returns the number of registered assets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.assets)
}
