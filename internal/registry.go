// Package internal provides the internal implementation for settingsx.
package internal

import (
	"io"
	"io/fs"
	"sync"

	"go.fernwave.dev/settingsx/core/errors"
)

// Registry resolves embedded resources from per-owner file systems. Libraries
// register the embed.FS carrying their default settings under their owner
// identifier during init; the registry then serves as the Resolver for every
// embedded source in the list.
type Registry struct {
	mu     sync.RWMutex
	owners map[string]fs.FS
}

// NewRegistry creates an empty resource registry.
func NewRegistry() *Registry {
	return &Registry{
		owners: make(map[string]fs.FS),
	}
}

// Register associates ownerID with the file system carrying its resources.
// Registering the same owner again replaces the previous file system.
func (r *Registry) Register(ownerID string, fsys fs.FS) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[ownerID] = fsys
}

// Open locates resourceName inside the file system registered for ownerID.
// An unknown owner or a missing file yields CodeNotFound.
func (r *Registry) Open(ownerID, resourceName string) (io.ReadCloser, error) {
	r.mu.RLock()
	fsys, ok := r.owners[ownerID]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.Newf(errors.CodeNotFound, "no resources registered for owner %q", ownerID)
	}

	f, err := fsys.Open(resourceName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.CodeNotFound, "registry", err, "resource %q not found for owner %q", resourceName, ownerID)
		}
		return nil, errors.Wrapf(errors.CodeInternal, "registry", err, "open resource %q for owner %q", resourceName, ownerID)
	}
	return f, nil
}
