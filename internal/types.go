// Package internal provides the internal implementation for settingsx.
package internal

import (
	"context"
	"io"
)

// Kind tags the configuration source variants.
type Kind string

const (
	// KindFile marks a source backed by a JSON file on disk.
	KindFile Kind = "file"
	// KindEmbedded marks a source backed by a resource embedded in a
	// library artifact, identified by (owner, resource name).
	KindEmbedded Kind = "embedded"
)

// Source is a single entry of the ordered source list. Sources load into a
// nested JSON tree; position in the list decides precedence (later entries
// override earlier ones on key collision).
type Source interface {
	// Kind returns the variant tag of this source.
	Kind() Kind

	// Describe returns a human-readable identity for logs and errors.
	Describe() string

	// Load reads the source into a nested key tree. Loading is performed
	// once, synchronously, when the list is resolved.
	Load(ctx context.Context) (map[string]any, error)
}

// Resolver locates an embedded resource by (ownerID, resourceName) and opens
// its byte stream. A missing resource must be reported with CodeNotFound.
type Resolver interface {
	Open(ownerID, resourceName string) (io.ReadCloser, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ownerID, resourceName string) (io.ReadCloser, error)

// Open calls f.
func (f ResolverFunc) Open(ownerID, resourceName string) (io.ReadCloser, error) {
	return f(ownerID, resourceName)
}
