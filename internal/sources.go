// Package internal provides the internal implementation for settingsx.
package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/fs"
	"os"

	"go.fernwave.dev/settingsx/core/errors"
)

// FileSource loads configuration from a JSON file on disk. Following the
// appsettings convention a missing file contributes an empty tree rather
// than an error.
type FileSource struct {
	Path string
}

// NewFileSource creates a file-backed source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Kind returns KindFile.
func (s *FileSource) Kind() Kind {
	return KindFile
}

// Describe returns the file path.
func (s *FileSource) Describe() string {
	return s.Path
}

// Load reads and decodes the file into a nested key tree.
func (s *FileSource) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, errors.Wrapf(errors.CodeInternal, "file source", err, "read %s", s.Path)
	}

	return decodeTree(data, s.Path)
}

// EmbeddedSource loads configuration from a resource bundled inside a
// library artifact, located through the injected Resolver. When Optional is
// set a missing resource contributes an empty tree; otherwise it is a fatal
// startup error.
type EmbeddedSource struct {
	OwnerID      string
	ResourceName string
	Optional     bool

	resolver Resolver
}

// NewEmbeddedSource creates an embedded source resolved through resolver.
func NewEmbeddedSource(resolver Resolver, ownerID, resourceName string, optional bool) *EmbeddedSource {
	return &EmbeddedSource{
		OwnerID:      ownerID,
		ResourceName: resourceName,
		Optional:     optional,
		resolver:     resolver,
	}
}

// Kind returns KindEmbedded.
func (s *EmbeddedSource) Kind() Kind {
	return KindEmbedded
}

// Describe returns "ownerID/resourceName".
func (s *EmbeddedSource) Describe() string {
	return s.OwnerID + "/" + s.ResourceName
}

// Load opens the embedded resource and decodes it into a nested key tree.
func (s *EmbeddedSource) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.resolver == nil {
		return nil, errors.Newf(errors.CodeInvalidArgument, "embedded source %s: no resolver configured", s.Describe())
	}

	rc, err := s.resolver.Open(s.OwnerID, s.ResourceName)
	if err != nil {
		missing := errors.IsCode(err, errors.CodeNotFound) || errors.Is(err, fs.ErrNotExist)
		if missing && s.Optional {
			return map[string]any{}, nil
		}
		return nil, errors.Wrapf(errors.CodeNotFound, "embedded source", err, "open %s", s.Describe())
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(errors.CodeInternal, "embedded source", err, "read %s", s.Describe())
	}

	return decodeTree(data, s.Describe())
}

// decodeTree decodes a JSON document into a nested tree, keeping numbers in
// their literal form.
func decodeTree(data []byte, origin string) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tree := map[string]any{}
	if err := dec.Decode(&tree); err != nil {
		return nil, errors.Wrapf(errors.CodeInvalidArgument, "decode", err, "invalid JSON in %s", origin)
	}
	return tree, nil
}
