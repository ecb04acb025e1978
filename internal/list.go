// Package internal provides the internal implementation for settingsx.
//
// Overview:
//   - Responsibility: Maintain the ordered configuration source list and its
//     positioning operations
//   - Key Types: List with find, insert, move, and dedup-append operations
//   - Concurrency Model: Lists are built by a single goroutine during startup;
//     no concurrent mutation is supported
//   - Error Semantics: Out-of-range indices are programming errors reported
//     with CodeOutOfRange
package internal

import (
	"strings"

	"go.fernwave.dev/settingsx/core/errors"
	"go.fernwave.dev/settingsx/core/log"
)

// List is a mutable ordered sequence of configuration sources. Order defines
// override precedence: later entries override earlier entries for identical
// keys. At most one embedded source per (ownerID, resourceName) pair may
// exist in a list at any time.
type List struct {
	logger   log.Logger
	resolver Resolver
	sources  []Source
}

// NewList creates an empty source list. A nil logger is replaced with a noop
// logger; the resolver may be nil when no embedded sources are used.
func NewList(logger log.Logger, resolver Resolver) *List {
	if logger == nil {
		logger = log.Noop()
	}
	return &List{
		logger:   logger,
		resolver: resolver,
	}
}

// Len returns the number of sources in the list.
func (l *List) Len() int {
	return len(l.sources)
}

// Sources returns a copy of the current source sequence.
func (l *List) Sources() []Source {
	out := make([]Source, len(l.sources))
	copy(out, l.sources)
	return out
}

// Append adds a source at the end of the list (highest precedence).
func (l *List) Append(src Source) {
	l.sources = append(l.sources, src)
}

// FindEmbedded returns the index of the first embedded source matching
// (ownerID, resourceName), or false when no such source exists.
func (l *List) FindEmbedded(ownerID, resourceName string) (int, bool) {
	for i, src := range l.sources {
		if src.Kind() != KindEmbedded {
			continue
		}
		if es, ok := src.(*EmbeddedSource); ok && es.OwnerID == ownerID && es.ResourceName == resourceName {
			return i, true
		}
	}
	return 0, false
}

// FindFile returns the index of the first file source whose path
// case-insensitively contains filter. An empty filter matches any file
// source. Returns false when no file source matches; callers supply their
// own fallback index.
func (l *List) FindFile(filter string) (int, bool) {
	filter = strings.ToLower(filter)
	for i, src := range l.sources {
		if src.Kind() != KindFile {
			continue
		}
		if fs, ok := src.(*FileSource); ok && (filter == "" || strings.Contains(strings.ToLower(fs.Path), filter)) {
			return i, true
		}
	}
	return 0, false
}

// Move repositions the source at oldIndex to newIndex, preserving the
// relative order of all other sources. Both indices must address existing
// entries.
func (l *List) Move(oldIndex, newIndex int) error {
	if oldIndex < 0 || oldIndex >= len(l.sources) {
		return errors.Newf(errors.CodeOutOfRange, "move: old index %d out of range [0, %d)", oldIndex, len(l.sources))
	}
	if newIndex < 0 || newIndex >= len(l.sources) {
		return errors.Newf(errors.CodeOutOfRange, "move: new index %d out of range [0, %d)", newIndex, len(l.sources))
	}
	if oldIndex == newIndex {
		return nil
	}

	src := l.sources[oldIndex]
	l.sources = append(l.sources[:oldIndex], l.sources[oldIndex+1:]...)

	l.sources = append(l.sources, nil)
	copy(l.sources[newIndex+1:], l.sources[newIndex:])
	l.sources[newIndex] = src

	l.logger.Debug("source moved",
		log.Str("source", src.Describe()),
		log.Int("from", oldIndex),
		log.Int("to", newIndex))
	return nil
}

// insertAt inserts src at index, shifting subsequent entries one position
// later. index may equal Len() to append.
func (l *List) insertAt(index int, src Source) error {
	if index < 0 || index > len(l.sources) {
		return errors.Newf(errors.CodeOutOfRange, "insert: index %d out of range [0, %d]", index, len(l.sources))
	}
	l.sources = append(l.sources, nil)
	copy(l.sources[index+1:], l.sources[index:])
	l.sources[index] = src
	return nil
}

// AddEmbeddedAt inserts the embedded source identified by (ownerID,
// resourceName) at index, or repositions it there when it already exists
// elsewhere in the list. Calling again with the same arguments is a no-op.
func (l *List) AddEmbeddedAt(ownerID, resourceName string, index int, optional bool) error {
	if index < 0 || index > len(l.sources) {
		return errors.Newf(errors.CodeOutOfRange, "add embedded: index %d out of range [0, %d]", index, len(l.sources))
	}

	if cur, ok := l.FindEmbedded(ownerID, resourceName); ok {
		if cur == index {
			return nil
		}
		// Removing the existing entry shifts every later position one
		// earlier, so a target past the current position must shift with
		// it to keep the source directly before the anchor at index.
		if cur < index {
			index--
		}
		return l.Move(cur, index)
	}

	src := NewEmbeddedSource(l.resolver, ownerID, resourceName, optional)
	if err := l.insertAt(index, src); err != nil {
		return err
	}
	l.logger.Debug("embedded source inserted",
		log.Str("resource", src.Describe()),
		log.Int("index", index),
		log.Bool("optional", optional))
	return nil
}

// AddEmbedded appends the embedded source identified by (ownerID,
// resourceName) to the end of the list. When a source with the same identity
// already exists anywhere in the list, the call is a no-op.
func (l *List) AddEmbedded(ownerID, resourceName string, optional bool) {
	if _, ok := l.FindEmbedded(ownerID, resourceName); ok {
		return
	}
	src := NewEmbeddedSource(l.resolver, ownerID, resourceName, optional)
	l.sources = append(l.sources, src)
	l.logger.Debug("embedded source appended",
		log.Str("resource", src.Describe()),
		log.Bool("optional", optional))
}

// AddSharedSettings inserts a library's embedded default settings so that the
// application's own file sources keep the last word. The base resource
// "<ownerID>.appsettings.json" goes immediately before the base file source
// (index 0 when none is present), and the environment resource
// "<ownerID>.appsettings.<environment>.json" immediately before the
// environment-specific file source (index 1 when none is present, clamped
// to the list length). An empty environment adds only the base resource.
func (l *List) AddSharedSettings(ownerID, environment string, optional bool) error {
	idx, ok := l.FindFile("")
	if !ok {
		idx = 0
	}
	if err := l.AddEmbeddedAt(ownerID, BaseResourceName(ownerID), idx, optional); err != nil {
		return err
	}

	if environment == "" {
		return nil
	}

	idx, ok = l.FindFile(environment)
	if !ok {
		idx = 1
		if idx > len(l.sources) {
			idx = len(l.sources)
		}
	}
	return l.AddEmbeddedAt(ownerID, EnvResourceName(ownerID, environment), idx, optional)
}

// BaseResourceName returns the conventional name of a library's base
// settings resource. The format is fixed for compatibility.
func BaseResourceName(ownerID string) string {
	return ownerID + ".appsettings.json"
}

// EnvResourceName returns the conventional name of a library's
// environment-specific settings resource. The format is fixed for
// compatibility.
func EnvResourceName(ownerID, environment string) string {
	return ownerID + ".appsettings." + environment + ".json"
}
