package settingsx

import (
	"context"
	"io"
	"io/fs"

	"go.fernwave.dev/settingsx/core/errors"
	"go.fernwave.dev/settingsx/core/log"
	"go.fernwave.dev/settingsx/internal"
)

// Kind tags the configuration source variants held by a List.
type Kind string

const (
	// KindFile marks a source backed by a JSON file on disk.
	KindFile = Kind(internal.KindFile)
	// KindEmbedded marks a source backed by a resource embedded in a
	// library artifact.
	KindEmbedded = Kind(internal.KindEmbedded)
)

// Resolver locates an embedded resource by (ownerID, resourceName) and opens
// its byte stream. Implementations must report a missing resource with
// errors.CodeNotFound (or fs.ErrNotExist).
type Resolver interface {
	Open(ownerID, resourceName string) (io.ReadCloser, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ownerID, resourceName string) (io.ReadCloser, error)

// Open calls f.
func (f ResolverFunc) Open(ownerID, resourceName string) (io.ReadCloser, error) {
	return f(ownerID, resourceName)
}

// Options holds configuration for a List.
type Options struct {
	Logger   log.Logger // Logger for list operations (default: noop)
	Resolver Resolver   // Resolver for embedded resources (required when embedded sources are used)
}

// SourceInfo is a read-only view of one list entry.
type SourceInfo struct {
	Kind         Kind   // Source variant
	Path         string // File path (KindFile only)
	OwnerID      string // Owner identifier (KindEmbedded only)
	ResourceName string // Resource name (KindEmbedded only)
	Optional     bool   // Whether a missing resource is tolerated (KindEmbedded only)
}

// List is a mutable ordered sequence of configuration sources. Order defines
// override precedence: later entries override earlier entries for identical
// keys. Lists are built by a single goroutine during application startup and
// then resolved once.
type List struct {
	impl *internal.List
}

// NewList creates an empty source list.
func NewList(opts Options) *List {
	var resolver internal.Resolver
	if opts.Resolver != nil {
		resolver = opts.Resolver
	}
	return &List{impl: internal.NewList(opts.Logger, resolver)}
}

// Len returns the number of sources in the list.
func (l *List) Len() int {
	return l.impl.Len()
}

// Sources returns a read-only view of the current source sequence.
func (l *List) Sources() []SourceInfo {
	sources := l.impl.Sources()
	out := make([]SourceInfo, 0, len(sources))
	for _, src := range sources {
		switch s := src.(type) {
		case *internal.FileSource:
			out = append(out, SourceInfo{Kind: KindFile, Path: s.Path})
		case *internal.EmbeddedSource:
			out = append(out, SourceInfo{
				Kind:         KindEmbedded,
				OwnerID:      s.OwnerID,
				ResourceName: s.ResourceName,
				Optional:     s.Optional,
			})
		default:
			out = append(out, SourceInfo{Kind: Kind(src.Kind())})
		}
	}
	return out
}

// AddJSONFile appends a JSON file source to the end of the list. Returns the
// list for chaining.
func (l *List) AddJSONFile(path string) *List {
	l.impl.Append(internal.NewFileSource(path))
	return l
}

// FindEmbedded returns the index of the first embedded source matching
// (ownerID, resourceName), or false when no such source exists.
func (l *List) FindEmbedded(ownerID, resourceName string) (int, bool) {
	return l.impl.FindEmbedded(ownerID, resourceName)
}

// FindFile returns the index of the first file source whose path
// case-insensitively contains filter. An empty filter matches any file
// source.
func (l *List) FindFile(filter string) (int, bool) {
	return l.impl.FindFile(filter)
}

// AddEmbedded appends the embedded source identified by (ownerID,
// resourceName) to the end of the list, skipping the insert when a source
// with the same identity already exists. Returns the list for chaining.
func (l *List) AddEmbedded(ownerID, resourceName string, optional bool) *List {
	l.impl.AddEmbedded(ownerID, resourceName, optional)
	return l
}

// AddEmbeddedAt inserts the embedded source identified by (ownerID,
// resourceName) at index, or repositions it there when it already exists
// elsewhere in the list. index must be in [0, Len()]; out of range is
// reported with errors.CodeOutOfRange.
func (l *List) AddEmbeddedAt(ownerID, resourceName string, index int, optional bool) error {
	return l.impl.AddEmbeddedAt(ownerID, resourceName, index, optional)
}

// Move repositions the source at oldIndex to newIndex, preserving the
// relative order of all other sources. Both indices must be in [0, Len()).
func (l *List) Move(oldIndex, newIndex int) error {
	return l.impl.Move(oldIndex, newIndex)
}

// AddSharedSettings inserts a library's embedded default settings so that
// the application's own file sources override them. The base resource
// "<ownerID>.appsettings.json" is placed immediately before the base file
// source, and "<ownerID>.appsettings.<environment>.json" immediately before
// the environment-specific file source. An empty environment adds only the
// base resource. Calling again with the same arguments leaves the list
// unchanged.
func (l *List) AddSharedSettings(ownerID, environment string, optional bool) error {
	return l.impl.AddSharedSettings(ownerID, environment, optional)
}

// Resolve loads every source in list order, deep-merges the trees with
// last-wins precedence, and flattens the result into dot-separated keys with
// stringified leaf values.
func (l *List) Resolve(ctx context.Context) (map[string]string, error) {
	return l.impl.Resolve(ctx)
}

// Bind resolves the list and decodes the snapshot into target, a pointer to
// a struct with env/envDefault tags. Snapshot keys are normalized to
// environment variable style before lookup.
func (l *List) Bind(ctx context.Context, target any, opts ...BindOption) error {
	if target == nil {
		return errors.New(errors.CodeInvalidArgument, "bind: target cannot be nil")
	}

	var cfg bindConfig
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	snapshot, err := l.impl.Resolve(ctx)
	if err != nil {
		return err
	}

	if err := internal.Bind(snapshot, target); err != nil {
		return err
	}

	if cfg.validate {
		return ValidateStruct(cfg.validator, target)
	}
	return nil
}

// BindOption configures binding behavior.
type BindOption interface {
	apply(*bindConfig)
}

type bindConfig struct {
	validate  bool
	validator validatorHandle
}

type bindOptionFunc func(*bindConfig)

func (f bindOptionFunc) apply(cfg *bindConfig) {
	f(cfg)
}

// WithValidation validates the bound struct with its validate tags after
// decoding.
func WithValidation() BindOption {
	return bindOptionFunc(func(cfg *bindConfig) {
		cfg.validate = true
	})
}

// BaseResourceName returns the conventional name of a library's base
// settings resource: "<ownerID>.appsettings.json".
func BaseResourceName(ownerID string) string {
	return internal.BaseResourceName(ownerID)
}

// EnvResourceName returns the conventional name of a library's
// environment-specific settings resource:
// "<ownerID>.appsettings.<environment>.json".
func EnvResourceName(ownerID, environment string) string {
	return internal.EnvResourceName(ownerID, environment)
}

// Registry resolves embedded resources from per-owner file systems. Shared
// libraries register the embed.FS carrying their default settings under
// their owner identifier; the registry then serves as the Resolver for the
// source list.
type Registry struct {
	impl *internal.Registry
}

// NewRegistry creates an empty resource registry.
func NewRegistry() *Registry {
	return &Registry{impl: internal.NewRegistry()}
}

// Register associates ownerID with the file system carrying its resources.
// Registering the same owner again replaces the previous file system.
func (r *Registry) Register(ownerID string, fsys fs.FS) {
	r.impl.Register(ownerID, fsys)
}

// Open implements Resolver.
func (r *Registry) Open(ownerID, resourceName string) (io.ReadCloser, error) {
	return r.impl.Open(ownerID, resourceName)
}
