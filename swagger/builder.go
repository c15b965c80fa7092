package swagger

import (
	"log/slog"

	"github.com/drblury/swaggerversioning/apiversion"
)

// Registration is the outcome of registering one version's document.
type Registration struct {
	GroupName string
	Metadata  DocumentMetadata
	Err       error
}

// OK reports whether the document was registered.
func (r Registration) OK() bool {
	return r.Err == nil
}

// BuilderOption configures a VersionDocumentBuilder.
type BuilderOption func(*VersionDocumentBuilder)

// VersionDocumentBuilder registers one document per API version.
type VersionDocumentBuilder struct {
	provider    apiversion.Provider
	registrar   DocumentRegistrar
	title       string
	description string
	logger      *slog.Logger
}

// NewVersionDocumentBuilder wires the builder to its version source and the
// registrar receiving the documents.
func NewVersionDocumentBuilder(provider apiversion.Provider, registrar DocumentRegistrar, opts ...BuilderOption) *VersionDocumentBuilder {
	b := &VersionDocumentBuilder{
		provider:  provider,
		registrar: registrar,
		title:     Title,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// WithTitle overrides the document title.
func WithTitle(title string) BuilderOption {
	return func(b *VersionDocumentBuilder) {
		if title != "" {
			b.title = title
		}
	}
}

// WithDescription sets a base description shared by every version. The
// deprecation notice is appended to it for deprecated versions.
func WithDescription(description string) BuilderOption {
	return func(b *VersionDocumentBuilder) {
		b.description = description
	}
}

// WithBuilderLogger sets the logger receiving failed registrations.
func WithBuilderLogger(logger *slog.Logger) BuilderOption {
	return func(b *VersionDocumentBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Metadata derives the document metadata of a single version.
func (b *VersionDocumentBuilder) Metadata(d apiversion.Descriptor) DocumentMetadata {
	meta := DocumentMetadata{
		Title:       b.title,
		Version:     d.Version.String(),
		Description: b.description,
		Deprecated:  d.Deprecated,
	}
	if d.Deprecated {
		if meta.Description == "" {
			meta.Description = DeprecationNotice
		} else {
			meta.Description += " " + DeprecationNotice
		}
	}
	return meta
}

// resetter is implemented by registrars that can drop earlier passes.
type resetter interface {
	Reset()
}

// Configure queries the provider and registers a document per version.
// Registrars implementing Reset are cleared first, so running Configure again
// rebuilds the documents instead of rejecting them as duplicates.
func (b *VersionDocumentBuilder) Configure() map[string]DocumentMetadata {
	if b.provider == nil {
		return map[string]DocumentMetadata{}
	}
	if r, ok := b.registrar.(resetter); ok {
		r.Reset()
	}
	return b.BuildAll(b.provider.Descriptions())
}

// BuildAll registers a document for each descriptor and returns the
// documents that were accepted, keyed by group. A rejected registration only
// skips its own descriptor.
func (b *VersionDocumentBuilder) BuildAll(descriptors []apiversion.Descriptor) map[string]DocumentMetadata {
	built := make(map[string]DocumentMetadata, len(descriptors))
	for _, reg := range b.Register(descriptors) {
		if !reg.OK() {
			continue
		}
		built[reg.GroupName] = reg.Metadata
	}
	return built
}

// Register attempts every registration in input order and reports each
// outcome.
func (b *VersionDocumentBuilder) Register(descriptors []apiversion.Descriptor) []Registration {
	results := make([]Registration, 0, len(descriptors))
	for _, d := range descriptors {
		results = append(results, b.register(d))
	}
	return results
}

func (b *VersionDocumentBuilder) register(d apiversion.Descriptor) Registration {
	reg := Registration{GroupName: d.GroupName, Metadata: b.Metadata(d)}
	if b.registrar == nil {
		return reg
	}

	if err := b.registrar.Register(d.GroupName, reg.Metadata); err != nil {
		reg.Err = err
		b.logger.Warn("skipping api version document",
			"group", d.GroupName,
			"version", reg.Metadata.Version,
			"error", err,
		)
	}
	return reg
}
