package swagger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	"github.com/drblury/swaggerversioning/binding"
	"github.com/drblury/swaggerversioning/endpoint"
	"github.com/drblury/swaggerversioning/jsonutil"
)

const (
	openAPIVersion     = "3.0.3"
	jsonContentType    = "application/json"
	problemContentType = "application/problem+json"
)

// EndpointSource lists the endpoints documented under a group.
type EndpointSource interface {
	Group(group string) []endpoint.Endpoint
}

// DocumentSource resolves registered document metadata.
type DocumentSource interface {
	Lookup(group string) (DocumentMetadata, bool)
	Groups() []string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// Generator renders OpenAPI documents from the endpoint catalog.
type Generator struct {
	endpoints EndpointSource
	documents DocumentSource
	filters   []OperationFilter
	problem   any
}

// NewGenerator returns a Generator. ParameterMetadataEnricher runs unless
// replaced through WithOperationFilters.
func NewGenerator(endpoints EndpointSource, documents DocumentSource, opts ...GeneratorOption) *Generator {
	g := &Generator{
		endpoints: endpoints,
		documents: documents,
		filters:   []OperationFilter{ParameterMetadataEnricher{}},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// WithOperationFilters replaces the operation filters.
func WithOperationFilters(filters ...OperationFilter) GeneratorOption {
	return func(g *Generator) {
		g.filters = slices.DeleteFunc(slices.Clone(filters), func(f OperationFilter) bool { return f == nil })
	}
}

// WithProblemSchema documents error responses with the schema of sample.
func WithProblemSchema(sample any) GeneratorOption {
	return func(g *Generator) {
		g.problem = sample
	}
}

// Generate renders and validates the document registered for group.
func (g *Generator) Generate(ctx context.Context, group string) (*openapi3.T, error) {
	meta, ok := g.documents.Lookup(group)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:       meta.Title,
			Version:     meta.Version,
			Description: meta.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, ep := range g.endpoints.Group(group) {
		if err := g.addOperation(doc, group, ep); err != nil {
			return nil, fmt.Errorf("document %s: %w", group, err)
		}
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("document %s is invalid: %w", group, err)
	}
	return doc, nil
}

// Groups lists the registered document groups.
func (g *Generator) Groups() []string {
	return g.documents.Groups()
}

// Lookup returns the metadata registered for group.
func (g *Generator) Lookup(group string) (DocumentMetadata, bool) {
	return g.documents.Lookup(group)
}

// JSON renders the document of group as JSON.
func (g *Generator) JSON(ctx context.Context, group string) ([]byte, error) {
	doc, err := g.Generate(ctx, group)
	if err != nil {
		return nil, err
	}
	return jsonutil.Marshal(doc)
}

// Merged combines every registered group into one document, used to
// validate incoming requests.
func (g *Generator) Merged(ctx context.Context) (*openapi3.T, error) {
	groups := g.documents.Groups()
	if len(groups) == 0 {
		return nil, errors.New("no documents registered")
	}

	merged := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info:    &openapi3.Info{Title: Title},
		Paths:   openapi3.NewPaths(),
	}

	versions := make([]string, 0, len(groups))
	for _, group := range groups {
		doc, err := g.Generate(ctx, group)
		if err != nil {
			return nil, err
		}
		merged.Info.Title = doc.Info.Title
		versions = append(versions, doc.Info.Version)
		for path, item := range doc.Paths.Map() {
			mergePathItem(merged, path, item)
		}
	}
	merged.Info.Version = strings.Join(versions, ", ")
	return merged, nil
}

// mergePathItem adds the operations of item to doc one method at a time, so
// versions sharing a path keep each other's operations.
func mergePathItem(doc *openapi3.T, path string, item *openapi3.PathItem) {
	for method, op := range item.Operations() {
		doc.AddOperation(path, method, op)
	}
	if len(item.Parameters) == 0 {
		return
	}
	target := doc.Paths.Value(path)
	if target == nil {
		target = &openapi3.PathItem{}
		doc.Paths.Set(path, target)
	}
	for _, param := range item.Parameters {
		if param.Value != nil && target.Parameters.GetByInAndName(param.Value.In, param.Value.Name) != nil {
			continue
		}
		target.Parameters = append(target.Parameters, param)
	}
}

// Check generates every registered document. It backs the readiness probe.
func (g *Generator) Check(ctx context.Context) error {
	groups := g.documents.Groups()
	if len(groups) == 0 {
		return errors.New("no documents registered")
	}
	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := g.Generate(ctx, group); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) addOperation(doc *openapi3.T, group string, ep endpoint.Endpoint) error {
	bound, err := binding.Describe(ep.Params)
	if err != nil {
		return err
	}

	op := openapi3.NewOperation()
	op.OperationID = ep.OperationID
	if op.OperationID == "" {
		op.OperationID = operationID(ep)
	}
	op.Summary = ep.Summary
	op.Description = ep.Description
	op.Tags = slices.Clone(ep.Tags)

	for _, b := range bound {
		param, err := generatedParameter(b)
		if err != nil {
			return fmt.Errorf("%s %s: %w", ep.Method, ep.Path, err)
		}
		op.AddParameter(param)
	}

	if op.Responses, err = g.responses(ep); err != nil {
		return fmt.Errorf("%s %s: %w", ep.Method, ep.Path, err)
	}

	opCtx := OperationContext{
		GroupName:    group,
		Method:       ep.Method,
		RelativePath: strings.TrimPrefix(ep.Path, "/"),
		Deprecated:   ep.Deprecated,
		Parameters:   bound,
	}
	for _, filter := range g.filters {
		filter.Apply(op, opCtx)
	}

	doc.AddOperation(ep.Path, ep.Method, op)
	return nil
}

// generatedParameter carries only what the generator itself can infer:
// name, location, and schema.
func generatedParameter(b binding.Parameter) (*openapi3.Parameter, error) {
	schema, err := schemaFor(reflect.Zero(b.Type).Interface())
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", b.Name, err)
	}
	if schema.Value != nil {
		schema.Value.Min = b.Minimum
		schema.Value.Max = b.Maximum
	}

	var param *openapi3.Parameter
	if b.In == binding.InPath {
		param = openapi3.NewPathParameter(b.Name)
	} else {
		param = openapi3.NewQueryParameter(b.Name)
	}
	return param.WithSchema(schema.Value), nil
}

func (g *Generator) responses(ep endpoint.Endpoint) (*openapi3.Responses, error) {
	described := ep.Responses
	if len(described) == 0 {
		described = map[int]string{http.StatusOK: http.StatusText(http.StatusOK)}
	}

	codes := make([]int, 0, len(described))
	for code := range described {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	opts := make([]openapi3.NewResponsesOption, 0, len(codes))
	for _, code := range codes {
		resp := openapi3.NewResponse().WithDescription(described[code])

		sample := ep.Response
		contentType := jsonContentType
		if code >= http.StatusBadRequest {
			sample, contentType = g.problem, problemContentType
		}
		if sample != nil {
			schema, err := schemaFor(sample)
			if err != nil {
				return nil, fmt.Errorf("response %d: %w", code, err)
			}
			resp.Content = openapi3.NewContentWithSchemaRef(schema, []string{contentType})
		}

		opts = append(opts, openapi3.WithStatus(code, &openapi3.ResponseRef{Value: resp}))
	}
	return openapi3.NewResponses(opts...), nil
}

func schemaFor(sample any) (*openapi3.SchemaRef, error) {
	return openapi3gen.NewSchemaRefForValue(sample, nil)
}

func operationID(ep endpoint.Endpoint) string {
	segments := strings.FieldsFunc(ep.Path, func(r rune) bool {
		return r == '/' || r == '{' || r == '}' || r == '.'
	})
	return strings.ToLower(ep.Method) + "_" + strings.Join(segments, "_")
}
