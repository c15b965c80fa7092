package swagger

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/drblury/swaggerversioning/binding"
)

// OperationContext carries what the generator knows about the route behind
// an operation.
type OperationContext struct {
	GroupName    string
	Method       string
	RelativePath string
	Deprecated   bool
	Parameters   []binding.Parameter
}

// OperationFilter post-processes a generated operation.
type OperationFilter interface {
	Apply(op *openapi3.Operation, ctx OperationContext)
}

// OperationFilterFunc adapts a function to OperationFilter.
type OperationFilterFunc func(op *openapi3.Operation, ctx OperationContext)

// Apply calls f.
func (f OperationFilterFunc) Apply(op *openapi3.Operation, ctx OperationContext) {
	f(op, ctx)
}

// ParameterMetadataEnricher fills in parameter metadata the generator cannot
// know about from the bound parameters of the route, and flags operations of
// deprecated versions.
type ParameterMetadataEnricher struct{}

// Apply enriches op. Operations without a complete route context are skipped.
func (ParameterMetadataEnricher) Apply(op *openapi3.Operation, ctx OperationContext) {
	if op == nil || ctx.GroupName == "" || ctx.Method == "" || ctx.RelativePath == "" {
		return
	}

	op.Deprecated = op.Deprecated || ctx.Deprecated
	Enrich(op.Parameters, ctx.Parameters)
}

// Enrich matches params to bound by exact name. A matched parameter gets the
// bound description when its own is empty, the bound default when its schema
// has none, and always the bound required flag. Unmatched parameters are left
// alone. Calling Enrich again changes nothing.
func Enrich(params openapi3.Parameters, bound []binding.Parameter) {
	if len(params) == 0 || len(bound) == 0 {
		return
	}

	byName := make(map[string]binding.Parameter, len(bound))
	for _, b := range bound {
		if _, dup := byName[b.Name]; !dup {
			byName[b.Name] = b
		}
	}

	for _, ref := range params {
		if ref == nil || ref.Value == nil {
			continue
		}
		param := ref.Value

		b, ok := byName[param.Name]
		if !ok {
			continue
		}

		if param.Description == "" && b.Description != "" {
			param.Description = b.Description
		}
		if b.Default != nil && param.Schema != nil && param.Schema.Value != nil && param.Schema.Value.Default == nil {
			param.Schema.Value.Default = b.Default
		}
		param.Required = b.Required
	}
}
