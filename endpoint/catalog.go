// Package endpoint records the versioned HTTP operations of the service so
// that the same declarations drive routing and documentation.
package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/drblury/swaggerversioning/apiversion"
)

// ErrInvalidEndpoint is returned by Catalog.Add for incomplete declarations.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// ErrDuplicateEndpoint is returned by Catalog.Add when method and path are
// already declared.
var ErrDuplicateEndpoint = errors.New("duplicate endpoint")

// Endpoint declares one documented HTTP operation of an API version.
type Endpoint struct {
	Version     apiversion.Version
	Deprecated  bool
	Method      string
	Path        string
	OperationID string
	Summary     string
	Description string
	Tags        []string
	// Params is a tagged struct value describing bound parameters; see
	// package binding. Nil means no parameters.
	Params any
	// Response is a sample of the success payload used for the schema.
	Response any
	// Responses maps status codes to their descriptions.
	Responses map[int]string
	Handler   http.Handler
}

// GroupName is the documentation group the endpoint belongs to.
func (e Endpoint) GroupName() string {
	return e.Version.GroupName()
}

func (e Endpoint) key() string {
	return e.Method + " " + e.Path
}

// Catalog holds declared endpoints in registration order.
type Catalog struct {
	mu        sync.RWMutex
	endpoints []Endpoint
	keys      map[string]struct{}
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{keys: make(map[string]struct{})}
}

// Add declares ep.
func (c *Catalog) Add(ep Endpoint) error {
	ep.Method = strings.ToUpper(strings.TrimSpace(ep.Method))
	ep.Path = strings.TrimSpace(ep.Path)

	switch {
	case ep.Method == "":
		return fmt.Errorf("%w: method is required", ErrInvalidEndpoint)
	case !strings.HasPrefix(ep.Path, "/"):
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidEndpoint, ep.Path)
	case ep.Handler == nil:
		return fmt.Errorf("%w: %s has no handler", ErrInvalidEndpoint, ep.key())
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.keys[ep.key()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateEndpoint, ep.key())
	}
	c.keys[ep.key()] = struct{}{}
	c.endpoints = append(c.endpoints, ep)
	return nil
}

// Endpoints returns the declared endpoints in registration order.
func (c *Catalog) Endpoints() []Endpoint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.endpoints)
}

// Group returns the endpoints documented under group.
func (c *Catalog) Group(group string) []Endpoint {
	var out []Endpoint
	for _, ep := range c.Endpoints() {
		if ep.GroupName() == group {
			out = append(out, ep)
		}
	}
	return out
}

// Descriptions implements apiversion.Provider. A version counts as deprecated
// only when every endpoint declaring it is deprecated.
func (c *Catalog) Descriptions() []apiversion.Descriptor {
	deprecated := make(map[apiversion.Version]bool)
	for _, ep := range c.Endpoints() {
		prev, seen := deprecated[ep.Version]
		deprecated[ep.Version] = ep.Deprecated && (!seen || prev)
	}

	out := make([]apiversion.Descriptor, 0, len(deprecated))
	for v, dep := range deprecated {
		out = append(out, apiversion.NewDescriptor(v, dep))
	}
	slices.SortFunc(out, func(a, b apiversion.Descriptor) int {
		return a.Version.Compare(b.Version)
	})
	return out
}

// Mount registers every endpoint on mux behind apiversion.Report.
func (c *Catalog) Mount(mux *http.ServeMux) {
	for _, ep := range c.Endpoints() {
		served := apiversion.Descriptor{Version: ep.Version, GroupName: ep.GroupName(), Deprecated: ep.Deprecated}
		mux.Handle(ep.key(), apiversion.Report(served, c)(ep.Handler))
	}
}
