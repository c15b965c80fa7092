package swagger

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Title is the display name shared by every generated document.
const Title = "Swagger And Versioning"

// DeprecationNotice is the description given to deprecated versions.
const DeprecationNotice = "This API version has been deprecated."

var (
	// ErrDuplicateDocument is returned when a group is registered twice.
	ErrDuplicateDocument = errors.New("document already registered")
	// ErrInvalidGroup is returned for an empty group name.
	ErrInvalidGroup = errors.New("document group name is required")
	// ErrUnknownGroup is returned when generating an unregistered group.
	ErrUnknownGroup = errors.New("unknown document group")
)

// DocumentMetadata is the info block of one generated document. An empty
// Description means none.
type DocumentMetadata struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	// Deprecated is not rendered into the info block; the UI labels with it.
	Deprecated bool `json:"-"`
}

// DocumentRegistrar accepts one document per group.
type DocumentRegistrar interface {
	Register(group string, meta DocumentMetadata) error
}

// Documents is the in-memory DocumentRegistrar used by the Generator.
type Documents struct {
	mu     sync.RWMutex
	byName map[string]DocumentMetadata
	order  []string
}

// NewDocuments returns an empty store.
func NewDocuments() *Documents {
	return &Documents{byName: make(map[string]DocumentMetadata)}
}

// Register stores meta under group. Existing groups are never overwritten.
func (d *Documents) Register(group string, meta DocumentMetadata) error {
	if group == "" {
		return ErrInvalidGroup
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.byName[group]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateDocument, group)
	}
	d.byName[group] = meta
	d.order = append(d.order, group)
	return nil
}

// Lookup returns the metadata registered for group.
func (d *Documents) Lookup(group string) (DocumentMetadata, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	meta, ok := d.byName[group]
	return meta, ok
}

// Groups lists registered groups in registration order.
func (d *Documents) Groups() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.order)
}

// Reset drops every registration ahead of a new generation pass.
func (d *Documents) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byName = make(map[string]DocumentMetadata)
	d.order = nil
}
