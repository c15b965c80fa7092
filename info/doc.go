// Package info exposes status, health, and version endpoints together with
// the generated OpenAPI documents of every API version and a UI to browse
// them.
//
// Two UIs are bundled:
//   - Swagger UI (default), with a selector listing every version
//   - Redoc, rendering one version at a time with links to the others
//
// Use WithUIType to select one and Mount to register the routes.
package info
