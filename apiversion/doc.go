// Package apiversion models published API versions, the descriptors consumed
// by documentation generators, and the middleware that reports supported and
// deprecated versions on every response.
package apiversion
