// Package responder renders JSON payloads and RFC 9457 problem documents with
// ULID trace identifiers, logging each problem through slog.
package responder
