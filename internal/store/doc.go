// Package store is the persistence collaborator for the timeline engine:
// a project file store, a debounced autosaver, and a file watcher for
// external-change detection.
//
// Projects are JSON files, written atomically (temp file + rename) and
// read tolerantly: unknown fields are ignored and missing optional
// fields default, so older files keep loading as the format grows.
//
// The Autosaver subscribes to engine change notifications and coalesces
// bursts of edits into one write per debounce window (100ms). Write
// failures are warnings, not errors: the in-memory document remains the
// source of truth and the write is retried on the next cycle.
package store
