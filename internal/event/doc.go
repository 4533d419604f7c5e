// Package event carries committed-change notifications from the edit
// engine to its collaborators (rendering, persistence).
//
// The document is owned by the engine; nothing outside it reads shared
// mutable state. Instead, consumers subscribe to the Notifier and receive
// one Change per committed operation, carrying a document snapshot plus
// the added/removed/updated element IDs for incremental redraw. Delivery
// is synchronous and ordered; there is exactly one event stream, so no
// topic routing is needed.
package event
