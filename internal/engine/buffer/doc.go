// Package buffer provides the raw text store for the editor engine.
//
// The buffer owns the full document text as one mutable rune sequence and
// exposes range reads and range replacement by character offset. It holds
// no derived state: line segmentation, wrapping and position math live in
// the document and wrap packages and are recomputed from the buffer on
// demand.
//
// A revision counter advances on every mutation so that callers may cache
// derived views keyed by revision, but the engine itself never requires it.
// The buffer also tracks whether it has unsaved changes; Replace marks it
// dirty and MarkSaved clears the flag after a successful save.
package buffer
