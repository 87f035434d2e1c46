// Package motion provides the pure navigation functions of the editor
// engine. Every function maps (document, position) to a new position over
// authored logical lines, since soft wrapping is a presentation concern
// the renderer layers on top. Moves clamp at document edges, so no move
// can fail on an empty or single-character document.
package motion
