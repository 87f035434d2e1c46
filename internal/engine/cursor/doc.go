// Package cursor provides the position value types for the editor engine:
// two-dimensional editor positions, cursors with a sticky column, and
// anchored selections. All types are immutable values; navigation and
// edit commands build new values rather than mutating in place.
package cursor
