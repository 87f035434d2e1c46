// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between renderer and backend.
package core

import "fmt"

// Attribute represents text attributes (bold, underline, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrItalic              // Italic text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Color represents a color value.
// Supports true color (RGB) and terminal palette colors.
type Color struct {
	R, G, B uint8
	// If Indexed is true, R contains the palette index (0-255).
	// G and B are ignored in indexed mode.
	Indexed bool
	// Default indicates this is the terminal's default color.
	Default bool
}

// ColorDefault represents the terminal's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a true color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates an indexed palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// IsDefault returns true if this is the default/transparent color.
func (c Color) IsDefault() bool {
	return c.Default
}

// String returns a string representation of the color.
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Style represents the visual style of text.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
	}
}

// WithAttr returns the style with an attribute added.
func (s Style) WithAttr(attr Attribute) Style {
	s.Attributes = s.Attributes.With(attr)
	return s
}

// Cell is one screen cell: a grapheme cluster plus its style. Wide
// clusters occupy Width columns; the cells they shadow are skipped
// when drawing.
type Cell struct {
	// Rune is the main rune of the cluster.
	Rune rune

	// Combining holds the remaining runes of the cluster.
	Combining []rune

	// Width is the cluster's display width in columns.
	Width int

	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewCell creates a cell from a grapheme cluster string.
func NewCell(cluster string, width int, style Style) Cell {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return Cell{Rune: ' ', Width: width, Style: style}
	}
	c := Cell{Rune: runes[0], Width: width, Style: style}
	if len(runes) > 1 {
		c.Combining = runes[1:]
	}
	return c
}

// String returns the cell's text content.
func (c Cell) String() string {
	return string(append([]rune{c.Rune}, c.Combining...))
}
