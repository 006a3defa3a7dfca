// Package graph turns hourly readings into compact block-glyph sparklines.
//
// A render resolves a glyph Palette from a Style and RowMode, quantizes the
// series into palette levels, then composes three characters per hourly point:
// a transition-in glyph, the point's own level glyph, and a transition-out glyph.
// Transitions spanning more than one level are softened by stepping two levels
// toward the neighbor instead of jumping straight to it.
//
// Double-row charts split the doubled palette at its midpoint, drawing points in
// the lower half on the bottom row and points in the upper half on the top row.
//
// All functions are pure and safe for concurrent use.
package graph
