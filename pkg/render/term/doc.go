// Package term draws radial mind maps onto a character grid.
//
// A [Canvas] is a fixed-size rune grid. [Draw] projects links, endpoint
// dots and labels through a [view.State] exactly as the SVG sink does, then
// rasterizes them into cells: links with Bresenham lines, dots as glyphs,
// labels as horizontal text beside their anchor.
//
// Terminal cells are roughly twice as tall as they are wide, so the camera
// is given a pixel height of two per row; see [Viewport].
package term
