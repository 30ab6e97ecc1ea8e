// Package layout computes radial tree layouts for mind maps.
//
// # Overview
//
// The root sits at the origin. Every other node is placed on a circle whose
// radius grows by a fixed radial step per level of depth, and every subtree
// owns an angular sector proportional to the number of leaves it contains.
// Leaves are therefore spread evenly around the circle and no two sibling
// subtrees share angular space.
//
// # Passes
//
// The layout runs as three passes over a [mindmap.Tree]. Each writes a
// disjoint set of node fields:
//
//  1. [CountLeaves] sets Depth and LeafCount (post-order).
//  2. [AssignAngles] sets SectorStart, SectorEnd and Angle (pre-order).
//  3. [AssignPositions] sets Radius, X and Y (any order).
//
// [Compute] validates a [Config] and runs all three from the root over the
// full circle [0, 2π). Running it again is a full recomputation and produces
// identical results.
//
// All passes are iterative with explicit stacks and run in time linear in the
// number of nodes.
//
// # Angles
//
// Angles are radians measured from the positive x-axis and increase
// counter-clockwise, so a node at angle π/2 has positive Y. Renderers with a
// downward y-axis must flip Y to preserve orientation.
package layout
