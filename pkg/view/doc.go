// Package view holds the camera and display toggles used to present a
// laid-out mind map, and the rules for placing node labels.
//
// A [State] is an explicit value owned by whichever front end draws the map
// (the terminal viewer, the SVG sink, the HTTP renderer). Nothing here feeds
// back into the layout: the layout is computed once per document and only the
// camera changes between frames.
//
// # Coordinates
//
// World coordinates are those produced by the layout package: y up, angles
// counter-clockwise from the positive x-axis. The camera first rotates the
// world by RotationDeg about the origin, then pans by (PanX, PanY), then maps
// an orthographic window of half-height BaseHalfHeight/Zoom onto the viewport.
// Screen coordinates are pixels with the origin at the top-left corner.
//
// # Labels
//
// [PlaceLabel] anchors a label a small pad past its node along the radial
// direction and rotates it parallel to that radial. Labels that would read
// upside down on screen are flipped by 180° and end-aligned so they still
// touch their node. The root label stays horizontal on screen.
package view
