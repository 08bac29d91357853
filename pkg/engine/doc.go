// Package engine hosts a render tree: it runs layout and paint frames and
// routes pointer events from the host to the render objects under the
// pointer, keeping each pointer captured by its targets until it lifts.
package engine
