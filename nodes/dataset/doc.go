// Package dataset provides the string and list manipulation nodes: seeded
// line selection, concatenation, tag presets, template rendering and the
// round-robin batch cycler.
package dataset
