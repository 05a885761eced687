// Package cutlist defines the canonical data model for furniture panel
// cut lists: parts, dimensions, and the structured operation set
// (edging, grooves, holes, CNC routing) attached to each part.
//
// All reconciliation packages (corrections, duplicates, projects,
// suggest) operate on these types without mutating them; derived
// results are plain values recomputed from the current part snapshot.
package cutlist
