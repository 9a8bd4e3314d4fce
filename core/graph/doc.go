// Package graph defines the reconstructed game entity graph.
//
// The conversion pipeline turns flat genie records into groups: upgrade
// lines for units and buildings, the combined villager group, ambient and
// variant scenery groups, terrain groups, classified tech groups, and civ
// groups. All groups live in a Registry, which owns the id maps and the
// classification mirrors.
//
// # Lines
//
// A Line is an ordered chain of unit records, head first. Later members
// replace earlier ones through upgrades. The same Line type covers mobile
// unit lines, building lines, and the scenery groups; the Kind field tells
// them apart. Unit line ids and building ids share one integer space, so
// cross-group links are held as pointers, and serialized references always
// carry a domain tag next to the id.
//
// # Determinism
//
// Iteration over registry maps must go through the Sorted* helpers. Two
// conversions of the same dump produce byte-identical snapshots; anything
// ordered by map traversal would break that.
package graph
