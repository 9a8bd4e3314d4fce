// Package convert turns a flat genie record dump into the semantic entity
// graph.
//
// The pipeline is a fixed ordered list of passes over one shared
// graph.Registry. Builders create the groups, the classifier buckets the
// techs, the link passes wire everything together. Later passes read what
// earlier passes wrote, so the order is part of the contract:
//
//	sanitize effect bundles
//	create unit lines
//	create extra unit lines
//	create building lines
//	create villager groups
//	create ambient groups
//	create variant groups
//	create terrain groups
//	create tech groups
//	create civ groups
//	link building upgrades
//	link creatables
//	link researchables
//	link civ uniques
//	link dropsites
//	link garrisons
//	link trade posts
//
// # Failure model
//
// A structural contradiction in the dump (a missing predecessor, an age
// tech without an age reference, a positive train location that resolves
// to nothing) aborts the run with an InconsistencyError. Sparse data the
// format legitimately leaves out is skipped silently. There is no partial
// success; the caller gets a complete graph or none.
package convert
