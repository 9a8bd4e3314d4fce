// Package genie defines the typed raw records of an Age of Empires II
// (The Conquerors) game database dump.
//
// The records mirror the flat tables produced by the upstream .dat decoder:
// units, techs, effect bundles, civilizations, terrains, and the four
// connection tables (age, building, unit, tech) that chain entities into
// upgrade lines. Every field any processing pass reads is a named, typed
// struct field; there are no generic attribute maps.
//
// # Conventions
//
// Integer ID fields use -1 for "none". A dump source must normalize absent
// values to -1 before handing records over, because the Go zero value 0 is
// a valid entity ID.
//
// # Dump
//
// The Dump container holds all tables. Call Reindex once after loading to
// build the ID lookup maps and sort every table ascending by ID; the
// processing passes rely on that order for deterministic output.
//
//	dump, err := source.Load(ctx)
//	if err != nil { ... }
//	unit, ok := dump.Unit(83)
package genie
