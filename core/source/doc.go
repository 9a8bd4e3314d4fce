// Package source loads genie record dumps from their backends.
//
// A DumpSource produces a reindexed genie.Dump ready for the convert
// pipeline. Three backends exist: a JSON file on disk, a JSON object in
// a storage bucket, and the genie_* tables of a relational snapshot.
// Config selects which one a command or service uses.
package source
