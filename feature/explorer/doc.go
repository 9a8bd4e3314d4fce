// Package explorer serves the built game-data graph over HTTP.
//
// The service holds the registry of the latest conversion run behind a
// read-write mutex. POST /convert reloads the dump from the configured
// source and runs the pipeline; concurrent rebuild requests are collapsed
// into a single run. Query endpoints keep serving the previous graph
// until the new one is swapped in, and answer 503 before the first
// successful run.
//
// # HTTP Endpoints
//
//   - POST /convert : Rebuilds the graph from the configured source.
//   - GET /graph : Run id, source and group counts of the served graph.
//   - GET /graph/check : Runs the registry checks, reports per-check results.
//   - GET /graph/snapshot : The full serialized graph, every section sorted.
//   - POST /graph/snapshot : Uploads the snapshot to the storage bucket.
//   - GET /graph/snapshots : Lists the snapshots stored in the bucket.
//   - GET /graph/lines : Unit line summaries (GET /graph/lines/:id for one).
//   - GET /graph/buildings : Building line summaries (:id for one).
//   - GET /graph/techs : Tech group summaries (:id for one).
//   - GET /graph/civs : Civ group summaries (:id for one).
//   - GET /graph/terrains : Terrain groups.
package explorer
