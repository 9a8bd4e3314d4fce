package graph

import "genie-graph/core/genie"

// TerrainGroup wraps one usable terrain of the map generator.
type TerrainGroup struct {
	// ID is the terrain table index.
	ID int
	// Terrain is the raw record behind the group.
	Terrain *genie.Terrain
}

// NewTerrainGroup creates a terrain group over its record.
func NewTerrainGroup(t *genie.Terrain) *TerrainGroup {
	return &TerrainGroup{ID: t.ID, Terrain: t}
}
