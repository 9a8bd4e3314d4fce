package convert

import (
	"testing"

	"genie-graph/core/genie"
	"genie-graph/core/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVillagerGroups(t *testing.T) {
	d := aocFixture()
	r := graph.NewRegistry()

	created, err := createVillagerGroups(d, r)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	group, ok := r.VillagerGroups[genie.VillagerGroupID]
	require.True(t, ok)
	assert.Equal(t, graph.LineVillager, group.Kind)
	require.Len(t, group.TaskLines, 2)

	male := group.TaskLines[0]
	assert.Equal(t, genie.MaleVillagerLineID, male.ID)
	assert.Equal(t, genie.TaskGroupMale, male.TaskGroupID)
	assert.Equal(t, []int{83, 123}, male.UnitIDs())

	female := group.TaskLines[1]
	assert.Equal(t, genie.FemaleVillagerLineID, female.ID)
	assert.Equal(t, []int{293}, female.UnitIDs())

	// The group is resolvable as a unit line and flattens its members.
	assert.Same(t, group, r.UnitLines[genie.VillagerGroupID])
	assert.Equal(t, []int{83, 123, 293}, group.UnitIDs())
	assert.Equal(t, 83, group.HeadUnitID())
	for _, id := range []int{83, 123, 293} {
		assert.Same(t, group, r.UnitRefs[id])
	}
}

func TestCreateVillagerGroupsWithoutVillagers(t *testing.T) {
	d := &genie.Dump{
		Units: []*genie.Unit{newUnit(74, "Militia")},
	}
	d.Reindex()

	r := graph.NewRegistry()
	created, err := createVillagerGroups(d, r)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, r.VillagerGroups)
	assert.Empty(t, r.UnitLines)
}

func TestCreateAmbientGroups(t *testing.T) {
	d := aocFixture()
	r := graph.NewRegistry()

	created, err := createAmbientGroups(d, r)
	require.NoError(t, err)

	// 349 and 399 are missing from the fixture and skipped.
	assert.Equal(t, 4, created)
	for _, id := range []int{59, 66, 102, 285} {
		group, ok := r.AmbientGroups[id]
		require.True(t, ok, "ambient %d", id)
		assert.Equal(t, graph.LineAmbient, group.Kind)
		assert.Equal(t, []int{id}, group.UnitIDs())
		assert.Same(t, group, r.UnitRefs[id])
	}
}

func TestCreateVariantGroups(t *testing.T) {
	d := aocFixture()
	r := graph.NewRegistry()

	created, err := createVariantGroups(d, r)
	require.NoError(t, err)

	// The flower set is absent, cliffs and mountains are partial.
	assert.Equal(t, 2, created)

	cliffs, ok := r.VariantGroups[264]
	require.True(t, ok)
	assert.Equal(t, graph.LineVariant, cliffs.Kind)
	assert.Equal(t, []int{264, 265}, cliffs.UnitIDs())

	mountains, ok := r.VariantGroups[310]
	require.True(t, ok)
	assert.Equal(t, []int{310, 311}, mountains.UnitIDs())

	_, ok = r.VariantGroups[334]
	assert.False(t, ok)
}

func TestCreateTerrainGroups(t *testing.T) {
	d := aocFixture()
	r := graph.NewRegistry()

	created, err := createTerrainGroups(d, r)
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	grass, ok := r.TerrainGroups[0]
	require.True(t, ok)
	assert.Equal(t, "Grass", grass.Terrain.Name)

	_, ok = r.TerrainGroups[2]
	assert.False(t, ok, "disabled terrains get no group")
}

func TestCreateCivGroups(t *testing.T) {
	d := aocFixture()
	r := graph.NewRegistry()

	created, err := createCivGroups(d, r)
	require.NoError(t, err)
	assert.Equal(t, 4, created)

	goths, ok := r.CivGroups[3]
	require.True(t, ok)
	assert.Equal(t, 256, goths.TechTreeID)
	assert.Equal(t, 404, goths.TeamBonusID)
	assert.Empty(t, goths.BonusTechs)
}
