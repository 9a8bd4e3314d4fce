package convert

import (
	"testing"

	"genie-graph/core/genie"
	"genie-graph/core/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func techIDs(groups []*graph.TechGroup) []int {
	ids := make([]int, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.TechID)
	}
	return ids
}

func lineIDs(lines []*graph.Line) []int {
	ids := make([]int, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestLinkBuildingUpgrades(t *testing.T) {
	d := aocFixture()
	r := runPasses(t, d, "create civ groups")

	linked, err := linkBuildingUpgrades(d, r)
	require.NoError(t, err)
	assert.Equal(t, 1, linked)

	// The feudal age bundle upgrades the barracks into its feudal stage.
	barracks := r.BuildingLines[12]
	assert.Equal(t, []int{12, 20}, barracks.UnitIDs())
	assert.Same(t, barracks, r.UnitRefs[20])

	// The market unlock in the same bundle is not an upgrade effect.
	assert.Equal(t, []int{84}, r.BuildingLines[84].UnitIDs())

	linked, err = linkBuildingUpgrades(d, r)
	require.NoError(t, err)
	assert.Zero(t, linked, "second run relinks nothing")
}

func TestLinkBuildingUpgradesSkipsUnknownSourceLine(t *testing.T) {
	// Age bundles also upgrade entities that never became lines, such as
	// trimmed-out buildings. Those effects are ignored.
	tech := newTech(101, "Feudal Age")
	tech.EffectBundleID = 101
	d := &genie.Dump{
		Techs: []*genie.Tech{tech},
		EffectBundles: []*genie.EffectBundle{
			newBundle(101, genie.Effect{TypeID: genie.EffectTypeUpgrade, A: 500, B: 501, C: -1, D: -1}),
		},
	}
	d.Reindex()

	r := graph.NewRegistry()
	require.True(t, r.AddTechGroup(graph.NewAgeUpgrade(101, 1)))

	linked, err := linkBuildingUpgrades(d, r)
	require.NoError(t, err)
	assert.Zero(t, linked)
}

func TestLinkBuildingUpgradesMissingTargetFatal(t *testing.T) {
	barracks := newBuilding(12, "Barracks")
	tech := newTech(101, "Feudal Age")
	tech.EffectBundleID = 101
	d := &genie.Dump{
		Units: []*genie.Unit{barracks},
		Techs: []*genie.Tech{tech},
		EffectBundles: []*genie.EffectBundle{
			newBundle(101, genie.Effect{TypeID: genie.EffectTypeUpgrade, A: 12, B: 999, C: -1, D: -1}),
		},
	}
	d.Reindex()

	r := graph.NewRegistry()
	line := graph.NewBuildingLine(12)
	line.Append(barracks)
	r.AddBuildingLine(line)
	require.True(t, r.AddTechGroup(graph.NewAgeUpgrade(101, 1)))

	_, err := linkBuildingUpgrades(d, r)
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, "unit", inc.Entity)
	assert.Equal(t, 999, inc.ID)
}

func TestLinkCreatables(t *testing.T) {
	d := aocFixture()
	r := runPasses(t, d, "link building upgrades")

	linked, err := linkCreatables(d, r)
	require.NoError(t, err)
	assert.Equal(t, 18, linked, "7 unit lines and 11 building lines")

	barracks := r.BuildingLines[12]
	militia := r.UnitLines[74]
	assert.Equal(t, []int{74}, lineIDs(barracks.Creatables))
	assert.Same(t, barracks, militia.CreatedAt)

	castle := r.BuildingLines[82]
	assert.Equal(t, []int{41, 331}, lineIDs(castle.Creatables))

	// Every building is erected by the villager group, which in turn
	// trains at the town center.
	villagers := r.VillagerGroups[genie.VillagerGroupID]
	assert.Len(t, villagers.Creatables, 11)
	assert.Same(t, r.BuildingLines[109], villagers.CreatedAt)

	dock := r.BuildingLines[45]
	assert.Equal(t, []int{545}, lineIDs(dock.Creatables))

	// Wildlife has no train location.
	assert.Nil(t, r.UnitLines[48].CreatedAt)
}

func TestLinkCreatablesUnknownTrainLocationFatal(t *testing.T) {
	archer := newUnit(4, "Archer")
	archer.TrainLocationID = 999

	r := graph.NewRegistry()
	line := graph.NewUnitLine(4)
	line.InsertHead(archer)
	r.AddUnitLine(line)
	r.IndexUnitLineHeads()

	_, err := linkCreatables(nil, r)
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 4, inc.ID)
	assert.Contains(t, inc.Error(), "train location 999")
}

func TestLinkCreatablesUnknownBuilderFatal(t *testing.T) {
	house := newUnit(70, "House")
	house.Class = 3
	house.TrainLocationID = 999

	r := graph.NewRegistry()
	line := graph.NewBuildingLine(70)
	line.Append(house)
	r.AddBuildingLine(line)

	_, err := linkCreatables(nil, r)
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 70, inc.ID)
	assert.Contains(t, inc.Error(), "not a known group")
}

func TestLinkResearchables(t *testing.T) {
	d := aocFixture()
	r := runPasses(t, d, "link creatables")

	linked, err := linkResearchables(d, r)
	require.NoError(t, err)
	assert.Equal(t, 7, linked)

	university := r.BuildingLines[209]
	assert.Equal(t, []int{63, 64, 140}, techIDs(university.Researchables))

	townCenter := r.BuildingLines[109]
	assert.Equal(t, []int{22, 101}, techIDs(townCenter.Researchables))

	assert.Same(t, townCenter, r.TechGroups[22].ResearchedAt)

	// Passive bonuses and initiated techs have no research location.
	assert.Nil(t, r.TechGroups[403].ResearchedAt)
	assert.Nil(t, r.TechGroups[390].ResearchedAt)
}

func TestLinkResearchablesUnknownLocationFatal(t *testing.T) {
	tech := newTech(22, "Loom")
	tech.ResearchLocationID = 999
	d := &genie.Dump{Techs: []*genie.Tech{tech}}
	d.Reindex()

	r := graph.NewRegistry()
	require.True(t, r.AddTechGroup(graph.NewStatUpgrade(22)))

	_, err := linkResearchables(d, r)
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 22, inc.ID)
	assert.Contains(t, inc.Error(), "research location 999")
}

func TestLinkCivUniques(t *testing.T) {
	d := aocFixture()
	r := runPasses(t, d, "link researchables")

	linked, err := linkCivUniques(d, r)
	require.NoError(t, err)
	assert.Equal(t, 3, linked)

	goths := r.CivGroups[3]
	assert.Equal(t, []int{403}, techIDs(goths.BonusTechs))
	assert.Equal(t, []int{41}, lineIDs(goths.UniqueLines), "huskarl enabled by a Goth-bound tech")
	assert.Equal(t, []int{457}, techIDs(goths.UniqueTechs))

	britons := r.CivGroups[1]
	assert.Empty(t, britons.BonusTechs)
	assert.Empty(t, britons.UniqueLines)
	assert.Empty(t, britons.UniqueTechs)

	// The militia line's connection has no enabling tech, so no civ
	// claims it.
	for _, civ := range r.CivGroups {
		assert.NotContains(t, civ.UniqueLines, r.UnitLines[74])
	}
}

func TestLinkCivUniquesMissingCivGroupFatal(t *testing.T) {
	d := &genie.Dump{}
	d.Reindex()

	r := graph.NewRegistry()
	require.True(t, r.AddTechGroup(graph.NewCivBonus(403, 3)))

	_, err := linkCivUniques(d, r)
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, "civilization", inc.Entity)
	assert.Equal(t, 3, inc.ID)
}

func TestLinkDropsites(t *testing.T) {
	d := aocFixture()
	r := runPasses(t, d, "link civ uniques")

	linked, err := linkDropsites(d, r)
	require.NoError(t, err)
	assert.Equal(t, 2, linked)

	// Food from the gatherer and hunter, wood from the lumberjack whose
	// command has no carry resource and falls back to the harvested one.
	townCenter := r.BuildingLines[109]
	assert.Equal(t, []int{genie.ResourceFood, genie.ResourceWood}, townCenter.AcceptedResources)

	assert.Empty(t, r.BuildingLines[12].AcceptedResources)
}

func TestLinkDropsitesUnknownSiteFatal(t *testing.T) {
	villager := newUnit(83, "Villager (Male)")
	villager.TaskGroup = genie.TaskGroupMale
	villager.DropSite0 = 999
	villager.Commands = []genie.Command{
		{Type: genie.CommandTypeGather, UnitID: -1, ResourceIn: genie.ResourceFood, ResourceOut: genie.ResourceFood},
	}

	r := graph.NewRegistry()
	task := graph.NewTaskLine(genie.MaleVillagerLineID, genie.TaskGroupMale)
	task.Append(villager)
	r.AddTaskLine(task)
	r.AddVillagerGroup(graph.NewVillagerGroup(genie.VillagerGroupID, []*graph.Line{task}))

	_, err := linkDropsites(nil, r)
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 83, inc.ID)
	assert.Contains(t, inc.Error(), "dropsite 999")
}

func TestLinkTradePosts(t *testing.T) {
	d := aocFixture()
	r := runPasses(t, d, "link garrisons")

	linked, err := linkTradePosts(d, r)
	require.NoError(t, err)
	assert.Equal(t, 1, linked, "only the first trade command counts")

	cart := r.UnitLines[128]
	market := r.BuildingLines[84]
	assert.Equal(t, []int{84}, lineIDs(cart.TradePosts))
	assert.Equal(t, []int{128}, lineIDs(market.TradePartners))
}

func TestLinkTradePostsUnknownPostFatal(t *testing.T) {
	cart := newUnit(128, "Trade Cart")
	cart.Commands = []genie.Command{
		{Type: genie.CommandTypeTrade, UnitID: 999, ResourceIn: -1, ResourceOut: -1},
	}

	r := graph.NewRegistry()
	line := graph.NewUnitLine(128)
	line.InsertHead(cart)
	r.AddUnitLine(line)
	r.IndexUnitLineHeads()

	_, err := linkTradePosts(nil, r)
	var inc *InconsistencyError
	require.ErrorAs(t, err, &inc)
	assert.Equal(t, 128, inc.ID)
	assert.Contains(t, inc.Error(), "trade post 999")
}
