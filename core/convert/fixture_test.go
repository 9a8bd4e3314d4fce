package convert

import (
	"testing"

	"genie-graph/core/genie"
	"genie-graph/core/graph"

	"github.com/stretchr/testify/require"
)

// newUnit returns a unit record with every id field cleared, matching what
// the sources produce for absent values.
func newUnit(id int, name string) *genie.Unit {
	return &genie.Unit{
		ID:              id,
		Name:            name,
		TrainLocationID: -1,
		TransformUnitID: -1,
		StackUnitID:     -1,
		HeadUnitID:      -1,
		DropSite0:       -1,
		DropSite1:       -1,
		ResearchID:      -1,
	}
}

// newBuilding returns a building record erected by the villager group.
func newBuilding(id int, name string) *genie.Unit {
	u := newUnit(id, name)
	u.Class = 3
	u.TrainLocationID = genie.VillagerGroupID
	return u
}

func newTech(id int, name string) *genie.Tech {
	return &genie.Tech{ID: id, Name: name, EffectBundleID: -1}
}

func newBundle(id int, effects ...genie.Effect) *genie.EffectBundle {
	return &genie.EffectBundle{ID: id, Effects: effects}
}

// runPasses executes the pipeline in order up to and including the named
// pass and returns the registry.
func runPasses(t *testing.T, d *genie.Dump, last string) *graph.Registry {
	t.Helper()
	r := graph.NewRegistry()
	for _, p := range passes() {
		_, err := p.run(d, r)
		require.NoError(t, err, "pass %q", p.name)
		if p.name == last {
			break
		}
	}
	return r
}

// aocFixture builds a trimmed game database that exercises every pass: the
// militia line, a monk with relic swap, a packed trebuchet, the huskarl as
// Goth unique, villagers with dropsites, a transport ship and dock, the
// tower upgrade chain, a gate with its overlay and a town center annex.
func aocFixture() *genie.Dump {
	militia := newUnit(74, "Militia")
	militia.Class = 6
	militia.TrainLocationID = 12
	militia.CreatableType = genie.CreatableTypeInfantry

	manAtArms := newUnit(75, "Man-at-Arms")
	manAtArms.Class = 6
	manAtArms.TrainLocationID = 12
	manAtArms.CreatableType = genie.CreatableTypeInfantry

	huskarl := newUnit(41, "Huskarl")
	huskarl.Class = 6
	huskarl.TrainLocationID = 82
	huskarl.CreatableType = genie.CreatableTypeInfantry

	monk := newUnit(125, "Monk")
	monk.Class = 18
	monk.TrainLocationID = 104
	monk.CreatableType = genie.CreatableTypeMonk
	monk.GarrisonCapacity = 1

	monkWithRelic := newUnit(286, "Monk With Relic")
	monkWithRelic.Class = 43

	trebuchetPacked := newUnit(331, "Trebuchet (Packed)")
	trebuchetPacked.Class = 51
	trebuchetPacked.TrainLocationID = 82
	trebuchetPacked.CreatableType = genie.CreatableTypeInfantry
	trebuchetPacked.TransformUnitID = 332

	trebuchetUnpacked := newUnit(332, "Trebuchet (Unpacked)")
	trebuchetUnpacked.Class = 51

	tradeCart := newUnit(128, "Trade Cart")
	tradeCart.Class = 2
	tradeCart.TrainLocationID = 84
	tradeCart.CreatableType = genie.CreatableTypeVillager
	tradeCart.Commands = []genie.Command{
		{Type: genie.CommandTypeTrade, UnitID: 84, ResourceIn: -1, ResourceOut: -1},
		// Points at the dummied-out trade workshop; no line exists for it.
		{Type: genie.CommandTypeTrade, UnitID: 637, ResourceIn: -1, ResourceOut: -1},
	}

	transport := newUnit(545, "Transport Ship")
	transport.Class = 20
	transport.TrainLocationID = 45
	transport.Trait = genie.TraitShip
	transport.GarrisonCapacity = 5

	maleVillager := newUnit(83, "Villager (Male)")
	maleVillager.Class = 4
	maleVillager.TaskGroup = genie.TaskGroupMale
	maleVillager.TrainLocationID = 109
	maleVillager.CreatableType = genie.CreatableTypeVillager
	maleVillager.DropSite0 = 109
	maleVillager.Commands = []genie.Command{
		{Type: genie.CommandTypeGather, UnitID: -1, ResourceIn: genie.ResourceFood, ResourceOut: genie.ResourceFood},
	}

	maleLumberjack := newUnit(123, "Lumberjack (Male)")
	maleLumberjack.Class = 4
	maleLumberjack.TaskGroup = genie.TaskGroupMale
	maleLumberjack.TrainLocationID = 109
	maleLumberjack.CreatableType = genie.CreatableTypeVillager
	maleLumberjack.DropSite0 = 109
	maleLumberjack.Commands = []genie.Command{
		// No carry resource set, the gathered resource is the fallback.
		{Type: genie.CommandTypeGather, UnitID: -1, ResourceIn: genie.ResourceWood, ResourceOut: -1},
	}

	femaleVillager := newUnit(293, "Villager (Female)")
	femaleVillager.Class = 4
	femaleVillager.TaskGroup = genie.TaskGroupFemale
	femaleVillager.TrainLocationID = 109
	femaleVillager.CreatableType = genie.CreatableTypeVillager
	femaleVillager.DropSite0 = 109
	femaleVillager.Commands = []genie.Command{
		{Type: genie.CommandTypeHunt, UnitID: -1, ResourceIn: -1, ResourceOut: genie.ResourceFood},
	}

	boar := newUnit(48, "Wild Boar")
	boar.Class = 9
	deer := newUnit(65, "Deer")
	deer.Class = 9

	forageBush := newUnit(59, "Forage Bush")
	goldMine := newUnit(66, "Gold Mine")
	stoneMine := newUnit(102, "Stone Mine")
	relic := newUnit(285, "Relic")
	relic.CreatableType = genie.CreatableTypeRelic

	cliff1 := newUnit(264, "Cliff 1")
	cliff2 := newUnit(265, "Cliff 2")
	mountain1 := newUnit(310, "Mountain 1")
	mountain2 := newUnit(311, "Mountain 2")

	barracks := newBuilding(12, "Barracks")
	barracks.GarrisonCapacity = 10

	barracksFeudal := newUnit(20, "Barracks (Feudal)")
	barracksFeudal.Class = 3

	dock := newBuilding(45, "Dock")
	dock.GarrisonCapacity = 10

	watchTower := newBuilding(79, "Watch Tower")
	watchTower.GarrisonType = genie.GarrisonVillagers
	watchTower.GarrisonCapacity = 5

	castle := newBuilding(82, "Castle")
	castle.GarrisonType = genie.GarrisonVillagers | genie.GarrisonInfantry | genie.GarrisonCavalry | genie.GarrisonMonks
	castle.GarrisonCapacity = 20
	castle.ResearchID = 390

	market := newBuilding(84, "Market")

	monastery := newBuilding(104, "Monastery")
	monastery.GarrisonType = genie.GarrisonMonks
	monastery.GarrisonCapacity = 10

	townCenter := newBuilding(109, "Town Center")
	townCenter.GarrisonType = genie.GarrisonVillagers | genie.GarrisonInfantry
	townCenter.GarrisonCapacity = 15

	university := newBuilding(209, "University")

	guardTower := newBuilding(234, "Guard Tower")
	guardTower.GarrisonType = genie.GarrisonVillagers
	guardTower.GarrisonCapacity = 5

	keep := newBuilding(235, "Keep")
	keep.GarrisonType = genie.GarrisonVillagers
	keep.GarrisonCapacity = 5

	bombardTower := newBuilding(236, "Bombard Tower")
	bombardTower.GarrisonType = genie.GarrisonVillagers
	bombardTower.GarrisonCapacity = 5

	gate := newBuilding(487, "Gate")
	gate.StackUnitID = 488

	gateOverlay := newUnit(488, "Gate (Horizontal)")
	gateOverlay.Class = 3

	annex := newUnit(619, "Town Center Annex")
	annex.Class = 3
	annex.HeadUnitID = 109

	huskarlEnable := newTech(16, "Huskarl (Enable)")
	huskarlEnable.EffectBundleID = 16
	huskarlEnable.CivilizationID = 3

	loom := newTech(22, "Loom")
	loom.EffectBundleID = 22
	loom.ResearchLocationID = 109

	keepTech := newTech(63, "Keep")
	keepTech.EffectBundleID = 63
	keepTech.ResearchLocationID = 209

	bombardTowerTech := newTech(64, "Bombard Tower")
	bombardTowerTech.EffectBundleID = 64
	bombardTowerTech.ResearchLocationID = 209

	manAtArmsTech := newTech(100, "Man-at-Arms")
	manAtArmsTech.EffectBundleID = 100
	manAtArmsTech.ResearchLocationID = 12

	feudalAge := newTech(101, "Feudal Age")
	feudalAge.EffectBundleID = 101
	feudalAge.ResearchLocationID = 109
	feudalAge.TechType = genie.TechTypeAge

	guardTowerTech := newTech(140, "Guard Tower")
	guardTowerTech.EffectBundleID = 140
	guardTowerTech.ResearchLocationID = 209

	signalFires := newTech(390, "Signal Fires")

	cheapInfantry := newTech(403, "Cheap Infantry (Goths)")
	cheapInfantry.CivilizationID = 3

	perfusion := newTech(457, "Perfusion")
	perfusion.EffectBundleID = 457
	perfusion.ResearchLocationID = 82
	perfusion.CivilizationID = 3

	d := &genie.Dump{
		Units: []*genie.Unit{
			militia, manAtArms, huskarl, monk, monkWithRelic,
			trebuchetPacked, trebuchetUnpacked, tradeCart, transport,
			maleVillager, maleLumberjack, femaleVillager,
			boar, deer, forageBush, goldMine, stoneMine, relic,
			cliff1, cliff2, mountain1, mountain2,
			barracks, barracksFeudal, dock, watchTower, castle, market,
			monastery, townCenter, university, guardTower, keep,
			bombardTower, gate, gateOverlay, annex,
		},
		Techs: []*genie.Tech{
			huskarlEnable, loom, keepTech, bombardTowerTech, manAtArmsTech,
			feudalAge, guardTowerTech, signalFires, cheapInfantry, perfusion,
		},
		EffectBundles: []*genie.EffectBundle{
			newBundle(16, genie.Effect{TypeID: genie.EffectTypeUnlock, A: 41, B: -1, C: -1, D: -1}),
			newBundle(22, genie.Effect{TypeID: 0, A: 83, B: -1, C: -1, D: 1}),
			newBundle(63, genie.Effect{TypeID: genie.EffectTypeUpgrade, A: 234, B: 235, C: -1, D: -1}),
			newBundle(64, genie.Effect{TypeID: genie.EffectTypeUnlock, A: 236, B: -1, C: -1, D: -1}),
			newBundle(100, genie.Effect{TypeID: genie.EffectTypeUpgrade, A: 74, B: 75, C: -1, D: -1}),
			newBundle(101,
				genie.Effect{TypeID: genie.EffectTypeUpgrade, A: 12, B: 20, C: -1, D: -1},
				genie.Effect{TypeID: genie.EffectTypeUnlock, A: 84, B: -1, C: -1, D: -1},
			),
			newBundle(140, genie.Effect{TypeID: genie.EffectTypeUpgrade, A: 79, B: 234, C: -1, D: -1}),
			newBundle(457, genie.Effect{TypeID: 0, A: 41, B: -1, C: -1, D: 1}),
			// Garbage entries the sanitizer has to prune.
			newBundle(999,
				genie.Effect{TypeID: -1, A: -1, B: -1, C: -1, D: -1},
				genie.Effect{TypeID: genie.EffectTypeDisableTech, A: -1, B: -1, C: -1, D: -1},
				genie.Effect{TypeID: genie.EffectTypeDisableTech, A: -1, B: -1, C: -1, D: 457},
			),
		},
		Civilizations: []*genie.Civilization{
			{ID: 0, Name: "Gaia", TechTreeID: -1, TeamBonusID: -1},
			{ID: 1, Name: "Britons", TechTreeID: 254, TeamBonusID: 399},
			{ID: 2, Name: "Franks", TechTreeID: 255, TeamBonusID: 400},
			{ID: 3, Name: "Goths", TechTreeID: 256, TeamBonusID: 404},
		},
		Terrains: []*genie.Terrain{
			{ID: 0, Name: "Grass", Enabled: true},
			{ID: 1, Name: "Water", Enabled: true},
			{ID: 2, Name: "Unused", Enabled: false},
		},
		AgeConnections: []*genie.AgeConnection{
			{ID: 0},
			{ID: 1},
		},
		BuildingConnections: []*genie.BuildingConnection{
			{ID: 12, EnablingResearchID: -1},
			{ID: 45, EnablingResearchID: -1},
			{ID: 79, EnablingResearchID: -1},
			{ID: 82, EnablingResearchID: -1},
			{ID: 84, EnablingResearchID: -1},
			{ID: 104, EnablingResearchID: -1},
			{ID: 109, EnablingResearchID: -1},
			{ID: 209, EnablingResearchID: -1},
			{ID: 234, EnablingResearchID: -1, Refs: []genie.Ref{
				{Kind: genie.RefBuilding, ID: 79},
				{Kind: genie.RefTech, ID: 140},
			}},
			{ID: 235, EnablingResearchID: -1, Refs: []genie.Ref{
				{Kind: genie.RefBuilding, ID: 234},
				{Kind: genie.RefTech, ID: 63},
			}},
			{ID: 236, EnablingResearchID: -1},
			{ID: 487, EnablingResearchID: -1},
			{ID: 619, EnablingResearchID: -1},
		},
		UnitConnections: []*genie.UnitConnection{
			{ID: 41, VerticalLineID: 41, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: 16},
			{ID: 74, VerticalLineID: 74, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
			{ID: 75, VerticalLineID: 74, LineMode: genie.LineModeMember, RequiredResearchID: 100, EnablingResearchID: -1, Refs: []genie.Ref{
				{Kind: genie.RefUnit, ID: 74},
			}},
			{ID: 83, VerticalLineID: 83, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
			{ID: 125, VerticalLineID: 65, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
			{ID: 128, VerticalLineID: 128, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
			{ID: 331, VerticalLineID: 331, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
			{ID: 545, VerticalLineID: 545, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
		},
		TechConnections: []*genie.TechConnection{
			{ID: 22, LineMode: genie.LineModeMember, BuildingIDs: []int{109}},
			{ID: 64, LineMode: genie.LineModeMember, BuildingIDs: []int{209}},
			{ID: 101, LineMode: genie.LineModeAge, BuildingIDs: []int{109}, Refs: []genie.Ref{
				{Kind: genie.RefAge, ID: 1},
			}},
			{ID: 140, LineMode: genie.LineModeMember, BuildingIDs: []int{209}},
			{ID: 457, LineMode: genie.LineModeMember, BuildingIDs: []int{82}},
		},
	}
	d.Reindex()
	return d
}
