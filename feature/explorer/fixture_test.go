package explorer

import (
	"context"

	"genie-graph/core/genie"
)

// fakeSource serves a fixed dump, standing in for the file, storage and
// database sources.
type fakeSource struct {
	dump *genie.Dump
	err  error
}

func (s *fakeSource) Name() string { return "test:dump" }

func (s *fakeSource) Load(context.Context) (*genie.Dump, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.dump, nil
}

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

// fixtureDump builds a small game database that survives every pipeline
// pass: the militia line with its man-at-arms upgrade, the villager pair
// dropping food at the town center, and the barracks with a feudal stage.
func fixtureDump() *genie.Dump {
	militia := newUnit(74, "Militia")
	militia.Class = 6
	militia.TrainLocationID = 12
	militia.CreatableType = genie.CreatableTypeInfantry

	manAtArms := newUnit(75, "Man-at-Arms")
	manAtArms.Class = 6
	manAtArms.TrainLocationID = 12
	manAtArms.CreatableType = genie.CreatableTypeInfantry

	maleVillager := newUnit(83, "Villager (Male)")
	maleVillager.Class = 4
	maleVillager.TaskGroup = genie.TaskGroupMale
	maleVillager.TrainLocationID = 109
	maleVillager.CreatableType = genie.CreatableTypeVillager
	maleVillager.DropSite0 = 109
	maleVillager.Commands = []genie.Command{
		{Type: genie.CommandTypeGather, UnitID: -1, ResourceIn: genie.ResourceFood, ResourceOut: genie.ResourceFood},
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

	barracks := newUnit(12, "Barracks")
	barracks.Class = 3
	barracks.TrainLocationID = genie.VillagerGroupID
	barracks.GarrisonType = genie.GarrisonInfantry
	barracks.GarrisonCapacity = 10

	barracksFeudal := newUnit(20, "Barracks (Feudal)")
	barracksFeudal.Class = 3

	townCenter := newUnit(109, "Town Center")
	townCenter.Class = 3
	townCenter.TrainLocationID = genie.VillagerGroupID
	townCenter.GarrisonType = genie.GarrisonVillagers | genie.GarrisonInfantry
	townCenter.GarrisonCapacity = 15

	manAtArmsTech := &genie.Tech{ID: 100, Name: "Man-at-Arms", EffectBundleID: 100, ResearchLocationID: 12}
	feudalAge := &genie.Tech{ID: 101, Name: "Feudal Age", EffectBundleID: 101, ResearchLocationID: 109, TechType: genie.TechTypeAge}

	d := &genie.Dump{
		Units: []*genie.Unit{
			militia, manAtArms, maleVillager, femaleVillager,
			barracks, barracksFeudal, townCenter,
		},
		Techs: []*genie.Tech{manAtArmsTech, feudalAge},
		EffectBundles: []*genie.EffectBundle{
			{ID: 100, Effects: []genie.Effect{
				{TypeID: genie.EffectTypeUpgrade, A: 74, B: 75, C: -1, D: -1},
			}},
			{ID: 101, Effects: []genie.Effect{
				{TypeID: genie.EffectTypeUpgrade, A: 12, B: 20, C: -1, D: -1},
			}},
		},
		Civilizations: []*genie.Civilization{
			{ID: 0, Name: "Gaia", TechTreeID: -1, TeamBonusID: -1},
			{ID: 1, Name: "Britons", TechTreeID: 254, TeamBonusID: 399},
		},
		Terrains: []*genie.Terrain{
			{ID: 0, Name: "Grass", Enabled: true},
			{ID: 1, Name: "Unused", Enabled: false},
		},
		AgeConnections: []*genie.AgeConnection{
			{ID: 0},
			{ID: 1},
		},
		BuildingConnections: []*genie.BuildingConnection{
			{ID: 12, EnablingResearchID: -1},
			{ID: 109, EnablingResearchID: -1},
		},
		UnitConnections: []*genie.UnitConnection{
			{ID: 74, VerticalLineID: 74, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
			{ID: 75, VerticalLineID: 74, LineMode: genie.LineModeMember, RequiredResearchID: 100, EnablingResearchID: -1, Refs: []genie.Ref{
				{Kind: genie.RefUnit, ID: 74},
			}},
			{ID: 83, VerticalLineID: 83, LineMode: genie.LineModeFirst, RequiredResearchID: -1, EnablingResearchID: -1},
		},
		TechConnections: []*genie.TechConnection{
			{ID: 101, LineMode: genie.LineModeAge, BuildingIDs: []int{109}, Refs: []genie.Ref{
				{Kind: genie.RefAge, ID: 1},
			}},
		},
	}
	d.Reindex()
	return d
}
