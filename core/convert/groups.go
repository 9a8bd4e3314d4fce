package convert

import (
	"sort"

	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// ambientUnitIDs are the map objects players interact with but never
// produce: mines, trees, relics, fish and the like.
var ambientUnitIDs = []int{59, 66, 102, 285, 349, 399}

// variantGroups maps a group id to the unit ids that are cosmetic variants
// of the same map object.
var variantGroups = map[int][]int{
	264: {264, 265, 266, 267, 268, 269, 270, 271, 272}, // cliffs
	310: {310, 311},                                    // mountains
	334: {334, 335, 336, 337},                          // flowers
}

// createVillagerGroups collects every unit carrying a task group into
// per-task lines and wraps them in a single villager group. AoC keeps one
// male and one female unit per task, so the group ends up with two task
// lines mirroring each other. Returns 1 when a group was created, 0 when
// the dump has no villagers.
func createVillagerGroups(d *genie.Dump, r *graph.Registry) (int, error) {
	var memberIDs []int
	for _, unit := range d.Units {
		if unit.TaskGroup <= 0 {
			continue
		}
		var lineID int
		switch unit.TaskGroup {
		case genie.TaskGroupMale:
			lineID = genie.MaleVillagerLineID
		case genie.TaskGroupFemale:
			lineID = genie.FemaleVillagerLineID
		default:
			continue
		}
		task, ok := r.TaskLines[unit.TaskGroup]
		if !ok {
			task = graph.NewTaskLine(lineID, unit.TaskGroup)
			r.AddTaskLine(task)
		}
		task.Append(unit)
		memberIDs = append(memberIDs, unit.ID)
	}
	if len(r.TaskLines) == 0 {
		return 0, nil
	}

	var taskLines []*graph.Line
	for _, taskGroup := range []int{genie.TaskGroupMale, genie.TaskGroupFemale} {
		if task, ok := r.TaskLines[taskGroup]; ok {
			taskLines = append(taskLines, task)
		}
	}
	group := graph.NewVillagerGroup(genie.VillagerGroupID, taskLines)
	r.AddVillagerGroup(group)
	for _, id := range memberIDs {
		r.SetUnitRef(id, group)
	}
	return 1, nil
}

// createAmbientGroups wraps the fixed set of ambient map objects into
// single-unit groups. Ids missing from the dump are skipped so trimmed
// datasets still convert.
func createAmbientGroups(d *genie.Dump, r *graph.Registry) (int, error) {
	created := 0
	for _, unitID := range ambientUnitIDs {
		unit, ok := d.Unit(unitID)
		if !ok {
			continue
		}
		group := graph.NewAmbientGroup(unitID)
		group.Append(unit)
		r.AddAmbientGroup(group)
		r.SetUnitRef(unitID, group)
		created++
	}
	return created, nil
}

// createVariantGroups groups the cosmetic variants of a map object under
// one id. A group is created lazily once its first member is found, so a
// dump missing a whole set produces no empty group.
func createVariantGroups(d *genie.Dump, r *graph.Registry) (int, error) {
	groupIDs := make([]int, 0, len(variantGroups))
	for id := range variantGroups {
		groupIDs = append(groupIDs, id)
	}
	sort.Ints(groupIDs)

	created := 0
	for _, groupID := range groupIDs {
		var group *graph.Line
		for _, unitID := range variantGroups[groupID] {
			unit, ok := d.Unit(unitID)
			if !ok {
				continue
			}
			if group == nil {
				group = graph.NewVariantGroup(groupID)
			}
			group.Append(unit)
			r.SetUnitRef(unitID, group)
		}
		if group == nil {
			continue
		}
		r.AddVariantGroup(group)
		created++
	}
	return created, nil
}

// createTerrainGroups registers a group per enabled terrain row. Disabled
// rows are editor leftovers.
func createTerrainGroups(d *genie.Dump, r *graph.Registry) (int, error) {
	created := 0
	for _, terrain := range d.Terrains {
		if !terrain.Enabled {
			continue
		}
		r.AddTerrainGroup(graph.NewTerrainGroup(terrain))
		created++
	}
	return created, nil
}

// createCivGroups registers one group per civilization row. Bonus and
// unique links are filled in by the later linking passes.
func createCivGroups(d *genie.Dump, r *graph.Registry) (int, error) {
	for _, civ := range d.Civilizations {
		r.AddCivGroup(graph.NewCivGroup(civ.ID, civ.TechTreeID, civ.TeamBonusID))
	}
	return len(d.Civilizations), nil
}
