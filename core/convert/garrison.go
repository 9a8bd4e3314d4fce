package convert

import (
	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// garrisonAccepts lists the creatable categories each garrison mode admits.
var garrisonAccepts = map[graph.GarrisonMode][]int{
	graph.GarrisonNatural: {
		genie.CreatableTypeVillager,
		genie.CreatableTypeInfantry,
		genie.CreatableTypeCavalry,
		genie.CreatableTypeMonk,
	},
	graph.GarrisonUnitGarrison: {
		genie.CreatableTypeVillager,
		genie.CreatableTypeInfantry,
	},
	graph.GarrisonSelfProduced: {
		genie.CreatableTypeVillager,
		genie.CreatableTypeInfantry,
		genie.CreatableTypeCavalry,
		genie.CreatableTypeMonk,
	},
	graph.GarrisonMonk: {
		genie.CreatableTypeRelic,
	},
}

// naturalGate maps creatable categories to the garrison_type bit that
// admits them into naturally garrisoning buildings.
var naturalGate = map[int]int{
	genie.CreatableTypeVillager: genie.GarrisonVillagers,
	genie.CreatableTypeInfantry: genie.GarrisonInfantry,
	genie.CreatableTypeCavalry:  genie.GarrisonCavalry,
	genie.CreatableTypeMonk:     genie.GarrisonMonks,
}

// linkGarrisons pairs every garrison location with the unit lines allowed
// inside. Monk lines additionally pick up relics, which live in ambient
// groups rather than unit lines.
func linkGarrisons(_ *genie.Dump, r *graph.Registry) (int, error) {
	var garrisons []*graph.Line
	for _, id := range r.SortedUnitLineIDs() {
		garrisons = append(garrisons, r.UnitLines[id])
	}
	for _, id := range r.SortedBuildingLineIDs() {
		garrisons = append(garrisons, r.BuildingLines[id])
	}

	linked := 0
	for _, g := range garrisons {
		mode := g.GarrisonMode()
		if mode == graph.GarrisonNone {
			continue
		}
		gateMask := 0
		if mode == graph.GarrisonNatural {
			gateMask = g.Head().GarrisonType
		}
		for _, candID := range r.SortedUnitLineIDs() {
			cand := r.UnitLines[candID]
			if !garrisonEligible(mode, gateMask, g, cand) {
				continue
			}
			graph.LinkGarrison(g, cand)
			linked++
		}
		if mode != graph.GarrisonMonk {
			continue
		}
		for _, ambientID := range r.SortedAmbientGroupIDs() {
			ambient := r.AmbientGroups[ambientID]
			if head := ambient.Head(); head != nil && head.CreatableType == genie.CreatableTypeRelic {
				graph.LinkGarrison(g, ambient)
				linked++
			}
		}
	}
	return linked, nil
}

// garrisonEligible decides whether a candidate line may enter a garrison.
// Ships skip the category check but only ever garrison where they are
// produced. Siege weapons stay outside rams and towers even when the raw
// gates would admit them.
func garrisonEligible(mode graph.GarrisonMode, gateMask int, garrison, candidate *graph.Line) bool {
	head := candidate.Head()
	if head == nil {
		return false
	}
	isShip := head.Trait&genie.TraitShip != 0
	if !garrisonModeAccepts(mode, head.CreatableType) && !isShip {
		return false
	}
	switch mode {
	case graph.GarrisonNatural:
		if isShip {
			return false
		}
		if gateMask&naturalGate[head.CreatableType] == 0 {
			return false
		}
		if head.CreatableType == genie.CreatableTypeInfantry && genie.IsSiegeClass(candidate.ClassID()) {
			return false
		}
	case graph.GarrisonUnitGarrison:
		if isShip || genie.IsSiegeClass(candidate.ClassID()) {
			return false
		}
	case graph.GarrisonSelfProduced:
		if !garrison.Creates(candidate) {
			return false
		}
	case graph.GarrisonMonk:
		// Monks carry relics only; those link from the ambient groups.
		return false
	}
	return true
}

func garrisonModeAccepts(mode graph.GarrisonMode, creatableType int) bool {
	for _, t := range garrisonAccepts[mode] {
		if t == creatableType {
			return true
		}
	}
	return false
}
