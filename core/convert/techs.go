package convert

import (
	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// createTechGroups classifies every tech that shapes the graph. The tech
// connection table decides between age upgrades, building unlocks and stat
// upgrades; the unit connection table yields unit unlocks and line
// upgrades; unit records yield initiated techs; tech rows carrying a civ
// id yield civ bonuses. Building line upgrades were already claimed while the
// building lines were built and keep their classification. Returns the
// number of groups registered.
func createTechGroups(d *genie.Dump, r *graph.Registry) (int, error) {
	created := 0
	add := func(tg *graph.TechGroup) {
		if r.AddTechGroup(tg) {
			created++
		}
	}

	for _, conn := range d.TechConnections {
		tech, ok := d.Tech(conn.ID)
		if !ok {
			return created, &InconsistencyError{
				Pass:   "create tech groups",
				Entity: "tech",
				ID:     conn.ID,
				Reason: "connection points at a missing tech record",
			}
		}

		switch {
		case tech.TechType == genie.TechTypeAge || conn.LineMode == genie.LineModeAge:
			ageID, ok := genie.FirstRef(conn.Refs, genie.RefAge)
			if !ok {
				return created, &InconsistencyError{
					Pass:   "create tech groups",
					Entity: "tech",
					ID:     conn.ID,
					Reason: "age tech without an age-typed reference",
				}
			}
			add(graph.NewAgeUpgrade(conn.ID, ageID))

		case len(conn.BuildingIDs) > 0:
			if _, claimed := r.BuildingUpgrades[conn.ID]; claimed {
				continue
			}
			unlockID := -1
			if tech.EffectBundleID >= 0 {
				bundle, ok := d.EffectBundle(tech.EffectBundleID)
				if !ok {
					return created, &InconsistencyError{
						Pass:   "create tech groups",
						Entity: "tech",
						ID:     conn.ID,
						Reason: "effect bundle missing",
					}
				}
				if unlocks := bundle.EffectsOfType(genie.EffectTypeUnlock); len(unlocks) > 0 {
					unlockID = unlocks[0].A
				}
			}
			if unlockID > -1 {
				add(graph.NewBuildingUnlock(conn.ID, unlockID))
			} else {
				add(graph.NewStatUpgrade(conn.ID))
			}

		default:
			add(graph.NewStatUpgrade(conn.ID))
		}
	}

	for _, conn := range d.UnitConnections {
		if conn.RequiredResearchID < 0 && conn.EnablingResearchID < 0 {
			// Available from the start, no tech involved.
			continue
		}
		switch conn.LineMode {
		case genie.LineModeFirst:
			if conn.EnablingResearchID < 0 {
				continue
			}
			add(graph.NewUnitUnlock(conn.EnablingResearchID, conn.VerticalLineID))
		case genie.LineModeMember:
			if conn.RequiredResearchID < 0 {
				continue
			}
			add(graph.NewUnitLineUpgrade(conn.RequiredResearchID, conn.VerticalLineID, conn.ID))
		}
	}

	for _, unit := range d.Units {
		if unit.ResearchID < 0 {
			continue
		}
		add(graph.NewInitiatedTech(unit.ResearchID, unit.ID))
	}

	for _, tech := range d.Techs {
		if tech.CivilizationID <= 0 || tech.IsResearchable() || tech.FullTechMode {
			continue
		}
		add(graph.NewCivBonus(tech.ID, tech.CivilizationID))
	}

	return created, nil
}
