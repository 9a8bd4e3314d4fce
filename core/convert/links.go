package convert

import (
	"fmt"

	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// linkBuildingUpgrades walks the age upgrade techs and appends the
// buildings their upgrade effects produce to the affected building lines.
// Age-gated buildings (the town center stages, mills, markets) only show
// up in the age bundles, never as tech references of a building
// connection.
func linkBuildingUpgrades(d *genie.Dump, r *graph.Registry) (int, error) {
	linked := 0
	for _, techID := range r.SortedAgeUpgradeIDs() {
		tech, ok := d.Tech(techID)
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link building upgrades",
				Entity: "tech",
				ID:     techID,
				Reason: "tech record missing",
			}
		}
		if tech.EffectBundleID < 0 {
			continue
		}
		bundle, ok := d.EffectBundle(tech.EffectBundleID)
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link building upgrades",
				Entity: "tech",
				ID:     techID,
				Reason: "effect bundle missing",
			}
		}
		for _, eff := range bundle.EffectsOfType(genie.EffectTypeUpgrade) {
			line, ok := r.BuildingLines[eff.A]
			if !ok {
				continue
			}
			target, ok := d.Unit(eff.B)
			if !ok {
				return linked, &InconsistencyError{
					Pass:   "link building upgrades",
					Entity: "unit",
					ID:     eff.B,
					Reason: "upgrade target unit record missing",
				}
			}
			if line.Contains(target.ID) {
				continue
			}
			line.Append(target)
			r.SetUnitRef(target.ID, line)
			linked++
		}
	}
	return linked, nil
}

// linkCreatables connects every creatable line to the group producing it.
// Unit lines train at building lines; building lines are erected by the
// villager group or, failing that, by another unit line.
func linkCreatables(_ *genie.Dump, r *graph.Registry) (int, error) {
	linked := 0
	for _, lineID := range r.SortedUnitLineIDs() {
		line := r.UnitLines[lineID]
		if !line.IsCreatable() {
			continue
		}
		locationID := line.TrainLocationID()
		building, ok := r.BuildingLines[locationID]
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link creatables",
				Entity: "unit line",
				ID:     lineID,
				Reason: fmt.Sprintf("train location %d is not a building line", locationID),
			}
		}
		building.AddCreatable(line)
		linked++
	}
	for _, lineID := range r.SortedBuildingLineIDs() {
		line := r.BuildingLines[lineID]
		if !line.IsCreatable() {
			continue
		}
		locationID := line.TrainLocationID()
		creator, ok := r.VillagerGroups[locationID]
		if !ok {
			creator, ok = r.UnitLines[locationID]
		}
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link creatables",
				Entity: "building line",
				ID:     lineID,
				Reason: fmt.Sprintf("train location %d is not a known group", locationID),
			}
		}
		creator.AddCreatable(line)
		linked++
	}
	return linked, nil
}

// linkResearchables attaches every researchable tech group to the building
// line it is researched at.
func linkResearchables(d *genie.Dump, r *graph.Registry) (int, error) {
	linked := 0
	for _, techID := range r.SortedTechGroupIDs() {
		group := r.TechGroups[techID]
		tech, ok := d.Tech(techID)
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link researchables",
				Entity: "tech",
				ID:     techID,
				Reason: "tech record missing",
			}
		}
		if !tech.IsResearchable() {
			continue
		}
		building, ok := r.BuildingLines[tech.ResearchLocationID]
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link researchables",
				Entity: "tech",
				ID:     techID,
				Reason: fmt.Sprintf("research location %d is not a building line", tech.ResearchLocationID),
			}
		}
		building.AddResearchable(group)
		linked++
	}
	return linked, nil
}

// linkCivUniques distributes bonuses, unique lines and unique techs to
// their owning civ groups. A line is unique when its enabling tech is
// bound to one civilization; a researchable tech is unique when its record
// carries a civ id.
func linkCivUniques(d *genie.Dump, r *graph.Registry) (int, error) {
	linked := 0
	for _, techID := range r.SortedCivBonusIDs() {
		bonus := r.CivBonuses[techID]
		civ, ok := r.CivGroups[bonus.CivID]
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link civ uniques",
				Entity: "civilization",
				ID:     bonus.CivID,
				Reason: "civ group missing for bonus tech",
			}
		}
		civ.AddBonusTech(bonus)
		linked++
	}

	for _, lineID := range r.SortedUnitLineIDs() {
		line := r.UnitLines[lineID]
		conn, ok := d.UnitConnection(line.HeadUnitID())
		if !ok {
			continue
		}
		civID, ok := enablingCiv(d, conn.EnablingResearchID)
		if !ok {
			continue
		}
		civ, ok := r.CivGroups[civID]
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link civ uniques",
				Entity: "civilization",
				ID:     civID,
				Reason: "civ group missing for unique unit line",
			}
		}
		civ.AddUniqueLine(line)
		linked++
	}

	for _, lineID := range r.SortedBuildingLineIDs() {
		line := r.BuildingLines[lineID]
		conn, ok := d.BuildingConnection(line.HeadUnitID())
		if !ok {
			continue
		}
		civID, ok := enablingCiv(d, conn.EnablingResearchID)
		if !ok {
			continue
		}
		civ, ok := r.CivGroups[civID]
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link civ uniques",
				Entity: "civilization",
				ID:     civID,
				Reason: "civ group missing for unique building line",
			}
		}
		civ.AddUniqueLine(line)
		linked++
	}

	for _, techID := range r.SortedTechGroupIDs() {
		group := r.TechGroups[techID]
		tech, ok := d.Tech(techID)
		if !ok {
			continue
		}
		if tech.CivilizationID <= 0 || !tech.IsResearchable() {
			continue
		}
		civ, ok := r.CivGroups[tech.CivilizationID]
		if !ok {
			return linked, &InconsistencyError{
				Pass:   "link civ uniques",
				Entity: "civilization",
				ID:     tech.CivilizationID,
				Reason: "civ group missing for unique tech",
			}
		}
		civ.AddUniqueTech(group)
		linked++
	}
	return linked, nil
}

// enablingCiv resolves the enabling tech of a connection to the owning
// civilization. Returns false when the line is available to everyone.
func enablingCiv(d *genie.Dump, techID int) (int, bool) {
	if techID < 0 {
		return 0, false
	}
	tech, ok := d.Tech(techID)
	if !ok || tech.CivilizationID <= 0 {
		return 0, false
	}
	return tech.CivilizationID, true
}

// linkDropsites teaches building lines which resources villagers drop off
// at them. Both dropsite slots of every task unit are resolved; the
// carried resource comes from the gather or hunt command, preferring what
// the unit carries home (resource_out) over what it harvests.
func linkDropsites(_ *genie.Dump, r *graph.Registry) (int, error) {
	linked := 0
	for _, groupID := range r.SortedVillagerGroupIDs() {
		group := r.VillagerGroups[groupID]
		for _, task := range group.TaskLines {
			for _, unit := range task.Units() {
				var sites []*graph.Line
				for _, siteID := range []int{unit.DropSite0, unit.DropSite1} {
					if siteID < 0 {
						continue
					}
					site, ok := r.BuildingLines[siteID]
					if !ok {
						return linked, &InconsistencyError{
							Pass:   "link dropsites",
							Entity: "unit",
							ID:     unit.ID,
							Reason: fmt.Sprintf("dropsite %d is not a building line", siteID),
						}
					}
					sites = append(sites, site)
				}
				if len(sites) == 0 {
					continue
				}
				for _, cmd := range unit.Commands {
					if cmd.Type != genie.CommandTypeGather && cmd.Type != genie.CommandTypeHunt {
						continue
					}
					resource := cmd.ResourceOut
					if resource < 0 {
						resource = cmd.ResourceIn
					}
					if resource < 0 {
						continue
					}
					for _, site := range sites {
						before := len(site.AcceptedResources)
						site.AcceptResource(resource)
						if len(site.AcceptedResources) > before {
							linked++
						}
					}
				}
			}
		}
	}
	return linked, nil
}

// linkTradePosts pairs trading units with the buildings their trade
// command points at. Only the first trade command of a head decides the
// post; the trade cart carries a leftover second command pointing at the
// dummied-out trade workshop.
func linkTradePosts(_ *genie.Dump, r *graph.Registry) (int, error) {
	linked := 0
	for _, lineID := range r.SortedUnitLineIDs() {
		line := r.UnitLines[lineID]
		head := line.Head()
		if head == nil {
			continue
		}
		for _, cmd := range head.Commands {
			if cmd.Type != genie.CommandTypeTrade {
				continue
			}
			post, ok := r.BuildingLines[cmd.UnitID]
			if !ok {
				return linked, &InconsistencyError{
					Pass:   "link trade posts",
					Entity: "unit line",
					ID:     lineID,
					Reason: fmt.Sprintf("trade post %d is not a building line", cmd.UnitID),
				}
			}
			graph.LinkTrade(post, line)
			linked++
			break
		}
	}
	return linked, nil
}
