package convert

import (
	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// createBuildingLines builds one line per building from the building
// connection table. By default the connection id is the line id; when a
// connected tech upgrades another building into this one, the building
// joins the upgraded line behind its predecessor instead, and the tech is
// classified as a building line upgrade. Annex parts (head_unit_id set)
// fold into their head building and get no line of their own. Returns the
// number of created lines.
func createBuildingLines(d *genie.Dump, r *graph.Registry) (int, error) {
	created := 0
	for _, conn := range d.BuildingConnections {
		building, ok := d.Unit(conn.ID)
		if !ok {
			return created, &InconsistencyError{
				Pass:   "create building lines",
				Entity: "building",
				ID:     conn.ID,
				Reason: "connection points at a missing unit record",
			}
		}
		if building.HeadUnitID > -1 {
			continue
		}

		lineID := conn.ID
		predecessorID := -1
		for _, techID := range genie.RefIDs(conn.Refs, genie.RefTech) {
			tech, ok := d.Tech(techID)
			if !ok {
				return created, &InconsistencyError{
					Pass:   "create building lines",
					Entity: "tech",
					ID:     techID,
					Reason: "connection references a missing tech record",
				}
			}
			sourceID, err := upgradeSource(d, "create building lines", tech, conn.ID)
			if err != nil {
				return created, err
			}
			if sourceID < 0 {
				continue
			}

			// The tech upgrades sourceID into this building, so the
			// building continues that line instead of starting one.
			lineID = sourceID
			previousID, ok := genie.FirstRef(conn.Refs, genie.RefBuilding)
			if !ok {
				return created, &InconsistencyError{
					Pass:   "create building lines",
					Entity: "building",
					ID:     conn.ID,
					Reason: "upgraded building without a building-typed predecessor reference",
				}
			}
			predecessorID = previousID
			r.AddTechGroup(graph.NewBuildingLineUpgrade(techID, lineID, conn.ID))
			break
		}

		line, ok := r.BuildingLines[lineID]
		if !ok {
			if building.StackUnitID > -1 {
				line = graph.NewStackBuildingLine(lineID, building.StackUnitID)
			} else {
				line = graph.NewBuildingLine(lineID)
			}
			r.AddBuildingLine(line)
			created++
		}

		if predecessorID > -1 {
			line.InsertAfter(building, predecessorID)
		} else {
			line.Append(building)
		}
		r.SetUnitRef(conn.ID, line)
	}
	return created, nil
}

// upgradeSource scans the tech's effect bundle for an upgrade effect
// targeting the building and returns the upgrade source id, or -1 when
// the tech does not upgrade into the building. A tech without a bundle
// has no effects; a dangling bundle reference is a structural error.
func upgradeSource(d *genie.Dump, passName string, tech *genie.Tech, buildingID int) (int, error) {
	if tech.EffectBundleID < 0 {
		return -1, nil
	}
	bundle, ok := d.EffectBundle(tech.EffectBundleID)
	if !ok {
		return -1, &InconsistencyError{
			Pass:   passName,
			Entity: "tech",
			ID:     tech.ID,
			Reason: "effect bundle missing",
		}
	}
	for _, eff := range bundle.Effects {
		if eff.TypeID == genie.EffectTypeUpgrade && eff.B == buildingID {
			return eff.A, nil
		}
	}
	return -1, nil
}
