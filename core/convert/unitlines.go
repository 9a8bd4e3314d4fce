package convert

import (
	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// extraUnitIDs lists wildlife units that belong into unit lines although
// no connection record mentions them.
var extraUnitIDs = []int{48, 65, 594, 833}

// createUnitLines builds one line per vertical line id from the unit
// connection table. The line flavor comes from the first connection seen
// for the line: a transform unit makes a transform line, the monk line id
// makes the monk line, task-grouped units are left for the villager
// builder, everything else is a plain line. Returns the number of created
// lines.
func createUnitLines(d *genie.Dump, r *graph.Registry) (int, error) {
	created := 0
	for _, conn := range d.UnitConnections {
		unit, ok := d.Unit(conn.ID)
		if !ok {
			return created, &InconsistencyError{
				Pass:   "create unit lines",
				Entity: "unit",
				ID:     conn.ID,
				Reason: "connection points at a missing unit record",
			}
		}

		line, ok := r.UnitLinesByLineID[conn.VerticalLineID]
		if !ok {
			switch {
			case unit.TransformUnitID > -1:
				line = graph.NewTransformLine(conn.VerticalLineID, unit.TransformUnitID)
			case conn.VerticalLineID == genie.MonkLineID:
				line = graph.NewMonkLine(conn.VerticalLineID, genie.MonkWithRelicID)
			case unit.TaskGroup > 0:
				// Villagers group by task; the villager builder owns them.
				continue
			default:
				line = graph.NewUnitLine(conn.VerticalLineID)
			}
			r.AddUnitLine(line)
			created++
		}

		if conn.LineMode == genie.LineModeFirst {
			line.InsertHead(unit)
		} else {
			predecessorID, ok := genie.FirstRef(conn.Refs, genie.RefUnit)
			if !ok {
				return created, &InconsistencyError{
					Pass:   "create unit lines",
					Entity: "unit",
					ID:     conn.ID,
					Reason: "line member without a unit-typed predecessor reference",
				}
			}
			line.InsertAfter(unit, predecessorID)
		}
		r.SetUnitRef(conn.ID, line)
	}

	r.IndexUnitLineHeads()
	return created, nil
}

// createExtraUnitLines covers the wildlife units the connection tables
// skip. Each one present in the dump becomes a singleton line keyed by
// its own unit id. Returns the number of created lines.
func createExtraUnitLines(d *genie.Dump, r *graph.Registry) (int, error) {
	created := 0
	for _, unitID := range extraUnitIDs {
		unit, ok := d.Unit(unitID)
		if !ok {
			continue
		}
		if _, grouped := r.UnitRefs[unitID]; grouped {
			continue
		}
		line := graph.NewUnitLine(unitID)
		line.InsertHead(unit)
		r.RegisterUnitLineHead(line)
		r.SetUnitRef(unitID, line)
		created++
	}
	return created, nil
}
