package check

import (
	"bytes"
	"fmt"
	"sort"

	"genie-graph/core/genie"
	"genie-graph/core/graph"
)

// maxDetails caps the offending ids listed per result.
const maxDetails = 5

// Result is the outcome of one registry check.
type Result struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Checked int      `json:"checked"`
	Details []string `json:"details,omitempty"`
}

// Report bundles the results of a full registry validation.
type Report struct {
	Passed  bool     `json:"passed"`
	Results []Result `json:"results"`
}

// All runs every check and bundles the results.
func All(d *genie.Dump, r *graph.Registry) Report {
	report := Report{
		Passed: true,
		Results: []Result{
			Structure(d, r),
			Partition(r),
			Links(r),
			Determinism(r),
		},
	}
	for _, res := range report.Results {
		if !res.Passed {
			report.Passed = false
		}
	}
	return report
}

// Structure verifies that every registered group is nonempty, that every
// head resolves to a unit record of the dump, and that the registry maps
// key their groups consistently.
func Structure(d *genie.Dump, r *graph.Registry) Result {
	var details []string
	checked := 0

	inspect := func(l *graph.Line) {
		checked++
		head := l.Head()
		if head == nil {
			details = append(details, fmt.Sprintf("%s %d: empty", l.Kind, l.ID))
			return
		}
		if _, ok := d.Unit(head.ID); !ok {
			details = append(details, fmt.Sprintf("%s %d: head unit %d not in the dump", l.Kind, l.ID, head.ID))
		}
	}
	for _, l := range groups(r) {
		inspect(l)
		for _, task := range l.TaskLines {
			inspect(task)
		}
	}

	for _, key := range r.SortedUnitLineIDs() {
		if l := r.UnitLines[key]; l.HeadUnitID() != key && l.ID != key {
			details = append(details, fmt.Sprintf("unit line map: key %d points at %s %d", key, l.Kind, l.ID))
		}
	}
	for _, key := range sortedKeys(r.UnitLinesByLineID) {
		if l := r.UnitLinesByLineID[key]; l.ID != key {
			details = append(details, fmt.Sprintf("line id map: key %d points at %s %d", key, l.Kind, l.ID))
		}
	}
	for _, key := range r.SortedBuildingLineIDs() {
		if l := r.BuildingLines[key]; l.ID != key {
			details = append(details, fmt.Sprintf("building line map: key %d points at %s %d", key, l.Kind, l.ID))
		}
	}
	for _, key := range r.SortedTechGroupIDs() {
		if tg := r.TechGroups[key]; tg.TechID != key {
			details = append(details, fmt.Sprintf("tech group map: key %d points at tech %d", key, tg.TechID))
		}
	}

	return newResult("structure", checked, details)
}

// Partition verifies that the unit reference map covers exactly the units
// grouped somewhere: every member is referenced, every reference points
// back at the owning group.
func Partition(r *graph.Registry) Result {
	owners := make(map[int]*graph.Line)
	for _, l := range groups(r) {
		for _, id := range l.UnitIDs() {
			owners[id] = l
		}
	}

	var details []string
	for _, id := range sortedKeys(owners) {
		ref, ok := r.UnitRefs[id]
		if !ok {
			details = append(details, fmt.Sprintf("unit %d: grouped but unreferenced", id))
			continue
		}
		if ref != owners[id] {
			details = append(details, fmt.Sprintf("unit %d: referenced by %s %d instead of %s %d",
				id, ref.Kind, ref.ID, owners[id].Kind, owners[id].ID))
		}
	}
	for _, id := range r.SortedUnitRefIDs() {
		if _, ok := owners[id]; !ok {
			details = append(details, fmt.Sprintf("unit %d: referenced but in no group", id))
		}
	}

	return newResult("partition", len(owners), details)
}

// Links verifies that every cross-group link holds in both directions and
// that the id fields of the tech groups resolve against the registry.
func Links(r *graph.Registry) Result {
	var details []string
	checked := 0

	all := groups(r)
	registered := make(map[*graph.Line]bool, len(all))
	for _, l := range all {
		registered[l] = true
	}

	for _, l := range all {
		for _, c := range l.Creatables {
			checked++
			if c.CreatedAt != l {
				details = append(details, fmt.Sprintf("%s %d: creatable %s %d does not point back", l.Kind, l.ID, c.Kind, c.ID))
			}
		}
		if l.CreatedAt != nil {
			checked++
			if !l.CreatedAt.Creates(l) {
				details = append(details, fmt.Sprintf("%s %d: creator %s %d does not list it", l.Kind, l.ID, l.CreatedAt.Kind, l.CreatedAt.ID))
			}
		}
		for _, tg := range l.Researchables {
			checked++
			if tg.ResearchedAt != l {
				details = append(details, fmt.Sprintf("%s %d: researchable tech %d does not point back", l.Kind, l.ID, tg.TechID))
			}
		}
		for _, post := range l.TradePosts {
			checked++
			if !containsLine(post.TradePartners, l) {
				details = append(details, fmt.Sprintf("%s %d: trade post %d does not list it", l.Kind, l.ID, post.ID))
			}
		}
		for _, partner := range l.TradePartners {
			checked++
			if !containsLine(partner.TradePosts, l) {
				details = append(details, fmt.Sprintf("%s %d: trade partner %d does not list it", l.Kind, l.ID, partner.ID))
			}
		}
		for _, loc := range l.GarrisonLocations {
			checked++
			if !containsLine(loc.GarrisonEntities, l) {
				details = append(details, fmt.Sprintf("%s %d: garrison location %d does not list it", l.Kind, l.ID, loc.ID))
			}
		}
		for _, ent := range l.GarrisonEntities {
			checked++
			if !containsLine(ent.GarrisonLocations, l) {
				details = append(details, fmt.Sprintf("%s %d: garrison entity %d does not list it", l.Kind, l.ID, ent.ID))
			}
		}
	}

	for _, techID := range r.SortedTechGroupIDs() {
		tg := r.TechGroups[techID]
		checked++
		switch tg.Kind {
		case graph.TechBuildingLineUpgrade:
			line, ok := r.BuildingLines[tg.LineID]
			if !ok {
				details = append(details, fmt.Sprintf("tech %d: building line %d not registered", techID, tg.LineID))
			} else if !line.Contains(tg.TargetID) {
				details = append(details, fmt.Sprintf("tech %d: target %d not in building line %d", techID, tg.TargetID, tg.LineID))
			}
		case graph.TechBuildingUnlock:
			if _, ok := r.BuildingLines[tg.TargetID]; !ok {
				details = append(details, fmt.Sprintf("tech %d: unlocked building %d has no line", techID, tg.TargetID))
			}
		case graph.TechUnitUnlock:
			if _, ok := r.UnitLinesByLineID[tg.LineID]; !ok {
				details = append(details, fmt.Sprintf("tech %d: unit line %d not registered", techID, tg.LineID))
			}
		case graph.TechUnitLineUpgrade:
			line, ok := r.UnitLinesByLineID[tg.LineID]
			if !ok {
				details = append(details, fmt.Sprintf("tech %d: unit line %d not registered", techID, tg.LineID))
			} else if !line.Contains(tg.TargetID) {
				details = append(details, fmt.Sprintf("tech %d: target %d not in unit line %d", techID, tg.TargetID, tg.LineID))
			}
		case graph.TechInitiated:
			if _, ok := r.UnitRefs[tg.InitiatorID]; !ok {
				details = append(details, fmt.Sprintf("tech %d: initiator %d not grouped", techID, tg.InitiatorID))
			}
		case graph.TechCivBonus:
			if _, ok := r.CivGroups[tg.CivID]; !ok {
				details = append(details, fmt.Sprintf("tech %d: civ %d not registered", techID, tg.CivID))
			}
		}
		if tg.ResearchedAt != nil && !containsTech(tg.ResearchedAt.Researchables, tg) {
			details = append(details, fmt.Sprintf("tech %d: research location %d does not list it", techID, tg.ResearchedAt.ID))
		}
	}

	for _, civID := range r.SortedCivGroupIDs() {
		civ := r.CivGroups[civID]
		for _, tg := range civ.BonusTechs {
			checked++
			if r.TechGroups[tg.TechID] != tg {
				details = append(details, fmt.Sprintf("civ %d: bonus tech %d not registered", civID, tg.TechID))
			}
		}
		for _, tg := range civ.UniqueTechs {
			checked++
			if r.TechGroups[tg.TechID] != tg {
				details = append(details, fmt.Sprintf("civ %d: unique tech %d not registered", civID, tg.TechID))
			}
		}
		for _, l := range civ.UniqueLines {
			checked++
			if !registered[l] {
				details = append(details, fmt.Sprintf("civ %d: unique %s %d not registered", civID, l.Kind, l.ID))
			}
		}
	}

	return newResult("links", checked, details)
}

// Determinism encodes the registry snapshot twice and compares the bytes.
func Determinism(r *graph.Registry) Result {
	var details []string
	first, err := graph.BuildSnapshot(r).Encode()
	if err != nil {
		return newResult("determinism", 1, []string{err.Error()})
	}
	second, err := graph.BuildSnapshot(r).Encode()
	if err != nil {
		return newResult("determinism", 1, []string{err.Error()})
	}
	if !bytes.Equal(first, second) {
		details = append(details, "two encodings of the same registry differ")
	}
	return newResult("determinism", 1, details)
}

// groups returns every registered top-level group exactly once, in a
// stable order. Several maps index the same group under different keys;
// task lines are reachable through their villager group.
func groups(r *graph.Registry) []*graph.Line {
	seen := make(map[*graph.Line]bool)
	var out []*graph.Line
	add := func(l *graph.Line) {
		if l == nil || seen[l] {
			return
		}
		seen[l] = true
		out = append(out, l)
	}

	for _, id := range sortedKeys(r.UnitLinesByLineID) {
		add(r.UnitLinesByLineID[id])
	}
	for _, id := range r.SortedUnitLineIDs() {
		add(r.UnitLines[id])
	}
	for _, id := range r.SortedBuildingLineIDs() {
		add(r.BuildingLines[id])
	}
	for _, id := range r.SortedVillagerGroupIDs() {
		add(r.VillagerGroups[id])
	}
	for _, id := range r.SortedAmbientGroupIDs() {
		add(r.AmbientGroups[id])
	}
	for _, id := range r.SortedVariantGroupIDs() {
		add(r.VariantGroups[id])
	}
	return out
}

func newResult(name string, checked int, details []string) Result {
	return Result{
		Name:    name,
		Passed:  len(details) == 0,
		Checked: checked,
		Details: capDetails(details),
	}
}

func capDetails(details []string) []string {
	if len(details) <= maxDetails {
		return details
	}
	capped := details[:maxDetails:maxDetails]
	return append(capped, fmt.Sprintf("+%d more", len(details)-maxDetails))
}

func containsLine(lines []*graph.Line, l *graph.Line) bool {
	for _, candidate := range lines {
		if candidate == l {
			return true
		}
	}
	return false
}

func containsTech(groups []*graph.TechGroup, tg *graph.TechGroup) bool {
	for _, candidate := range groups {
		if candidate == tg {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
