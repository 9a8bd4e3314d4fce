package graph

import "sort"

// Registry owns every group produced by one conversion run.
type Registry struct {
	// UnitLines maps head unit ids to unit lines. The villager group is
	// registered under its group id instead, matching how the link passes
	// resolve train locations.
	UnitLines map[int]*Line
	// UnitLinesByLineID maps vertical line ids to unit lines. Extra lines
	// without a connection record only appear in UnitLines.
	UnitLinesByLineID map[int]*Line
	// BuildingLines maps line ids (head building ids) to building lines.
	BuildingLines map[int]*Line
	// TaskLines maps task group ids to villager task lines.
	TaskLines map[int]*Line
	// VillagerGroups maps group ids to villager groups.
	VillagerGroups map[int]*Line
	// AmbientGroups maps unit ids to ambient groups.
	AmbientGroups map[int]*Line
	// VariantGroups maps group ids to variant groups.
	VariantGroups map[int]*Line
	// TerrainGroups maps terrain ids to terrain groups.
	TerrainGroups map[int]*TerrainGroup
	// CivGroups maps civ indices to civ groups.
	CivGroups map[int]*CivGroup

	// TechGroups maps tech ids to their single classified group. The
	// per-kind mirrors below are kept consistent by AddTechGroup.
	TechGroups       map[int]*TechGroup
	AgeUpgrades      map[int]*TechGroup
	BuildingUpgrades map[int]*TechGroup
	BuildingUnlocks  map[int]*TechGroup
	StatUpgrades     map[int]*TechGroup
	UnitUnlocks      map[int]*TechGroup
	UnitUpgrades     map[int]*TechGroup
	InitiatedTechs   map[int]*TechGroup
	CivBonuses       map[int]*TechGroup

	// UnitRefs maps every grouped unit id to its owning group.
	UnitRefs map[int]*Line
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		UnitLines:         make(map[int]*Line),
		UnitLinesByLineID: make(map[int]*Line),
		BuildingLines:     make(map[int]*Line),
		TaskLines:         make(map[int]*Line),
		VillagerGroups:    make(map[int]*Line),
		AmbientGroups:     make(map[int]*Line),
		VariantGroups:     make(map[int]*Line),
		TerrainGroups:     make(map[int]*TerrainGroup),
		CivGroups:         make(map[int]*CivGroup),
		TechGroups:        make(map[int]*TechGroup),
		AgeUpgrades:       make(map[int]*TechGroup),
		BuildingUpgrades:  make(map[int]*TechGroup),
		BuildingUnlocks:   make(map[int]*TechGroup),
		StatUpgrades:      make(map[int]*TechGroup),
		UnitUnlocks:       make(map[int]*TechGroup),
		UnitUpgrades:      make(map[int]*TechGroup),
		InitiatedTechs:    make(map[int]*TechGroup),
		CivBonuses:        make(map[int]*TechGroup),
		UnitRefs:          make(map[int]*Line),
	}
}

// AddUnitLine registers a unit line under its vertical line id.
func (r *Registry) AddUnitLine(l *Line) {
	r.UnitLinesByLineID[l.ID] = l
}

// RegisterUnitLineHead registers a unit line under its head unit id.
// Lines built from connection records get indexed in bulk after the
// builder pass; extra lines register here directly.
func (r *Registry) RegisterUnitLineHead(l *Line) {
	r.UnitLines[l.HeadUnitID()] = l
}

// IndexUnitLineHeads fills the head-keyed map from the line-keyed map.
// Called once after the unit line builder, when every head is final.
func (r *Registry) IndexUnitLineHeads() {
	for _, l := range r.UnitLinesByLineID {
		r.RegisterUnitLineHead(l)
	}
}

// AddBuildingLine registers a building line under its line id.
func (r *Registry) AddBuildingLine(l *Line) {
	r.BuildingLines[l.ID] = l
}

// AddTaskLine registers a villager task line under its task group id.
func (r *Registry) AddTaskLine(l *Line) {
	r.TaskLines[l.TaskGroupID] = l
}

// AddVillagerGroup registers the villager group. It also joins the unit
// line map under its group id; train location lookups resolve villagers
// through that map.
func (r *Registry) AddVillagerGroup(l *Line) {
	r.VillagerGroups[l.ID] = l
	r.UnitLines[l.ID] = l
}

// AddAmbientGroup registers an ambient group under its unit id.
func (r *Registry) AddAmbientGroup(l *Line) {
	r.AmbientGroups[l.ID] = l
}

// AddVariantGroup registers a variant group under its group id.
func (r *Registry) AddVariantGroup(l *Line) {
	r.VariantGroups[l.ID] = l
}

// AddTerrainGroup registers a terrain group under its terrain id.
func (r *Registry) AddTerrainGroup(g *TerrainGroup) {
	r.TerrainGroups[g.ID] = g
}

// AddCivGroup registers a civ group under its civ index.
func (r *Registry) AddCivGroup(g *CivGroup) {
	r.CivGroups[g.ID] = g
}

// SetUnitRef records which group owns a unit id.
func (r *Registry) SetUnitRef(unitID int, l *Line) {
	r.UnitRefs[unitID] = l
}

// AddTechGroup registers a classified tech. Every tech id keeps exactly
// one classification: the first one wins, except that an age upgrade
// replaces an earlier claim. The building line builder may classify an
// age tech as a building upgrade before the tech builder sees that it
// advances an age; the age reading is the authoritative one. Returns
// whether the group was registered.
func (r *Registry) AddTechGroup(tg *TechGroup) bool {
	if existing, ok := r.TechGroups[tg.TechID]; ok {
		if tg.Kind != TechAgeUpgrade || existing.Kind == TechAgeUpgrade {
			return false
		}
		delete(r.techMirror(existing.Kind), existing.TechID)
	}
	r.TechGroups[tg.TechID] = tg
	r.techMirror(tg.Kind)[tg.TechID] = tg
	return true
}

func (r *Registry) techMirror(kind TechKind) map[int]*TechGroup {
	switch kind {
	case TechAgeUpgrade:
		return r.AgeUpgrades
	case TechBuildingLineUpgrade:
		return r.BuildingUpgrades
	case TechBuildingUnlock:
		return r.BuildingUnlocks
	case TechStatUpgrade:
		return r.StatUpgrades
	case TechUnitUnlock:
		return r.UnitUnlocks
	case TechUnitLineUpgrade:
		return r.UnitUpgrades
	case TechInitiated:
		return r.InitiatedTechs
	}
	return r.CivBonuses
}

// SortedUnitLineIDs returns the unit line map keys ascending.
func (r *Registry) SortedUnitLineIDs() []int {
	return sortedKeys(r.UnitLines)
}

// SortedBuildingLineIDs returns the building line ids ascending.
func (r *Registry) SortedBuildingLineIDs() []int {
	return sortedKeys(r.BuildingLines)
}

// SortedVillagerGroupIDs returns the villager group ids ascending.
func (r *Registry) SortedVillagerGroupIDs() []int {
	return sortedKeys(r.VillagerGroups)
}

// SortedAmbientGroupIDs returns the ambient group unit ids ascending.
func (r *Registry) SortedAmbientGroupIDs() []int {
	return sortedKeys(r.AmbientGroups)
}

// SortedVariantGroupIDs returns the variant group ids ascending.
func (r *Registry) SortedVariantGroupIDs() []int {
	return sortedKeys(r.VariantGroups)
}

// SortedTerrainGroupIDs returns the terrain ids ascending.
func (r *Registry) SortedTerrainGroupIDs() []int {
	return sortedKeys(r.TerrainGroups)
}

// SortedCivGroupIDs returns the civ indices ascending.
func (r *Registry) SortedCivGroupIDs() []int {
	return sortedKeys(r.CivGroups)
}

// SortedTechGroupIDs returns the classified tech ids ascending.
func (r *Registry) SortedTechGroupIDs() []int {
	return sortedKeys(r.TechGroups)
}

// SortedAgeUpgradeIDs returns the age upgrade tech ids ascending.
func (r *Registry) SortedAgeUpgradeIDs() []int {
	return sortedKeys(r.AgeUpgrades)
}

// SortedCivBonusIDs returns the civ bonus tech ids ascending.
func (r *Registry) SortedCivBonusIDs() []int {
	return sortedKeys(r.CivBonuses)
}

// SortedUnitRefIDs returns the grouped unit ids ascending.
func (r *Registry) SortedUnitRefIDs() []int {
	return sortedKeys(r.UnitRefs)
}

// Counts aggregates the group totals of the registry.
func (r *Registry) Counts() Counts {
	return Counts{
		UnitLines:      len(r.UnitLines),
		BuildingLines:  len(r.BuildingLines),
		VillagerGroups: len(r.VillagerGroups),
		AmbientGroups:  len(r.AmbientGroups),
		VariantGroups:  len(r.VariantGroups),
		TerrainGroups:  len(r.TerrainGroups),
		TechGroups:     len(r.TechGroups),
		CivGroups:      len(r.CivGroups),
		UnitRefs:       len(r.UnitRefs),
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
