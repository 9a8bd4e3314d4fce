package graph

import (
	"encoding/json"
	"sort"
)

// GroupRef is a serialized cross-group reference. Ids alone are ambiguous
// because unit line ids and building ids overlap, so every reference
// carries its domain.
type GroupRef struct {
	Domain string `json:"domain"`
	ID     int    `json:"id"`
}

// Counts aggregates group totals per kind.
type Counts struct {
	UnitLines      int `json:"unit_lines"`
	BuildingLines  int `json:"building_lines"`
	VillagerGroups int `json:"villager_groups"`
	AmbientGroups  int `json:"ambient_groups"`
	VariantGroups  int `json:"variant_groups"`
	TerrainGroups  int `json:"terrain_groups"`
	TechGroups     int `json:"tech_groups"`
	CivGroups      int `json:"civ_groups"`
	UnitRefs       int `json:"unit_refs"`
}

// LineSnapshot is the serialized form of a Line.
type LineSnapshot struct {
	LineID            int        `json:"line_id"`
	Kind              string     `json:"kind"`
	HeadUnitID        int        `json:"head_unit_id"`
	UnitIDs           []int      `json:"unit_ids"`
	TransformTargetID int        `json:"transform_target_id"`
	SwitchUnitID      int        `json:"switch_unit_id"`
	StackUnitID       int        `json:"stack_unit_id"`
	TaskLineIDs       []int      `json:"task_line_ids,omitempty"`
	GarrisonMode      string     `json:"garrison_mode"`
	CreatedAt         *GroupRef  `json:"created_at,omitempty"`
	Creatables        []GroupRef `json:"creatables,omitempty"`
	ResearchableIDs   []int      `json:"researchables,omitempty"`
	AcceptedResources []int      `json:"accepted_resources,omitempty"`
	TradePosts        []GroupRef `json:"trade_posts,omitempty"`
	TradePartners     []GroupRef `json:"trade_partners,omitempty"`
	GarrisonLocations []GroupRef `json:"garrison_locations,omitempty"`
	GarrisonEntities  []GroupRef `json:"garrison_entities,omitempty"`
}

// TechSnapshot is the serialized form of a TechGroup.
type TechSnapshot struct {
	TechID       int       `json:"tech_id"`
	Kind         string    `json:"kind"`
	AgeID        int       `json:"age_id"`
	LineID       int       `json:"line_id"`
	TargetID     int       `json:"target_id"`
	CivID        int       `json:"civ_id"`
	InitiatorID  int       `json:"initiator_id"`
	ResearchedAt *GroupRef `json:"researched_at,omitempty"`
}

// CivSnapshot is the serialized form of a CivGroup.
type CivSnapshot struct {
	CivID         int        `json:"civ_id"`
	TechTreeID    int        `json:"tech_tree_id"`
	TeamBonusID   int        `json:"team_bonus_id"`
	BonusTechIDs  []int      `json:"bonus_techs,omitempty"`
	UniqueLines   []GroupRef `json:"unique_lines,omitempty"`
	UniqueTechIDs []int      `json:"unique_techs,omitempty"`
}

// TerrainSnapshot is the serialized form of a TerrainGroup.
type TerrainSnapshot struct {
	TerrainID int    `json:"terrain_id"`
	Name      string `json:"name,omitempty"`
}

// Snapshot is the stable serialized form of a whole registry. Building it
// twice from the same registry yields identical documents; every section
// and every reference list is sorted.
type Snapshot struct {
	RunID  string `json:"run_id,omitempty"`
	Source string `json:"source,omitempty"`
	Counts Counts `json:"counts"`

	UnitLines     []LineSnapshot    `json:"unit_lines"`
	BuildingLines []LineSnapshot    `json:"building_lines"`
	AmbientGroups []LineSnapshot    `json:"ambient_groups"`
	VariantGroups []LineSnapshot    `json:"variant_groups"`
	TechGroups    []TechSnapshot    `json:"tech_groups"`
	CivGroups     []CivSnapshot     `json:"civ_groups"`
	TerrainGroups []TerrainSnapshot `json:"terrain_groups"`
}

// BuildSnapshot serializes the registry into its stable document form.
func BuildSnapshot(r *Registry) *Snapshot {
	s := &Snapshot{Counts: r.Counts()}

	for _, id := range r.SortedUnitLineIDs() {
		s.UnitLines = append(s.UnitLines, r.UnitLines[id].Snapshot())
	}
	for _, id := range r.SortedBuildingLineIDs() {
		s.BuildingLines = append(s.BuildingLines, r.BuildingLines[id].Snapshot())
	}
	for _, id := range r.SortedAmbientGroupIDs() {
		s.AmbientGroups = append(s.AmbientGroups, r.AmbientGroups[id].Snapshot())
	}
	for _, id := range r.SortedVariantGroupIDs() {
		s.VariantGroups = append(s.VariantGroups, r.VariantGroups[id].Snapshot())
	}
	for _, id := range r.SortedTechGroupIDs() {
		s.TechGroups = append(s.TechGroups, r.TechGroups[id].Snapshot())
	}
	for _, id := range r.SortedCivGroupIDs() {
		s.CivGroups = append(s.CivGroups, r.CivGroups[id].Snapshot())
	}
	for _, id := range r.SortedTerrainGroupIDs() {
		s.TerrainGroups = append(s.TerrainGroups, r.TerrainGroups[id].Snapshot())
	}

	return s
}

// Encode renders the snapshot as indented JSON.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Snapshot serializes a single line.
func (l *Line) Snapshot() LineSnapshot {
	ls := LineSnapshot{
		LineID:            l.ID,
		Kind:              l.Kind.String(),
		HeadUnitID:        l.HeadUnitID(),
		UnitIDs:           l.UnitIDs(),
		TransformTargetID: l.TransformTargetID,
		SwitchUnitID:      l.SwitchUnitID,
		StackUnitID:       l.StackUnitID,
		GarrisonMode:      l.GarrisonMode().String(),
		Creatables:        groupRefs(l.Creatables),
		ResearchableIDs:   techIDs(l.Researchables),
		AcceptedResources: sortedInts(l.AcceptedResources),
		TradePosts:        groupRefs(l.TradePosts),
		TradePartners:     groupRefs(l.TradePartners),
		GarrisonLocations: groupRefs(l.GarrisonLocations),
		GarrisonEntities:  groupRefs(l.GarrisonEntities),
	}
	if l.CreatedAt != nil {
		ref := l.CreatedAt.Ref()
		ls.CreatedAt = &ref
	}
	for _, task := range l.TaskLines {
		ls.TaskLineIDs = append(ls.TaskLineIDs, task.ID)
	}
	sort.Ints(ls.TaskLineIDs)
	return ls
}

// Snapshot serializes a single tech group.
func (tg *TechGroup) Snapshot() TechSnapshot {
	ts := TechSnapshot{
		TechID:      tg.TechID,
		Kind:        tg.Kind.String(),
		AgeID:       tg.AgeID,
		LineID:      tg.LineID,
		TargetID:    tg.TargetID,
		CivID:       tg.CivID,
		InitiatorID: tg.InitiatorID,
	}
	if tg.ResearchedAt != nil {
		ref := tg.ResearchedAt.Ref()
		ts.ResearchedAt = &ref
	}
	return ts
}

// Snapshot serializes a single civ group.
func (c *CivGroup) Snapshot() CivSnapshot {
	return CivSnapshot{
		CivID:         c.ID,
		TechTreeID:    c.TechTreeID,
		TeamBonusID:   c.TeamBonusID,
		BonusTechIDs:  techIDs(c.BonusTechs),
		UniqueLines:   groupRefs(c.UniqueLines),
		UniqueTechIDs: techIDs(c.UniqueTechs),
	}
}

// Snapshot serializes a single terrain group.
func (g *TerrainGroup) Snapshot() TerrainSnapshot {
	ts := TerrainSnapshot{TerrainID: g.ID}
	if g.Terrain != nil {
		ts.Name = g.Terrain.Name
	}
	return ts
}

func groupRefs(lines []*Line) []GroupRef {
	if len(lines) == 0 {
		return nil
	}
	out := make([]GroupRef, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Ref())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Domain != out[j].Domain {
			return out[i].Domain < out[j].Domain
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func techIDs(groups []*TechGroup) []int {
	if len(groups) == 0 {
		return nil
	}
	out := make([]int, 0, len(groups))
	for _, tg := range groups {
		out = append(out, tg.TechID)
	}
	sort.Ints(out)
	return out
}

func sortedInts(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	copy(out, in)
	sort.Ints(out)
	return out
}
