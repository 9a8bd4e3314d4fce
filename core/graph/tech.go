package graph

// TechKind classifies what a researched tech does to the graph.
type TechKind int

const (
	// TechAgeUpgrade advances the player to a new age.
	TechAgeUpgrade TechKind = iota
	// TechBuildingLineUpgrade replaces a building with its next stage.
	TechBuildingLineUpgrade
	// TechBuildingUnlock makes a building available.
	TechBuildingUnlock
	// TechStatUpgrade changes attributes without unlocking anything.
	TechStatUpgrade
	// TechUnitUnlock makes a unit line available.
	TechUnitUnlock
	// TechUnitLineUpgrade replaces a unit with its next line member.
	TechUnitLineUpgrade
	// TechInitiated is researched automatically by a building.
	TechInitiated
	// TechCivBonus is a passive bonus owned by one civilization.
	TechCivBonus
)

// String returns the snake_case kind name used in snapshots and payloads.
func (k TechKind) String() string {
	switch k {
	case TechAgeUpgrade:
		return "age_upgrade"
	case TechBuildingLineUpgrade:
		return "building_line_upgrade"
	case TechBuildingUnlock:
		return "building_unlock"
	case TechStatUpgrade:
		return "stat_upgrade"
	case TechUnitUnlock:
		return "unit_unlock"
	case TechUnitLineUpgrade:
		return "unit_line_upgrade"
	case TechInitiated:
		return "initiated_tech"
	case TechCivBonus:
		return "civ_bonus"
	}
	return "unknown"
}

// TechGroup is one classified tech. Every tech id appears in at most one
// group; the Registry enforces that.
type TechGroup struct {
	TechID int
	Kind   TechKind

	// AgeID is the age an age upgrade advances to.
	AgeID int
	// LineID is the line a (line-scoped) upgrade or unlock applies to.
	LineID int
	// TargetID is the entity an upgrade replaces the predecessor with,
	// or the entity an unlock makes available.
	TargetID int
	// CivID is the owning civilization of a civ bonus.
	CivID int
	// InitiatorID is the building that researches an initiated tech.
	InitiatorID int

	// ResearchedAt points to the building line the tech is researched at.
	ResearchedAt *Line
}

// NewAgeUpgrade creates a tech group advancing to the given age.
func NewAgeUpgrade(techID, ageID int) *TechGroup {
	tg := newTechGroup(techID, TechAgeUpgrade)
	tg.AgeID = ageID
	return tg
}

// NewBuildingLineUpgrade creates a tech group replacing a member of the
// building line with the target building.
func NewBuildingLineUpgrade(techID, lineID, targetID int) *TechGroup {
	tg := newTechGroup(techID, TechBuildingLineUpgrade)
	tg.LineID = lineID
	tg.TargetID = targetID
	return tg
}

// NewBuildingUnlock creates a tech group making a building available.
func NewBuildingUnlock(techID, buildingID int) *TechGroup {
	tg := newTechGroup(techID, TechBuildingUnlock)
	tg.TargetID = buildingID
	return tg
}

// NewStatUpgrade creates a tech group that only changes attributes.
func NewStatUpgrade(techID int) *TechGroup {
	return newTechGroup(techID, TechStatUpgrade)
}

// NewUnitUnlock creates a tech group making a unit line available.
func NewUnitUnlock(techID, lineID int) *TechGroup {
	tg := newTechGroup(techID, TechUnitUnlock)
	tg.LineID = lineID
	return tg
}

// NewUnitLineUpgrade creates a tech group replacing a member of the unit
// line with the target unit.
func NewUnitLineUpgrade(techID, lineID, targetID int) *TechGroup {
	tg := newTechGroup(techID, TechUnitLineUpgrade)
	tg.LineID = lineID
	tg.TargetID = targetID
	return tg
}

// NewInitiatedTech creates a tech group researched by a building itself.
func NewInitiatedTech(techID, initiatorID int) *TechGroup {
	tg := newTechGroup(techID, TechInitiated)
	tg.InitiatorID = initiatorID
	return tg
}

// NewCivBonus creates a passive bonus tech group owned by a civilization.
func NewCivBonus(techID, civID int) *TechGroup {
	tg := newTechGroup(techID, TechCivBonus)
	tg.CivID = civID
	return tg
}

func newTechGroup(techID int, kind TechKind) *TechGroup {
	return &TechGroup{
		TechID:      techID,
		Kind:        kind,
		AgeID:       -1,
		LineID:      -1,
		TargetID:    -1,
		CivID:       -1,
		InitiatorID: -1,
	}
}
