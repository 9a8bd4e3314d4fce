package graph

// CivGroup collects everything specific to one civilization: its passive
// bonuses, its unique unit and building lines, and its unique researchable
// techs.
type CivGroup struct {
	// ID is the civ table index.
	ID int
	// TechTreeID points at the tech bundle pruning the civ's tech tree.
	TechTreeID int
	// TeamBonusID points at the tech bundle applied to the whole team.
	TeamBonusID int

	// BonusTechs lists the civ bonus tech groups owned by this civ.
	BonusTechs []*TechGroup
	// UniqueLines lists the unit and building lines only this civ has.
	UniqueLines []*Line
	// UniqueTechs lists the researchable techs only this civ has.
	UniqueTechs []*TechGroup
}

// NewCivGroup creates an empty civ group.
func NewCivGroup(id, techTreeID, teamBonusID int) *CivGroup {
	return &CivGroup{
		ID:          id,
		TechTreeID:  techTreeID,
		TeamBonusID: teamBonusID,
	}
}

// AddBonusTech attaches a civ bonus. Duplicates are ignored.
func (c *CivGroup) AddBonusTech(tg *TechGroup) {
	for _, b := range c.BonusTechs {
		if b == tg {
			return
		}
	}
	c.BonusTechs = append(c.BonusTechs, tg)
}

// AddUniqueLine attaches a unique unit or building line. Duplicates are
// ignored.
func (c *CivGroup) AddUniqueLine(l *Line) {
	for _, u := range c.UniqueLines {
		if u == l {
			return
		}
	}
	c.UniqueLines = append(c.UniqueLines, l)
}

// AddUniqueTech attaches a unique researchable tech. Duplicates are
// ignored.
func (c *CivGroup) AddUniqueTech(tg *TechGroup) {
	for _, u := range c.UniqueTechs {
		if u == tg {
			return
		}
	}
	c.UniqueTechs = append(c.UniqueTechs, tg)
}
