package genie

// Effect type ids used during graph building. The .dat format knows many
// more, but only these influence grouping and linking.
const (
	// EffectTypeUnlock enables a unit or building (attr_a = entity id).
	EffectTypeUnlock = 2
	// EffectTypeUpgrade replaces attr_a with attr_b in a line.
	EffectTypeUpgrade = 3
	// EffectTypeDisableTech disables the tech stored in attr_d.
	EffectTypeDisableTech = 102
)

// Command type ids relevant for linking.
const (
	// CommandTypeGather lets a unit gather a resource and carry it to a dropsite.
	CommandTypeGather = 5
	// CommandTypeHunt is the hunting variant of gathering.
	CommandTypeHunt = 110
	// CommandTypeTrade generates gold at a trade post building.
	CommandTypeTrade = 111
)

// TechTypeAge marks a tech record as an age advancement.
const TechTypeAge = 2

// Resource ids of the four stockpiled resources.
const (
	ResourceFood  = 0
	ResourceWood  = 1
	ResourceStone = 2
	ResourceGold  = 3
)

// Creatable type categories of units. The garrison rules gate on these.
const (
	CreatableTypeVillager = 1
	CreatableTypeInfantry = 2
	CreatableTypeCavalry  = 3
	CreatableTypeRelic    = 4
	CreatableTypeMonk     = 6
)

// Garrison type bitmask flags. A building's garrison_type field declares
// which creatable categories it naturally accepts.
const (
	GarrisonVillagers = 0x01
	GarrisonInfantry  = 0x02
	GarrisonCavalry   = 0x04
	GarrisonMonks     = 0x08
)

// TraitShip marks water units. Ships follow special garrison rules.
const TraitShip = 0x02

// Well-known entity ids of the AoC database. The graph builder special-cases
// these records because the connection tables encode them inconsistently.
const (
	// MonkLineID is the vertical line id shared by all monk variants.
	MonkLineID = 65
	// MonkWithRelicID is the switch unit a monk becomes when carrying a relic.
	MonkWithRelicID = 286
	// VillagerGroupID identifies the combined villager group.
	VillagerGroupID = 118
	// MaleVillagerLineID is the line id assigned to the male task units.
	MaleVillagerLineID = 83
	// FemaleVillagerLineID is the line id assigned to the female task units.
	FemaleVillagerLineID = 293
)

// Task group ids found on villager units.
const (
	TaskGroupMale   = 1
	TaskGroupFemale = 2
)

// IsSiegeClass reports whether a unit class is a siege weapon class.
// Siege weapons and trebuchets cannot enter garrisons even when the
// .dat file claims otherwise.
func IsSiegeClass(classID int) bool {
	switch classID {
	case 13, 51, 54, 55:
		return true
	}
	return false
}

// Command is one entry of a unit's command (task) list.
type Command struct {
	Type        int `json:"type"`
	UnitID      int `json:"unit_id"`
	ResourceIn  int `json:"resource_in"`
	ResourceOut int `json:"resource_out"`
}

// Unit is one row of the unit table. Buildings are units too; the
// building-only fields (stack_unit_id, head_unit_id) stay -1 on mobile
// units and vice versa.
type Unit struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Class int    `json:"class"`

	TrainLocationID  int `json:"train_location_id"`
	CreatableType    int `json:"creatable_type"`
	Trait            int `json:"trait"`
	TransformUnitID  int `json:"transform_unit_id"`
	TaskGroup        int `json:"task_group"`
	StackUnitID      int `json:"stack_unit_id"`
	HeadUnitID       int `json:"head_unit_id"`
	DropSite0        int `json:"drop_site0"`
	DropSite1        int `json:"drop_site1"`
	GarrisonType     int `json:"garrison_type"`
	GarrisonCapacity int `json:"garrison_capacity"`
	ResearchID       int `json:"research_id"`

	// Commands comes from the unit header table, merged in by the source.
	Commands []Command `json:"commands,omitempty"`
}

// IsCreatable reports whether the unit can be trained or built somewhere.
func (u *Unit) IsCreatable() bool {
	return u.TrainLocationID > -1
}

// HasCommand reports whether the unit's command list contains the type.
func (u *Unit) HasCommand(cmdType int) bool {
	for _, cmd := range u.Commands {
		if cmd.Type == cmdType {
			return true
		}
	}
	return false
}

// FirstCommand returns the first command of the given type.
func (u *Unit) FirstCommand(cmdType int) (Command, bool) {
	for _, cmd := range u.Commands {
		if cmd.Type == cmdType {
			return cmd, true
		}
	}
	return Command{}, false
}

// Tech is one row of the research table.
type Tech struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	EffectBundleID     int  `json:"tech_effect_id"`
	ResearchLocationID int  `json:"research_location_id"`
	CivilizationID     int  `json:"civilization_id"`
	FullTechMode       bool `json:"full_tech_mode"`
	TechType           int  `json:"tech_type"`
}

// IsResearchable reports whether the tech is researched at a building.
// Passive bonuses and age-linked techs have no research location.
func (t *Tech) IsResearchable() bool {
	return t.ResearchLocationID > 0
}

// Effect is a single entry of an effect bundle. The attribute slots are
// interpreted per effect type; attr_d is a float in the .dat format even
// when it carries an id.
type Effect struct {
	TypeID int     `json:"type_id"`
	A      int     `json:"attr_a"`
	B      int     `json:"attr_b"`
	C      int     `json:"attr_c"`
	D      float64 `json:"attr_d"`
}

// EffectBundle is an ordered list of effects triggered by one tech.
type EffectBundle struct {
	ID      int      `json:"id"`
	Effects []Effect `json:"effects"`

	// Sanitized is set once the sanitizer pass has pruned garbage
	// entries. Consumers may then assume every effect has a valid type.
	Sanitized bool `json:"sanitized,omitempty"`
}

// EffectsOfType returns the bundle's effects with the given type id,
// preserving bundle order.
func (b *EffectBundle) EffectsOfType(typeID int) []Effect {
	var out []Effect
	for _, e := range b.Effects {
		if e.TypeID == typeID {
			out = append(out, e)
		}
	}
	return out
}

// Civilization is one row of the civ table. The index doubles as the id.
type Civilization struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	TechTreeID  int    `json:"tech_tree_id"`
	TeamBonusID int    `json:"team_bonus_id"`

	// UnitIDs lists the units that exist for this civ.
	UnitIDs []int `json:"unit_ids,omitempty"`
}

// Terrain is one row of the terrain table.
type Terrain struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
