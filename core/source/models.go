package source

import (
	"encoding/json"
	"fmt"

	"genie-graph/core/genie"
)

// Row types mapping the genie_* tables. List-valued record fields
// (commands, effects, refs) are stored as JSON text columns and decoded
// by ToRecord.

type UnitRow struct {
	ID               int    `gorm:"primaryKey;column:id"`
	Name             string `gorm:"column:name;type:varchar(100)"`
	Class            int    `gorm:"column:class;default:-1"`
	TrainLocationID  int    `gorm:"column:train_location_id;default:-1"`
	CreatableType    int    `gorm:"column:creatable_type;default:0"`
	Trait            int    `gorm:"column:trait;default:0"`
	TransformUnitID  int    `gorm:"column:transform_unit_id;default:-1"`
	TaskGroup        int    `gorm:"column:task_group;default:0"`
	StackUnitID      int    `gorm:"column:stack_unit_id;default:-1"`
	HeadUnitID       int    `gorm:"column:head_unit_id;default:-1"`
	DropSite0        int    `gorm:"column:drop_site0;default:-1"`
	DropSite1        int    `gorm:"column:drop_site1;default:-1"`
	GarrisonType     int    `gorm:"column:garrison_type;default:0"`
	GarrisonCapacity int    `gorm:"column:garrison_capacity;default:0"`
	ResearchID       int    `gorm:"column:research_id;default:-1"`
	Commands         string `gorm:"column:commands;type:text"`
}

func (UnitRow) TableName() string {
	return "genie_units"
}

func (r UnitRow) ToRecord() (*genie.Unit, error) {
	u := &genie.Unit{
		ID:               r.ID,
		Name:             r.Name,
		Class:            r.Class,
		TrainLocationID:  r.TrainLocationID,
		CreatableType:    r.CreatableType,
		Trait:            r.Trait,
		TransformUnitID:  r.TransformUnitID,
		TaskGroup:        r.TaskGroup,
		StackUnitID:      r.StackUnitID,
		HeadUnitID:       r.HeadUnitID,
		DropSite0:        r.DropSite0,
		DropSite1:        r.DropSite1,
		GarrisonType:     r.GarrisonType,
		GarrisonCapacity: r.GarrisonCapacity,
		ResearchID:       r.ResearchID,
	}
	if r.Commands != "" {
		if err := json.Unmarshal([]byte(r.Commands), &u.Commands); err != nil {
			return nil, fmt.Errorf("unit %d: failed to parse commands: %w", r.ID, err)
		}
	}
	return u, nil
}

type TechRow struct {
	ID                 int    `gorm:"primaryKey;column:id"`
	Name               string `gorm:"column:name;type:varchar(100)"`
	EffectBundleID     int    `gorm:"column:tech_effect_id;default:-1"`
	ResearchLocationID int    `gorm:"column:research_location_id;default:-1"`
	CivilizationID     int    `gorm:"column:civilization_id;default:-1"`
	FullTechMode       bool   `gorm:"column:full_tech_mode;type:tinyint(1);default:0"`
	TechType           int    `gorm:"column:tech_type;default:0"`
}

func (TechRow) TableName() string {
	return "genie_techs"
}

func (r TechRow) ToRecord() *genie.Tech {
	return &genie.Tech{
		ID:                 r.ID,
		Name:               r.Name,
		EffectBundleID:     r.EffectBundleID,
		ResearchLocationID: r.ResearchLocationID,
		CivilizationID:     r.CivilizationID,
		FullTechMode:       r.FullTechMode,
		TechType:           r.TechType,
	}
}

type EffectBundleRow struct {
	ID      int    `gorm:"primaryKey;column:id"`
	Effects string `gorm:"column:effects;type:text"`
}

func (EffectBundleRow) TableName() string {
	return "genie_effect_bundles"
}

func (r EffectBundleRow) ToRecord() (*genie.EffectBundle, error) {
	b := &genie.EffectBundle{ID: r.ID}
	if r.Effects != "" {
		if err := json.Unmarshal([]byte(r.Effects), &b.Effects); err != nil {
			return nil, fmt.Errorf("effect bundle %d: failed to parse effects: %w", r.ID, err)
		}
	}
	return b, nil
}

type CivilizationRow struct {
	ID          int    `gorm:"primaryKey;column:id"`
	Name        string `gorm:"column:name;type:varchar(100)"`
	TechTreeID  int    `gorm:"column:tech_tree_id;default:-1"`
	TeamBonusID int    `gorm:"column:team_bonus_id;default:-1"`
	UnitIDs     string `gorm:"column:unit_ids;type:text"`
}

func (CivilizationRow) TableName() string {
	return "genie_civilizations"
}

func (r CivilizationRow) ToRecord() (*genie.Civilization, error) {
	c := &genie.Civilization{
		ID:          r.ID,
		Name:        r.Name,
		TechTreeID:  r.TechTreeID,
		TeamBonusID: r.TeamBonusID,
	}
	if r.UnitIDs != "" {
		if err := json.Unmarshal([]byte(r.UnitIDs), &c.UnitIDs); err != nil {
			return nil, fmt.Errorf("civilization %d: failed to parse unit ids: %w", r.ID, err)
		}
	}
	return c, nil
}

type TerrainRow struct {
	ID      int    `gorm:"primaryKey;column:id"`
	Name    string `gorm:"column:name;type:varchar(100)"`
	Enabled bool   `gorm:"column:enabled;type:tinyint(1);default:0"`
}

func (TerrainRow) TableName() string {
	return "genie_terrains"
}

func (r TerrainRow) ToRecord() *genie.Terrain {
	return &genie.Terrain{ID: r.ID, Name: r.Name, Enabled: r.Enabled}
}

type AgeConnectionRow struct {
	ID   int    `gorm:"primaryKey;column:id"`
	Refs string `gorm:"column:refs;type:text"`
}

func (AgeConnectionRow) TableName() string {
	return "genie_age_connections"
}

func (r AgeConnectionRow) ToRecord() (*genie.AgeConnection, error) {
	c := &genie.AgeConnection{ID: r.ID}
	if err := decodeRefs(r.Refs, &c.Refs); err != nil {
		return nil, fmt.Errorf("age connection %d: %w", r.ID, err)
	}
	return c, nil
}

type BuildingConnectionRow struct {
	ID                 int    `gorm:"primaryKey;column:id"`
	LineMode           int    `gorm:"column:line_mode;default:0"`
	EnablingResearchID int    `gorm:"column:enabling_research;default:-1"`
	Refs               string `gorm:"column:refs;type:text"`
}

func (BuildingConnectionRow) TableName() string {
	return "genie_building_connections"
}

func (r BuildingConnectionRow) ToRecord() (*genie.BuildingConnection, error) {
	c := &genie.BuildingConnection{
		ID:                 r.ID,
		LineMode:           r.LineMode,
		EnablingResearchID: r.EnablingResearchID,
	}
	if err := decodeRefs(r.Refs, &c.Refs); err != nil {
		return nil, fmt.Errorf("building connection %d: %w", r.ID, err)
	}
	return c, nil
}

type UnitConnectionRow struct {
	ID                 int    `gorm:"primaryKey;column:id"`
	VerticalLineID     int    `gorm:"column:vertical_line;default:-1"`
	LineMode           int    `gorm:"column:line_mode;default:0"`
	RequiredResearchID int    `gorm:"column:required_research;default:-1"`
	EnablingResearchID int    `gorm:"column:enabling_research;default:-1"`
	Refs               string `gorm:"column:refs;type:text"`
}

func (UnitConnectionRow) TableName() string {
	return "genie_unit_connections"
}

func (r UnitConnectionRow) ToRecord() (*genie.UnitConnection, error) {
	c := &genie.UnitConnection{
		ID:                 r.ID,
		VerticalLineID:     r.VerticalLineID,
		LineMode:           r.LineMode,
		RequiredResearchID: r.RequiredResearchID,
		EnablingResearchID: r.EnablingResearchID,
	}
	if err := decodeRefs(r.Refs, &c.Refs); err != nil {
		return nil, fmt.Errorf("unit connection %d: %w", r.ID, err)
	}
	return c, nil
}

type TechConnectionRow struct {
	ID          int    `gorm:"primaryKey;column:id"`
	LineMode    int    `gorm:"column:line_mode;default:0"`
	BuildingIDs string `gorm:"column:buildings;type:text"`
	Refs        string `gorm:"column:refs;type:text"`
}

func (TechConnectionRow) TableName() string {
	return "genie_tech_connections"
}

func (r TechConnectionRow) ToRecord() (*genie.TechConnection, error) {
	c := &genie.TechConnection{ID: r.ID, LineMode: r.LineMode}
	if r.BuildingIDs != "" {
		if err := json.Unmarshal([]byte(r.BuildingIDs), &c.BuildingIDs); err != nil {
			return nil, fmt.Errorf("tech connection %d: failed to parse buildings: %w", r.ID, err)
		}
	}
	if err := decodeRefs(r.Refs, &c.Refs); err != nil {
		return nil, fmt.Errorf("tech connection %d: %w", r.ID, err)
	}
	return c, nil
}

// decodeRefs parses a JSON refs column. Empty columns mean no refs.
func decodeRefs(raw string, refs *[]genie.Ref) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), refs); err != nil {
		return fmt.Errorf("failed to parse refs: %w", err)
	}
	return nil
}
