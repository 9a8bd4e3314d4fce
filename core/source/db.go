package source

import (
	"context"
	"fmt"

	"genie-graph/core/genie"

	"gorm.io/gorm"
)

// DatabaseSource reads a dump from the genie_* tables of a relational
// snapshot. Tables are loaded in id order so the assembled dump matches
// a file dump of the same data.
type DatabaseSource struct {
	DB *gorm.DB
}

// Name implements DumpSource.
func (s *DatabaseSource) Name() string {
	return "database:genie"
}

// Load implements DumpSource.
func (s *DatabaseSource) Load(ctx context.Context) (*genie.Dump, error) {
	dump := &genie.Dump{}

	var unitRows []UnitRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&unitRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_units: %w", err)
	}
	for _, row := range unitRows {
		unit, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		dump.Units = append(dump.Units, unit)
	}

	var techRows []TechRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&techRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_techs: %w", err)
	}
	for _, row := range techRows {
		dump.Techs = append(dump.Techs, row.ToRecord())
	}

	var bundleRows []EffectBundleRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&bundleRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_effect_bundles: %w", err)
	}
	for _, row := range bundleRows {
		bundle, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		dump.EffectBundles = append(dump.EffectBundles, bundle)
	}

	var civRows []CivilizationRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&civRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_civilizations: %w", err)
	}
	for _, row := range civRows {
		civ, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		dump.Civilizations = append(dump.Civilizations, civ)
	}

	var terrainRows []TerrainRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&terrainRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_terrains: %w", err)
	}
	for _, row := range terrainRows {
		dump.Terrains = append(dump.Terrains, row.ToRecord())
	}

	var ageRows []AgeConnectionRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&ageRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_age_connections: %w", err)
	}
	for _, row := range ageRows {
		conn, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		dump.AgeConnections = append(dump.AgeConnections, conn)
	}

	var buildingRows []BuildingConnectionRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&buildingRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_building_connections: %w", err)
	}
	for _, row := range buildingRows {
		conn, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		dump.BuildingConnections = append(dump.BuildingConnections, conn)
	}

	var unitConnRows []UnitConnectionRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&unitConnRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_unit_connections: %w", err)
	}
	for _, row := range unitConnRows {
		conn, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		dump.UnitConnections = append(dump.UnitConnections, conn)
	}

	var techConnRows []TechConnectionRow
	if err := s.DB.WithContext(ctx).Order("id").Find(&techConnRows).Error; err != nil {
		return nil, fmt.Errorf("failed to load genie_tech_connections: %w", err)
	}
	for _, row := range techConnRows {
		conn, err := row.ToRecord()
		if err != nil {
			return nil, err
		}
		dump.TechConnections = append(dump.TechConnections, conn)
	}

	dump.Reindex()
	return dump, nil
}
