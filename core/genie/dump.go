package genie

import "sort"

// Dump holds the flat record tables of one game database. Sources fill the
// exported slices and call Reindex; afterwards the tables are sorted
// ascending by ID and the lookup methods work.
type Dump struct {
	Units               []*Unit               `json:"units"`
	Techs               []*Tech               `json:"techs"`
	EffectBundles       []*EffectBundle       `json:"effect_bundles"`
	Civilizations       []*Civilization       `json:"civilizations"`
	Terrains            []*Terrain            `json:"terrains"`
	AgeConnections      []*AgeConnection      `json:"age_connections"`
	BuildingConnections []*BuildingConnection `json:"building_connections"`
	UnitConnections     []*UnitConnection     `json:"unit_connections"`
	TechConnections     []*TechConnection     `json:"tech_connections"`

	unitsByID         map[int]*Unit
	techsByID         map[int]*Tech
	bundlesByID       map[int]*EffectBundle
	civsByID          map[int]*Civilization
	terrainsByID      map[int]*Terrain
	ageConnsByID      map[int]*AgeConnection
	buildingConnsByID map[int]*BuildingConnection
	unitConnsByID     map[int]*UnitConnection
	techConnsByID     map[int]*TechConnection
}

// Reindex sorts every table ascending by ID and rebuilds the lookup maps.
// The processing passes iterate the slices directly, so the sort order is
// what makes their output deterministic.
func (d *Dump) Reindex() {
	sort.Slice(d.Units, func(i, j int) bool { return d.Units[i].ID < d.Units[j].ID })
	sort.Slice(d.Techs, func(i, j int) bool { return d.Techs[i].ID < d.Techs[j].ID })
	sort.Slice(d.EffectBundles, func(i, j int) bool { return d.EffectBundles[i].ID < d.EffectBundles[j].ID })
	sort.Slice(d.Civilizations, func(i, j int) bool { return d.Civilizations[i].ID < d.Civilizations[j].ID })
	sort.Slice(d.Terrains, func(i, j int) bool { return d.Terrains[i].ID < d.Terrains[j].ID })
	sort.Slice(d.AgeConnections, func(i, j int) bool { return d.AgeConnections[i].ID < d.AgeConnections[j].ID })
	sort.Slice(d.BuildingConnections, func(i, j int) bool { return d.BuildingConnections[i].ID < d.BuildingConnections[j].ID })
	sort.Slice(d.UnitConnections, func(i, j int) bool { return d.UnitConnections[i].ID < d.UnitConnections[j].ID })
	sort.Slice(d.TechConnections, func(i, j int) bool { return d.TechConnections[i].ID < d.TechConnections[j].ID })

	d.unitsByID = make(map[int]*Unit, len(d.Units))
	for _, u := range d.Units {
		d.unitsByID[u.ID] = u
	}
	d.techsByID = make(map[int]*Tech, len(d.Techs))
	for _, t := range d.Techs {
		d.techsByID[t.ID] = t
	}
	d.bundlesByID = make(map[int]*EffectBundle, len(d.EffectBundles))
	for _, b := range d.EffectBundles {
		d.bundlesByID[b.ID] = b
	}
	d.civsByID = make(map[int]*Civilization, len(d.Civilizations))
	for _, c := range d.Civilizations {
		d.civsByID[c.ID] = c
	}
	d.terrainsByID = make(map[int]*Terrain, len(d.Terrains))
	for _, t := range d.Terrains {
		d.terrainsByID[t.ID] = t
	}
	d.ageConnsByID = make(map[int]*AgeConnection, len(d.AgeConnections))
	for _, c := range d.AgeConnections {
		d.ageConnsByID[c.ID] = c
	}
	d.buildingConnsByID = make(map[int]*BuildingConnection, len(d.BuildingConnections))
	for _, c := range d.BuildingConnections {
		d.buildingConnsByID[c.ID] = c
	}
	d.unitConnsByID = make(map[int]*UnitConnection, len(d.UnitConnections))
	for _, c := range d.UnitConnections {
		d.unitConnsByID[c.ID] = c
	}
	d.techConnsByID = make(map[int]*TechConnection, len(d.TechConnections))
	for _, c := range d.TechConnections {
		d.techConnsByID[c.ID] = c
	}
}

// Unit looks up a unit record by id.
func (d *Dump) Unit(id int) (*Unit, bool) {
	u, ok := d.unitsByID[id]
	return u, ok
}

// Tech looks up a tech record by id.
func (d *Dump) Tech(id int) (*Tech, bool) {
	t, ok := d.techsByID[id]
	return t, ok
}

// EffectBundle looks up an effect bundle by id.
func (d *Dump) EffectBundle(id int) (*EffectBundle, bool) {
	b, ok := d.bundlesByID[id]
	return b, ok
}

// Civilization looks up a civ record by id (the table index).
func (d *Dump) Civilization(id int) (*Civilization, bool) {
	c, ok := d.civsByID[id]
	return c, ok
}

// Terrain looks up a terrain record by id.
func (d *Dump) Terrain(id int) (*Terrain, bool) {
	t, ok := d.terrainsByID[id]
	return t, ok
}

// AgeConnection looks up an age connection by age id.
func (d *Dump) AgeConnection(id int) (*AgeConnection, bool) {
	c, ok := d.ageConnsByID[id]
	return c, ok
}

// BuildingConnection looks up a building connection by building id.
func (d *Dump) BuildingConnection(id int) (*BuildingConnection, bool) {
	c, ok := d.buildingConnsByID[id]
	return c, ok
}

// UnitConnection looks up a unit connection by unit id.
func (d *Dump) UnitConnection(id int) (*UnitConnection, bool) {
	c, ok := d.unitConnsByID[id]
	return c, ok
}

// TechConnection looks up a tech connection by tech id.
func (d *Dump) TechConnection(id int) (*TechConnection, bool) {
	c, ok := d.techConnsByID[id]
	return c, ok
}
