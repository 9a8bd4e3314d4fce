package graph

import "genie-graph/core/genie"

// LineKind tells what flavor of entity group a Line is.
type LineKind int

const (
	// LineUnit is a plain upgrade chain of mobile units.
	LineUnit LineKind = iota
	// LineTransform is a unit line whose head deploys into another unit.
	LineTransform
	// LineMonk is the monk line with its relic-carrying switch unit.
	LineMonk
	// LineVillager is the combined villager group spanning task lines.
	LineVillager
	// LineTask is one gender's worth of villager task units.
	LineTask
	// LineBuilding is an upgrade chain of buildings.
	LineBuilding
	// LineStackBuilding is a building line with a stacked overlay unit.
	LineStackBuilding
	// LineAmbient is a single scenery or resource object.
	LineAmbient
	// LineVariant is a set of cosmetic variations of one object.
	LineVariant
)

// String returns the snake_case kind name used in snapshots and payloads.
func (k LineKind) String() string {
	switch k {
	case LineUnit:
		return "unit_line"
	case LineTransform:
		return "transform_line"
	case LineMonk:
		return "monk_line"
	case LineVillager:
		return "villager_group"
	case LineTask:
		return "task_line"
	case LineBuilding:
		return "building_line"
	case LineStackBuilding:
		return "stack_building_line"
	case LineAmbient:
		return "ambient_group"
	case LineVariant:
		return "variant_group"
	}
	return "unknown"
}

// Domain returns the id namespace the line belongs to. Unit line ids and
// building ids overlap numerically, so serialized references carry the
// domain next to the id.
func (k LineKind) Domain() string {
	switch k {
	case LineBuilding, LineStackBuilding:
		return "building"
	case LineVillager:
		return "villager"
	case LineTask:
		return "task"
	case LineAmbient:
		return "ambient"
	case LineVariant:
		return "variant"
	}
	return "unit"
}

// GarrisonMode classifies how a group holds other entities.
type GarrisonMode int

const (
	// GarrisonNone means the group cannot hold anything.
	GarrisonNone GarrisonMode = iota
	// GarrisonNatural accepts the categories declared by the garrison bitmask.
	GarrisonNatural
	// GarrisonUnitGarrison is a mobile unit carrying foot units.
	GarrisonUnitGarrison
	// GarrisonSelfProduced accepts only what the building itself creates.
	GarrisonSelfProduced
	// GarrisonMonk carries relics.
	GarrisonMonk
)

// String returns the snake_case mode name.
func (m GarrisonMode) String() string {
	switch m {
	case GarrisonNatural:
		return "natural"
	case GarrisonUnitGarrison:
		return "unit_garrison"
	case GarrisonSelfProduced:
		return "self_produced"
	case GarrisonMonk:
		return "monk"
	}
	return "none"
}

// Line is an ordered chain of unit records, head first. Later members
// replace earlier ones through upgrades.
type Line struct {
	// ID is the line id. For unit lines this is the vertical line id of
	// the connection table, for building lines the head building id, for
	// scenery groups the defining unit id.
	ID   int
	Kind LineKind

	units []*genie.Unit

	// TransformTargetID is the unit a transform line head deploys into.
	TransformTargetID int
	// SwitchUnitID is the relic-carrying variant of a monk line.
	SwitchUnitID int
	// StackUnitID is the overlay unit of a stack building line.
	StackUnitID int
	// TaskGroupID is the task group a task line was built from.
	TaskGroupID int
	// TaskLines holds the task lines of a villager group in task group order.
	TaskLines []*Line

	// CreatedAt points to the group that trains or builds this line.
	CreatedAt *Line
	// Creatables lists the lines trained or built at this line.
	Creatables []*Line
	// Researchables lists the tech groups researched at this building line.
	Researchables []*TechGroup
	// AcceptedResources lists resource ids this building is a dropsite for.
	AcceptedResources []int
	// TradePosts lists the buildings this line can trade with.
	TradePosts []*Line
	// TradePartners lists the unit lines trading at this building.
	TradePartners []*Line
	// GarrisonLocations lists the groups this line can garrison in.
	GarrisonLocations []*Line
	// GarrisonEntities lists the groups that can garrison in this line.
	GarrisonEntities []*Line
}

// NewUnitLine creates an empty unit line.
func NewUnitLine(lineID int) *Line {
	return newLine(lineID, LineUnit)
}

// NewTransformLine creates a unit line whose head deploys into targetID.
func NewTransformLine(lineID, targetID int) *Line {
	l := newLine(lineID, LineTransform)
	l.TransformTargetID = targetID
	return l
}

// NewMonkLine creates the monk line with its relic switch unit.
func NewMonkLine(lineID, switchUnitID int) *Line {
	l := newLine(lineID, LineMonk)
	l.SwitchUnitID = switchUnitID
	return l
}

// NewTaskLine creates a task line for one villager gender.
func NewTaskLine(lineID, taskGroupID int) *Line {
	l := newLine(lineID, LineTask)
	l.TaskGroupID = taskGroupID
	return l
}

// NewVillagerGroup creates the combined villager group over its task lines.
func NewVillagerGroup(groupID int, taskLines []*Line) *Line {
	l := newLine(groupID, LineVillager)
	l.TaskLines = taskLines
	return l
}

// NewBuildingLine creates an empty building line.
func NewBuildingLine(lineID int) *Line {
	return newLine(lineID, LineBuilding)
}

// NewStackBuildingLine creates a building line with a stacked overlay unit.
func NewStackBuildingLine(lineID, stackUnitID int) *Line {
	l := newLine(lineID, LineStackBuilding)
	l.StackUnitID = stackUnitID
	return l
}

// NewAmbientGroup creates a group for a single scenery or resource object.
func NewAmbientGroup(unitID int) *Line {
	return newLine(unitID, LineAmbient)
}

// NewVariantGroup creates a group of cosmetic variations of one object.
func NewVariantGroup(groupID int) *Line {
	return newLine(groupID, LineVariant)
}

func newLine(id int, kind LineKind) *Line {
	return &Line{
		ID:                id,
		Kind:              kind,
		TransformTargetID: -1,
		SwitchUnitID:      -1,
		StackUnitID:       -1,
		TaskGroupID:       -1,
	}
}

// Units returns the direct member units in line order. A villager group
// has no direct members; its units hang off the task lines.
func (l *Line) Units() []*genie.Unit {
	return l.units
}

// UnitIDs returns the member unit ids in line order. For a villager group
// the task lines are flattened in task group order.
func (l *Line) UnitIDs() []int {
	if l.Kind == LineVillager {
		var ids []int
		for _, task := range l.TaskLines {
			ids = append(ids, task.UnitIDs()...)
		}
		return ids
	}
	ids := make([]int, 0, len(l.units))
	for _, u := range l.units {
		ids = append(ids, u.ID)
	}
	return ids
}

// Head returns the first unit of the line, or nil if the line is empty.
// A villager group delegates to its first task line.
func (l *Line) Head() *genie.Unit {
	if l.Kind == LineVillager {
		if len(l.TaskLines) == 0 {
			return nil
		}
		return l.TaskLines[0].Head()
	}
	if len(l.units) == 0 {
		return nil
	}
	return l.units[0]
}

// HeadUnitID returns the id of the head unit, or -1 for an empty line.
func (l *Line) HeadUnitID() int {
	head := l.Head()
	if head == nil {
		return -1
	}
	return head.ID
}

// Contains reports whether the unit id is a member of the line. A villager
// group checks its task lines.
func (l *Line) Contains(unitID int) bool {
	if l.Kind == LineVillager {
		for _, task := range l.TaskLines {
			if task.Contains(unitID) {
				return true
			}
		}
		return false
	}
	for _, u := range l.units {
		if u.ID == unitID {
			return true
		}
	}
	return false
}

// InsertHead places the unit at the front of the line. Inserting a unit
// that is already a member is a no-op.
func (l *Line) InsertHead(u *genie.Unit) {
	if l.Contains(u.ID) {
		return
	}
	l.units = append([]*genie.Unit{u}, l.units...)
}

// InsertAfter places the unit directly behind its predecessor. If the
// predecessor is not a member yet, the unit goes to the end; connection
// tables occasionally list members out of order and the predecessor fills
// the gap later. Inserting a unit that is already a member is a no-op.
func (l *Line) InsertAfter(u *genie.Unit, predecessorID int) {
	if l.Contains(u.ID) {
		return
	}
	for i, member := range l.units {
		if member.ID == predecessorID {
			l.units = append(l.units, nil)
			copy(l.units[i+2:], l.units[i+1:])
			l.units[i+1] = u
			return
		}
	}
	l.units = append(l.units, u)
}

// Append places the unit at the end of the line. Appending a unit that is
// already a member is a no-op.
func (l *Line) Append(u *genie.Unit) {
	if l.Contains(u.ID) {
		return
	}
	l.units = append(l.units, u)
}

// IsCreatable reports whether the line can be trained or built somewhere.
func (l *Line) IsCreatable() bool {
	head := l.Head()
	return head != nil && head.IsCreatable()
}

// TrainLocationID returns the id of the entity that produces this line,
// or -1 if it cannot be produced. A villager group reads its first task
// line, mirroring Head.
func (l *Line) TrainLocationID() int {
	head := l.Head()
	if head == nil {
		return -1
	}
	return head.TrainLocationID
}

// ClassID returns the unit class of the line head, or -1 for empty lines.
func (l *Line) ClassID() int {
	head := l.Head()
	if head == nil {
		return -1
	}
	return head.Class
}

// IsBuilding reports whether the line is a building line.
func (l *Line) IsBuilding() bool {
	return l.Kind == LineBuilding || l.Kind == LineStackBuilding
}

// HasCommand reports whether the line head carries a command of the type.
func (l *Line) HasCommand(cmdType int) bool {
	head := l.Head()
	return head != nil && head.HasCommand(cmdType)
}

// GarrisonMode derives how the group holds other entities. Monk lines
// carry relics. Anything without garrison capacity holds nothing. A
// positive garrison bitmask makes a natural garrison. Buildings without a
// bitmask hold their own products if they produce anything; mobile units
// without a bitmask are unit garrisons (transport ships, rams).
func (l *Line) GarrisonMode() GarrisonMode {
	if l.Kind == LineMonk {
		return GarrisonMonk
	}
	head := l.Head()
	if head == nil || head.GarrisonCapacity <= 0 {
		return GarrisonNone
	}
	if head.GarrisonType > 0 {
		return GarrisonNatural
	}
	if l.IsBuilding() {
		if len(l.Creatables) > 0 {
			return GarrisonSelfProduced
		}
		return GarrisonNone
	}
	return GarrisonUnitGarrison
}

// IsGarrison reports whether the group can hold anything at all.
func (l *Line) IsGarrison() bool {
	return l.GarrisonMode() != GarrisonNone
}

// Creates reports whether the line produces the given line.
func (l *Line) Creates(product *Line) bool {
	for _, c := range l.Creatables {
		if c == product {
			return true
		}
	}
	return false
}

// AddCreatable links a product line to the group producing it, keeping
// both directions consistent. Duplicate links are ignored.
func (l *Line) AddCreatable(product *Line) {
	if l.Creates(product) {
		return
	}
	l.Creatables = append(l.Creatables, product)
	product.CreatedAt = l
}

// AddResearchable links a tech group to the building line researching it,
// keeping both directions consistent. Duplicate links are ignored.
func (l *Line) AddResearchable(tg *TechGroup) {
	for _, r := range l.Researchables {
		if r == tg {
			return
		}
	}
	l.Researchables = append(l.Researchables, tg)
	tg.ResearchedAt = l
}

// AcceptResource marks the building line as a dropsite for the resource.
// Duplicates are ignored.
func (l *Line) AcceptResource(resourceID int) {
	for _, r := range l.AcceptedResources {
		if r == resourceID {
			return
		}
	}
	l.AcceptedResources = append(l.AcceptedResources, resourceID)
}

// LinkTrade connects a trading unit line with its trade post building in
// both directions. Duplicate links are ignored.
func LinkTrade(post, trader *Line) {
	for _, p := range trader.TradePosts {
		if p == post {
			return
		}
	}
	trader.TradePosts = append(trader.TradePosts, post)
	post.TradePartners = append(post.TradePartners, trader)
}

// LinkGarrison connects a garrison location with a garrisoned group in
// both directions. Duplicate links are ignored.
func LinkGarrison(location, entity *Line) {
	for _, e := range location.GarrisonEntities {
		if e == entity {
			return
		}
	}
	location.GarrisonEntities = append(location.GarrisonEntities, entity)
	entity.GarrisonLocations = append(entity.GarrisonLocations, location)
}

// Ref returns the domain-tagged reference of the line.
func (l *Line) Ref() GroupRef {
	return GroupRef{Domain: l.Kind.Domain(), ID: l.ID}
}
