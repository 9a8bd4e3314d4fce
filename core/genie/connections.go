package genie

// RefKind tags which table a connection reference points into.
type RefKind int

// Reference kinds as stored in the .dat connection tables.
const (
	RefAge      RefKind = 0
	RefBuilding RefKind = 1
	RefUnit     RefKind = 2
	RefTech     RefKind = 3
)

// String returns the lowercase table name for the kind.
func (k RefKind) String() string {
	switch k {
	case RefAge:
		return "age"
	case RefBuilding:
		return "building"
	case RefUnit:
		return "unit"
	case RefTech:
		return "tech"
	}
	return "unknown"
}

// Ref is one typed cross-reference of a connection record. The .dat
// format stores kinds and ids in two parallel arrays; the source decoder
// zips them into pairs.
type Ref struct {
	Kind RefKind `json:"kind"`
	ID   int     `json:"id"`
}

// Line mode values of connection records.
const (
	// LineModeAge marks a connection that belongs to the age progress bar.
	LineModeAge = 0
	// LineModeFirst marks the first entity of an upgrade line.
	LineModeFirst = 2
	// LineModeMember marks an entity further down its line.
	LineModeMember = 3
)

// UnitConnection chains a unit into its upgrade line.
type UnitConnection struct {
	ID                 int   `json:"id"`
	VerticalLineID     int   `json:"vertical_line"`
	LineMode           int   `json:"line_mode"`
	RequiredResearchID int   `json:"required_research"`
	EnablingResearchID int   `json:"enabling_research"`
	Refs               []Ref `json:"refs"`
}

// BuildingConnection chains a building into the tech tree.
type BuildingConnection struct {
	ID                 int   `json:"id"`
	LineMode           int   `json:"line_mode"`
	EnablingResearchID int   `json:"enabling_research"`
	Refs               []Ref `json:"refs"`
}

// TechConnection chains a tech into the tech tree.
type TechConnection struct {
	ID          int   `json:"id"`
	LineMode    int   `json:"line_mode"`
	BuildingIDs []int `json:"buildings"`
	Refs        []Ref `json:"refs"`
}

// AgeConnection anchors one age of the tech tree.
type AgeConnection struct {
	ID   int   `json:"id"`
	Refs []Ref `json:"refs"`
}

// FirstRef returns the id of the first reference with the given kind.
func FirstRef(refs []Ref, kind RefKind) (int, bool) {
	for _, ref := range refs {
		if ref.Kind == kind {
			return ref.ID, true
		}
	}
	return 0, false
}

// RefIDs returns the ids of every reference with the given kind,
// preserving record order.
func RefIDs(refs []Ref, kind RefKind) []int {
	var out []int
	for _, ref := range refs {
		if ref.Kind == kind {
			out = append(out, ref.ID)
		}
	}
	return out
}
