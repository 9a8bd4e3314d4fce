package convert

import "fmt"

// InconsistencyError reports a structural contradiction in the source
// dump: a record the data model guarantees to exist is missing or
// malformed. The pipeline aborts on the first one.
type InconsistencyError struct {
	// Pass is the pipeline pass that hit the contradiction.
	Pass string
	// Entity is the domain of the offending record.
	Entity string
	// ID is the offending record id.
	ID int
	// Reason says what was expected and not found.
	Reason string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s: %s %d: %s", e.Pass, e.Entity, e.ID, e.Reason)
}
