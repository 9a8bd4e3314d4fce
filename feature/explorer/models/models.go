package models

import (
	"time"

	"genie-graph/core/graph"
)

// GraphStatus reports whether a graph is loaded and what it contains.
type GraphStatus struct {
	Built  bool         `json:"built"`
	RunID  string       `json:"run_id,omitempty"`
	Source string       `json:"source,omitempty"`
	Counts graph.Counts `json:"counts"`
}

// LineSummary is the list form of a line group.
type LineSummary struct {
	LineID     int    `json:"line_id"`
	Kind       string `json:"kind"`
	Name       string `json:"name,omitempty"`
	HeadUnitID int    `json:"head_unit_id"`
	UnitCount  int    `json:"unit_count"`
}

// LineDetail is the full serialized line plus the head unit name.
type LineDetail struct {
	graph.LineSnapshot
	Name string `json:"name,omitempty"`
}

// TechSummary is the list form of a tech group.
type TechSummary struct {
	TechID int    `json:"tech_id"`
	Kind   string `json:"kind"`
	Name   string `json:"name,omitempty"`
}

// TechDetail is the full serialized tech group plus the tech name.
type TechDetail struct {
	graph.TechSnapshot
	Name string `json:"name,omitempty"`
}

// CivSummary is the list form of a civ group.
type CivSummary struct {
	CivID int    `json:"civ_id"`
	Name  string `json:"name,omitempty"`
}

// CivDetail is the full serialized civ group plus the civ name.
type CivDetail struct {
	graph.CivSnapshot
	Name string `json:"name,omitempty"`
}

// SnapshotUpload reports a snapshot written to object storage.
type SnapshotUpload struct {
	Object string `json:"object"`
	Bytes  int64  `json:"bytes"`
}

// SnapshotInfo describes one snapshot object stored in the bucket.
type SnapshotInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}
