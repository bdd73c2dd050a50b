package model

import "time"

// Priority classifies how actionable a leaked node is.
type Priority string

const (
	// PriorityHigh marks a leak whose parent was properly released: the
	// ownership bug is isolated to that exact edge.
	PriorityHigh Priority = "high"

	// PriorityMedium marks a leak whose parent is also unreleased (or which
	// has no parent); the root cause is likely further upstream.
	PriorityMedium Priority = "medium"
)

// LeakInfo describes one leaked node within a chain report.
type LeakInfo struct {
	Node           *ReferenceNode `json:"node"`
	Parent         *ReferenceNode `json:"parent"`
	ParentReleased *bool          `json:"parent_released"`
	HasChildren    bool           `json:"has_children"`
	ChildrenCount  int            `json:"children_count"`
	Priority       Priority       `json:"priority"`
	Category       string         `json:"category"`
	CPPBlueprint   *string        `json:"cpp_blueprint"`
}

// ChainReport is the single-chain analysis object emitted as JSON.
type ChainReport struct {
	RawChain      string           `json:"raw_chain"`
	TotalNodes    int              `json:"total_nodes"`
	LeakedNodes   int              `json:"leaked_nodes"`
	CPPInstance   *string          `json:"cpp_instance"`
	Nodes         []*ReferenceNode `json:"nodes"`
	Visualization string           `json:"visualization"`
	Leaks         []*LeakInfo      `json:"leaks"`
	Suggestions   []Suggestion     `json:"suggestions"`
	Metadata      *ReportMetadata  `json:"metadata,omitempty"`
}

// Suggestion is a remediation hint attached to a chain report.
type Suggestion struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
	ClassName  string `json:"class_name,omitempty"`
	Field      string `json:"field,omitempty"`
}

// AggregateReport is the consolidated analysis object for multiple chains.
type AggregateReport struct {
	TotalChains         int             `json:"total_chains"`
	UniqueLeakedClasses []string        `json:"unique_leaked_classes"`
	UniqueCPPBlueprints []string        `json:"unique_cpp_blueprints"`
	Chains              []*ChainReport  `json:"chains"`
	Metadata            *ReportMetadata `json:"metadata,omitempty"`
}

// ReportMetadata holds report provenance information.
type ReportMetadata struct {
	ReportID       string `json:"report_id"`
	Version        string `json:"version"`
	AnalyzedAt     string `json:"analyzed_at"`
	AnalysisTimeMs int64  `json:"analysis_time_ms"`
}

// NewReportMetadata builds metadata for a report generated now.
func NewReportMetadata(reportID, version string, started time.Time) *ReportMetadata {
	return &ReportMetadata{
		ReportID:       reportID,
		Version:        version,
		AnalyzedAt:     time.Now().Format(time.RFC3339),
		AnalysisTimeMs: time.Since(started).Milliseconds(),
	}
}
