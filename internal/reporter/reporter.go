// Package reporter renders reference chains as indented trees and assembles
// the JSON report objects consumed by downstream tooling.
package reporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/refchain-analysis/internal/advisor"
	"github.com/refchain-analysis/internal/analyzer"
	"github.com/refchain-analysis/pkg/filter"
	"github.com/refchain-analysis/pkg/model"
	"github.com/refchain-analysis/pkg/utils"
)

const (
	statusReleased    = "Released ✓"
	statusNotReleased = "NOT RELEASED ⚠️"
)

// Reporter builds chain and aggregate reports.
type Reporter struct {
	logger  utils.Logger
	version string
	filter  *filter.ClassFilter
	advisor *advisor.Advisor
}

// New creates a Reporter. A nil logger disables logging.
func New(logger utils.Logger, version string) *Reporter {
	if logger == nil {
		logger = &utils.NullLogger{}
	}
	return &Reporter{
		logger:  logger,
		version: version,
		filter:  filter.DefaultFilter,
		advisor: advisor.NewAdvisor(),
	}
}

// Visualize renders the chain as an indented tree. Depth grows left to
// right; each non-root line shows the incoming field name and every line
// shows the release status.
func (r *Reporter) Visualize(c *model.Chain) string {
	lines := make([]string, 0, len(c.Nodes)+1)
	for i, node := range c.Nodes {
		indent := strings.Repeat("  ", i)
		if i > 0 {
			indent += "└─ "
			if node.Field != "" {
				indent += node.Field + " → "
			}
		}

		status := statusReleased
		if node.IsLeak() {
			status = statusNotReleased
		}
		lines = append(lines, fmt.Sprintf("%s%s [%s]", indent, node.ClassName, status))
	}

	if c.CPPInstance != "" {
		lastIndent := strings.Repeat("  ", len(c.Nodes))
		lines = append(lines, fmt.Sprintf("%s└─ __cppinst → %s (C++ Blueprint)", lastIndent, c.CPPInstance))
	}

	return strings.Join(lines, "\n")
}

// BuildChainReport assembles the single-chain analysis object.
func (r *Reporter) BuildChainReport(c *model.Chain) *model.ChainReport {
	started := time.Now()
	report := r.buildChainReport(c)
	report.Metadata = model.NewReportMetadata(uuid.New().String(), r.version, started)
	return report
}

// BuildAggregateReport assembles the consolidated analysis object for
// multiple chains, in argument order.
func (r *Reporter) BuildAggregateReport(chains []*model.Chain) *model.AggregateReport {
	started := time.Now()

	reports := make([]*model.ChainReport, 0, len(chains))
	for _, c := range chains {
		reports = append(reports, r.buildChainReport(c))
	}

	return &model.AggregateReport{
		TotalChains:         len(chains),
		UniqueLeakedClasses: analyzer.UniqueLeakedClasses(chains),
		UniqueCPPBlueprints: analyzer.UniqueCPPInstances(chains),
		Chains:              reports,
		Metadata:            model.NewReportMetadata(uuid.New().String(), r.version, started),
	}
}

func (r *Reporter) buildChainReport(c *model.Chain) *model.ChainReport {
	leaks := make([]*model.LeakInfo, 0)
	for i, node := range c.Nodes {
		if node.Released {
			continue
		}

		parent := analyzer.Parent(c, i)
		children := analyzer.Children(c, i)

		info := &model.LeakInfo{
			Node:          node,
			Parent:        parent,
			HasChildren:   len(children) > 0,
			ChildrenCount: len(children),
			Priority:      analyzer.PriorityAt(c, i),
			Category:      r.filter.Classify(node.ClassName).String(),
		}
		if parent != nil {
			released := parent.Released
			info.ParentReleased = &released
		}
		if analyzer.AnnotationAppliesAt(c, i) {
			instance := c.CPPInstance
			info.CPPBlueprint = &instance
		}

		r.logger.Debug("leak: %s priority=%s", node, info.Priority)
		leaks = append(leaks, info)
	}

	report := &model.ChainReport{
		RawChain:      c.Raw,
		TotalNodes:    len(c.Nodes),
		LeakedNodes:   len(leaks),
		Nodes:         c.Nodes,
		Visualization: r.Visualize(c),
		Leaks:         leaks,
	}
	if c.CPPInstance != "" {
		report.CPPInstance = &c.CPPInstance
	}
	report.Suggestions = r.advisor.Advise(&advisor.RuleContext{Chain: c, Report: report})
	return report
}
