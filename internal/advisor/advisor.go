// Package advisor generates remediation suggestions for leak reports.
package advisor

import (
	"fmt"

	"github.com/refchain-analysis/pkg/model"
)

// Advisor generates suggestions by running a set of rules over a report.
type Advisor struct {
	rules []Rule
}

// Rule represents a suggestion rule.
type Rule struct {
	Type        string
	Name        string
	Description string
	Check       RuleCheckFunc
}

// RuleCheckFunc is a function that checks if a rule applies.
type RuleCheckFunc func(ctx *RuleContext) []model.Suggestion

// RuleContext provides context for rule checking.
type RuleContext struct {
	Chain  *model.Chain
	Report *model.ChainReport
}

// NewAdvisor creates a new Advisor with default rules.
func NewAdvisor() *Advisor {
	return &Advisor{
		rules: defaultRules(),
	}
}

// NewAdvisorWithRules creates a new Advisor with custom rules.
func NewAdvisorWithRules(rules []Rule) *Advisor {
	return &Advisor{
		rules: rules,
	}
}

// Advise runs every rule against the context and collects the suggestions.
func (a *Advisor) Advise(ctx *RuleContext) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)

	for _, rule := range a.rules {
		if rule.Check != nil {
			suggestions = append(suggestions, rule.Check(ctx)...)
		}
	}

	return suggestions
}

// defaultRules returns the default set of leak triage rules.
func defaultRules() []Rule {
	return []Rule{
		{
			Type:        "ownership",
			Name:        "isolated_release_gap",
			Description: "Flag leaks whose parent was properly released",
			Check:       checkIsolatedReleaseGap,
		},
		{
			Type:        "ownership",
			Name:        "upstream_leak_root",
			Description: "Point at the first unreleased node when a subtree leaks",
			Check:       checkUpstreamLeakRoot,
		},
		{
			Type:        "blueprint",
			Name:        "cpp_instance_leak",
			Description: "Flag leaks backed by a C++ blueprint instance",
			Check:       checkCPPInstanceLeak,
		},
		{
			Type:        "ui",
			Name:        "widget_leak",
			Description: "Flag leaked UI widgets",
			Check:       checkWidgetLeak,
		},
	}
}

// checkIsolatedReleaseGap flags high priority leaks. The parent released
// correctly, so the missing release is on that exact edge.
func checkIsolatedReleaseGap(ctx *RuleContext) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)
	if ctx.Report == nil {
		return suggestions
	}

	for _, leak := range ctx.Report.Leaks {
		if leak.Priority != model.PriorityHigh || leak.Parent == nil {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Type:     "ownership",
			Severity: "critical",
			Suggestion: fmt.Sprintf("%s was released but its field '%s' still holds %s; check the release path for that field",
				leak.Parent.ClassName, leak.Node.Field, leak.Node.ClassName),
			ClassName: leak.Node.ClassName,
			Field:     leak.Node.Field,
		})
	}
	return suggestions
}

// checkUpstreamLeakRoot points at the first unreleased node when more than
// one node leaked: releasing the root usually frees the descendants.
func checkUpstreamLeakRoot(ctx *RuleContext) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)
	if ctx.Report == nil || ctx.Report.LeakedNodes < 2 {
		return suggestions
	}

	first := ctx.Report.Leaks[0]
	if !first.HasChildren {
		return suggestions
	}
	suggestions = append(suggestions, model.Suggestion{
		Type:     "ownership",
		Severity: "warning",
		Suggestion: fmt.Sprintf("%s holds %d unreleased downstream node(s); releasing it first is likely to free the rest",
			first.Node.ClassName, ctx.Report.LeakedNodes-1),
		ClassName: first.Node.ClassName,
	})
	return suggestions
}

// checkCPPInstanceLeak flags leaks that carry a C++ blueprint annotation.
func checkCPPInstanceLeak(ctx *RuleContext) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)
	if ctx.Report == nil {
		return suggestions
	}

	for _, leak := range ctx.Report.Leaks {
		if leak.CPPBlueprint == nil {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Type:     "blueprint",
			Severity: "warning",
			Suggestion: fmt.Sprintf("%s is backed by C++ blueprint instance %s; verify the native instance is destroyed when the Lua reference is dropped",
				leak.Node.ClassName, *leak.CPPBlueprint),
			ClassName: leak.Node.ClassName,
		})
	}
	return suggestions
}

// checkWidgetLeak flags leaked classes that look like UI widgets.
func checkWidgetLeak(ctx *RuleContext) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)
	if ctx.Report == nil {
		return suggestions
	}

	for _, leak := range ctx.Report.Leaks {
		if leak.Category != "widget" {
			continue
		}
		suggestions = append(suggestions, model.Suggestion{
			Type:     "ui",
			Severity: "info",
			Suggestion: fmt.Sprintf("%s looks like a UI widget; confirm it is removed from its parent before the reference is dropped",
				leak.Node.ClassName),
			ClassName: leak.Node.ClassName,
		})
	}
	return suggestions
}
