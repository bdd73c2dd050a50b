// Package chain implements parsing of reference chain strings reported by
// the Lua/C++ memory-leak detector.
// Chain format example: ShopTemplate:29E8DD9C0[true]._nameComp.TextComponent:29E8D6300[false].__cppinst = WBP_Shop_C
package chain

import (
	"regexp"
	"strings"
)

// Node segment: ClassName:HexAddress[true|false]
var nodeSegmentRegex = regexp.MustCompile(`^([A-Za-z0-9_]+):([0-9A-Fa-f]+)\[(true|false)\]$`)

// Loose node pattern used for format sniffing, not anchored to a segment.
var anyNodeRegex = regexp.MustCompile(`[A-Za-z0-9_]+:[0-9A-Fa-f]+\[(?:true|false)\]`)

// NodeSegment holds the pieces of a matched node segment.
type NodeSegment struct {
	ClassName string
	Address   string
	Released  bool
}

// MatchNodeSegment matches a single segment against the node pattern.
// Returns false for field segments.
func MatchNodeSegment(segment string) (*NodeSegment, bool) {
	matches := nodeSegmentRegex.FindStringSubmatch(segment)
	if matches == nil {
		return nil, false
	}
	return &NodeSegment{
		ClassName: matches[1],
		Address:   matches[2],
		Released:  matches[3] == "true",
	}, true
}

// TrailingInstanceRegex builds the anchored pattern for a trailing
// annotation with the given marker, e.g. `.__cppinst = WBP_Shop_C`.
func TrailingInstanceRegex(marker string) *regexp.Regexp {
	return regexp.MustCompile(`\.` + regexp.QuoteMeta(marker) + `\s*=\s*([A-Za-z0-9_]+)$`)
}

// ExtractTrailingInstance strips a trailing annotation from the raw chain.
// Returns the annotated identifier (empty when absent) and the remainder of
// the string to be segment-split.
func ExtractTrailingInstance(raw string, re *regexp.Regexp) (instance, remainder string) {
	loc := re.FindStringSubmatchIndex(raw)
	if loc == nil {
		return "", raw
	}
	return raw[loc[2]:loc[3]], raw[:loc[0]]
}

// IsChainFormat checks if the content contains at least one recognizable
// node segment.
func IsChainFormat(s string) bool {
	return anyNodeRegex.MatchString(strings.TrimSpace(s))
}
