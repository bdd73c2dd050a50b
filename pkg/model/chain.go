// Package model defines the data structures shared by the chain parser,
// analyzer and reporter.
package model

import (
	"encoding/json"
	"fmt"
)

// ReferenceNode represents a single object instance observed in a reference
// chain. Address is the hexadecimal address string as reported by the leak
// detector; it is never interpreted numerically.
type ReferenceNode struct {
	ClassName string
	Address   string
	Released  bool

	// Field is the name of the field on the previous node that holds the
	// reference to this node. Empty for the root node.
	Field string
}

// IsLeak reports whether this node was never released.
func (n *ReferenceNode) IsLeak() bool {
	return !n.Released
}

// MarshalJSON serializes the node with the derived is_leak attribute.
// A missing field name is emitted as null, not as an empty string.
func (n *ReferenceNode) MarshalJSON() ([]byte, error) {
	type nodeJSON struct {
		ClassName string  `json:"class_name"`
		Address   string  `json:"address"`
		Released  bool    `json:"released"`
		Field     *string `json:"field"`
		IsLeak    bool    `json:"is_leak"`
	}

	nj := nodeJSON{
		ClassName: n.ClassName,
		Address:   n.Address,
		Released:  n.Released,
		IsLeak:    n.IsLeak(),
	}
	if n.Field != "" {
		nj.Field = &n.Field
	}
	return json.Marshal(nj)
}

// String returns a compact human-readable form used in debug logging.
func (n *ReferenceNode) String() string {
	status := "Released"
	if n.IsLeak() {
		status = "NOT RELEASED"
	}
	if n.Field != "" {
		return fmt.Sprintf("%s:%s [%s] (via %s)", n.ClassName, n.Address, status, n.Field)
	}
	return fmt.Sprintf("%s:%s [%s]", n.ClassName, n.Address, status)
}

// Chain is an ordered reference chain as produced by the parser. Nodes keep
// the left-to-right order of the raw string: the ownership path from the root
// holder down to the leaked object. A Chain is immutable after parsing and
// does not outlive a single analysis call.
type Chain struct {
	// Raw is the original chain string, before trailing-annotation extraction.
	Raw string

	// Nodes are the parsed node segments in chain order.
	Nodes []*ReferenceNode

	// CPPInstance is the optional trailing annotation: the C++ blueprint
	// class associated with the final node. Empty when absent.
	CPPInstance string
}

// Len returns the number of nodes in the chain.
func (c *Chain) Len() int {
	return len(c.Nodes)
}

// Last returns the final node of the chain, or nil for an empty chain.
func (c *Chain) Last() *ReferenceNode {
	if len(c.Nodes) == 0 {
		return nil
	}
	return c.Nodes[len(c.Nodes)-1]
}
