package chain

import (
	"context"
	"regexp"
	"strings"

	"github.com/refchain-analysis/pkg/model"
)

const (
	// DefaultSeparator separates segments in a chain string.
	DefaultSeparator = "."

	// DefaultTrailingMarker is the pseudo-field introducing the trailing
	// annotation that names the C++ blueprint class of the final node.
	DefaultTrailingMarker = "__cppinst"
)

// ParserOptions holds configuration options for the chain parser.
type ParserOptions struct {
	// Separator is the segment separator character.
	Separator string

	// TrailingMarker is the keyword introducing the trailing annotation.
	TrailingMarker string
}

// DefaultParserOptions returns default parser options.
func DefaultParserOptions() *ParserOptions {
	return &ParserOptions{
		Separator:      DefaultSeparator,
		TrailingMarker: DefaultTrailingMarker,
	}
}

// Parser parses reference chain strings into model.Chain values.
//
// The parser is deliberately permissive: segments that do not match the node
// pattern are treated as field names, and input with no recognizable node
// segments yields an empty chain. Parse never fails on malformed input.
type Parser struct {
	opts       *ParserOptions
	trailingRe *regexp.Regexp
}

// NewParser creates a new chain parser.
func NewParser(opts *ParserOptions) *Parser {
	if opts == nil {
		opts = DefaultParserOptions()
	}
	return &Parser{
		opts:       opts,
		trailingRe: TrailingInstanceRegex(opts.TrailingMarker),
	}
}

// Parse parses a raw chain string.
//
// Segments are scanned left to right with a pending field name. A field
// segment overwrites any pending name; only the most recent field segment
// before a node is attached to that node. The first node has no field. Empty
// segments (adjacent separators) never overwrite the pending name.
func (p *Parser) Parse(ctx context.Context, raw string) (*model.Chain, error) {
	chain := &model.Chain{
		Raw:   raw,
		Nodes: make([]*model.ReferenceNode, 0),
	}

	// The trailing annotation is removed before segment-splitting so its
	// identifier is never mistaken for a field or node segment.
	instance, remainder := ExtractTrailingInstance(raw, p.trailingRe)
	chain.CPPInstance = instance

	pendingField := ""
	for _, segment := range strings.Split(remainder, p.opts.Separator) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if node, ok := MatchNodeSegment(segment); ok {
			chain.Nodes = append(chain.Nodes, &model.ReferenceNode{
				ClassName: node.ClassName,
				Address:   node.Address,
				Released:  node.Released,
				Field:     pendingField,
			})
			pendingField = ""
			continue
		}

		// Field segment. The marker keyword itself is never a real field
		// name, even when it appears mid-chain.
		if segment != "" && !strings.HasPrefix(segment, p.opts.TrailingMarker) {
			pendingField = segment
		}
	}

	return chain, nil
}

// ParseAll parses multiple chain strings in argument order.
func (p *Parser) ParseAll(ctx context.Context, raws []string) ([]*model.Chain, error) {
	chains := make([]*model.Chain, 0, len(raws))
	for _, raw := range raws {
		chain, err := p.Parse(ctx, raw)
		if err != nil {
			return nil, err
		}
		chains = append(chains, chain)
	}
	return chains, nil
}

// Name returns the name of this parser.
func (p *Parser) Name() string {
	return "refchain"
}
