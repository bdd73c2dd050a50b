package chain

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_BasicChain(t *testing.T) {
	input := "A:01[true]._f.B:02[false]"

	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), input)

	require.NoError(t, err)
	require.NotNil(t, chain)

	assert.Equal(t, input, chain.Raw)
	require.Len(t, chain.Nodes, 2)

	assert.Equal(t, "A", chain.Nodes[0].ClassName)
	assert.Equal(t, "01", chain.Nodes[0].Address)
	assert.True(t, chain.Nodes[0].Released)
	assert.Empty(t, chain.Nodes[0].Field)

	assert.Equal(t, "B", chain.Nodes[1].ClassName)
	assert.Equal(t, "02", chain.Nodes[1].Address)
	assert.False(t, chain.Nodes[1].Released)
	assert.Equal(t, "_f", chain.Nodes[1].Field)

	assert.Empty(t, chain.CPPInstance)
}

func TestParser_Parse_TrailingAnnotation(t *testing.T) {
	input := "A:01[true]._f.B:02[false].__cppinst = Widget_C"

	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 2)

	// Nodes are identical to the un-annotated chain.
	assert.Equal(t, "A", chain.Nodes[0].ClassName)
	assert.Equal(t, "B", chain.Nodes[1].ClassName)
	assert.Equal(t, "_f", chain.Nodes[1].Field)

	assert.Equal(t, "Widget_C", chain.CPPInstance)
	// Raw keeps the original string including the annotation.
	assert.Equal(t, input, chain.Raw)
}

func TestParser_Parse_RealWorldChain(t *testing.T) {
	input := "IVShopItemTemplate:000000029E8DD9C0[true]._nameComp.IVTextQualityComponent:000000029E8D6300[false].__cppinst = WBP_MyWidget_C"

	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), input)

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 2)

	assert.Equal(t, "IVShopItemTemplate", chain.Nodes[0].ClassName)
	assert.Equal(t, "000000029E8DD9C0", chain.Nodes[0].Address)
	assert.Equal(t, "IVTextQualityComponent", chain.Nodes[1].ClassName)
	assert.Equal(t, "_nameComp", chain.Nodes[1].Field)
	assert.Equal(t, "WBP_MyWidget_C", chain.CPPInstance)
}

func TestParser_Parse_SingleReleasedNode(t *testing.T) {
	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), "A:01[true]")

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 1)
	assert.True(t, chain.Nodes[0].Released)
	assert.Empty(t, chain.Nodes[0].Field)
}

func TestParser_Parse_NoNodeSegments(t *testing.T) {
	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), "justsomefield")

	require.NoError(t, err)
	require.NotNil(t, chain)
	assert.Empty(t, chain.Nodes)
	assert.NotNil(t, chain.Nodes)
	assert.Empty(t, chain.CPPInstance)
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, chain.Nodes)
}

func TestParser_Parse_ConsecutiveFieldSegments(t *testing.T) {
	// Consecutive field segments are not well-formed, but the parser must
	// not fail: the most recent field before a node wins.
	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), "A:01[true].f1.f2.B:02[false]")

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 2)
	assert.Equal(t, "f2", chain.Nodes[1].Field)
}

func TestParser_Parse_EmptySegmentsIgnored(t *testing.T) {
	// Adjacent separators must not clear a pending field name.
	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), "A:01[true]._f..B:02[false]")

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 2)
	assert.Equal(t, "_f", chain.Nodes[1].Field)
}

func TestParser_Parse_MarkerNeverAFieldName(t *testing.T) {
	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), "__cppinst.A:01[false]")

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 1)
	assert.Empty(t, chain.Nodes[0].Field)
}

func TestParser_Parse_DuplicateClassAddressPairs(t *testing.T) {
	parser := NewParser(nil)
	chain, err := parser.Parse(context.Background(), "A:01[true]._f.A:01[false]._g.A:01[false]")

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 3)
	assert.Empty(t, chain.Nodes[0].Field)
	assert.Equal(t, "_f", chain.Nodes[1].Field)
	assert.Equal(t, "_g", chain.Nodes[2].Field)
}

func TestParser_Parse_CustomSeparator(t *testing.T) {
	parser := NewParser(&ParserOptions{
		Separator:      "/",
		TrailingMarker: DefaultTrailingMarker,
	})
	chain, err := parser.Parse(context.Background(), "A:01[true]/_f/B:02[false]")

	require.NoError(t, err)
	require.Len(t, chain.Nodes, 2)
	assert.Equal(t, "_f", chain.Nodes[1].Field)
}

func TestParser_Parse_ContextCancellation(t *testing.T) {
	input := "A:01[true]." + strings.Repeat("_f.B:02[false].", 1000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	parser := NewParser(nil)
	_, err := parser.Parse(ctx, input)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParser_ParseAll_Order(t *testing.T) {
	parser := NewParser(nil)
	chains, err := parser.ParseAll(context.Background(), []string{
		"A:01[false]",
		"B:02[true]",
	})

	require.NoError(t, err)
	require.Len(t, chains, 2)
	assert.Equal(t, "A", chains[0].Nodes[0].ClassName)
	assert.Equal(t, "B", chains[1].Nodes[0].ClassName)
}

func TestParser_Name(t *testing.T) {
	parser := NewParser(nil)
	assert.Equal(t, "refchain", parser.Name())
}

// Benchmark tests
func BenchmarkParser_Parse(b *testing.B) {
	var builder strings.Builder
	builder.WriteString("Root:FF00[true]")
	for i := 0; i < 100; i++ {
		builder.WriteString("._child.Node:AB12[false]")
	}
	input := builder.String()

	parser := NewParser(nil)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = parser.Parse(context.Background(), input)
	}
}
