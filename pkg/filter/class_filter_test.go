package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassFilter_Classify(t *testing.T) {
	tests := []struct {
		className string
		want      ClassCategory
	}{
		{"WBP_MyWidget_C", CategoryBlueprint},
		{"BP_ShopItem", CategoryBlueprint},
		{"SomeClass_C", CategoryBlueprint},
		{"IVTextQualityComponent", CategoryComponent},
		{"NameComp", CategoryComponent},
		{"IVShopItemTemplate", CategoryTemplate},
		{"InventoryWidget", CategoryWidget},
		{"ShopPanel", CategoryWidget},
		{"ItemView", CategoryWidget},
		{"RandomClass", CategoryUnknown},
		{"", CategoryUnknown},
	}

	f := NewClassFilter()
	for _, tt := range tests {
		t.Run(tt.className, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Classify(tt.className))
		})
	}
}

func TestClassFilter_BlueprintPrecedence(t *testing.T) {
	// A blueprint-generated widget is a blueprint, not a widget.
	f := NewClassFilter()
	assert.Equal(t, CategoryBlueprint, f.Classify("WBP_ShopWidget_C"))
}

func TestClassCategory_String(t *testing.T) {
	assert.Equal(t, "blueprint", CategoryBlueprint.String())
	assert.Equal(t, "component", CategoryComponent.String())
	assert.Equal(t, "template", CategoryTemplate.String())
	assert.Equal(t, "widget", CategoryWidget.String())
	assert.Equal(t, "unknown", CategoryUnknown.String())
}

func TestClassFilter_CacheConsistency(t *testing.T) {
	f := NewClassFilter()

	first := f.Classify("IVTextQualityComponent")
	second := f.Classify("IVTextQualityComponent")
	assert.Equal(t, first, second)
}

func TestClassFilter_AddComponentSuffix(t *testing.T) {
	f := NewClassFilter()
	assert.Equal(t, CategoryUnknown, f.Classify("HealthBarCtrl"))

	f.AddComponentSuffix("Ctrl")
	assert.Equal(t, CategoryComponent, f.Classify("HealthBarCtrl"))
}

func TestClassFilter_AddBlueprintPrefix(t *testing.T) {
	f := NewClassFilter()
	assert.Equal(t, CategoryUnknown, f.Classify("UMG_Shop"))

	f.AddBlueprintPrefix("UMG_")
	assert.Equal(t, CategoryBlueprint, f.Classify("UMG_Shop"))
}

func TestClassFilter_Predicates(t *testing.T) {
	f := NewClassFilter()

	assert.True(t, f.IsBlueprint("WBP_MyWidget_C"))
	assert.False(t, f.IsBlueprint("IVTextQualityComponent"))
	assert.True(t, f.IsComponent("IVTextQualityComponent"))
}

func TestDefaultFilter(t *testing.T) {
	assert.Equal(t, CategoryTemplate, Classify("IVShopItemTemplate"))
}
