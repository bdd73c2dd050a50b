// Package filter categorizes class names seen in leak reference chains.
// Categories follow the naming conventions of the Lua-bound C++ UI layer:
// blueprint widget instances, UI components, and item/data templates.
package filter

import (
	"strings"
	"sync"
)

// ClassCategory represents the category of a class.
type ClassCategory int

const (
	// CategoryUnknown indicates the class name matched no known convention.
	CategoryUnknown ClassCategory = iota
	// CategoryBlueprint indicates a blueprint-generated class instance.
	CategoryBlueprint
	// CategoryComponent indicates a UI component class.
	CategoryComponent
	// CategoryTemplate indicates an item/data template class.
	CategoryTemplate
	// CategoryWidget indicates a widget class.
	CategoryWidget
)

// String returns the string representation of the category.
func (c ClassCategory) String() string {
	switch c {
	case CategoryBlueprint:
		return "blueprint"
	case CategoryComponent:
		return "component"
	case CategoryTemplate:
		return "template"
	case CategoryWidget:
		return "widget"
	default:
		return "unknown"
	}
}

// ClassFilter classifies class names by naming convention.
// It is safe for concurrent use.
type ClassFilter struct {
	mu sync.RWMutex

	// Blueprint-generated classes carry a WBP_ prefix or a _C suffix.
	blueprintPrefixes []string
	blueprintSuffixes []string

	componentSuffixes []string
	templateSuffixes  []string
	widgetSuffixes    []string

	// Cache for frequently queried classes.
	categoryCache     map[string]ClassCategory
	categoryCacheSize int
}

// NewClassFilter creates a new ClassFilter with default rules.
func NewClassFilter() *ClassFilter {
	f := &ClassFilter{
		categoryCache:     make(map[string]ClassCategory),
		categoryCacheSize: 1024,
	}
	f.initDefaults()
	return f
}

func (f *ClassFilter) initDefaults() {
	f.blueprintPrefixes = []string{"WBP_", "BP_"}
	f.blueprintSuffixes = []string{"_C"}
	f.componentSuffixes = []string{"Component", "Comp"}
	f.templateSuffixes = []string{"Template"}
	f.widgetSuffixes = []string{"Widget", "Panel", "View"}
}

// Classify returns the category of a class.
func (f *ClassFilter) Classify(className string) ClassCategory {
	if className == "" {
		return CategoryUnknown
	}

	f.mu.RLock()
	if cat, ok := f.categoryCache[className]; ok {
		f.mu.RUnlock()
		return cat
	}
	f.mu.RUnlock()

	cat := f.classifyUncached(className)

	f.mu.Lock()
	if len(f.categoryCache) < f.categoryCacheSize {
		f.categoryCache[className] = cat
	}
	f.mu.Unlock()

	return cat
}

func (f *ClassFilter) classifyUncached(className string) ClassCategory {
	// Blueprint conventions take precedence: a WBP_ShopWidget_C is a
	// blueprint instance, not a widget class.
	for _, prefix := range f.blueprintPrefixes {
		if strings.HasPrefix(className, prefix) {
			return CategoryBlueprint
		}
	}
	for _, suffix := range f.blueprintSuffixes {
		if strings.HasSuffix(className, suffix) {
			return CategoryBlueprint
		}
	}

	for _, suffix := range f.componentSuffixes {
		if strings.HasSuffix(className, suffix) {
			return CategoryComponent
		}
	}

	for _, suffix := range f.templateSuffixes {
		if strings.HasSuffix(className, suffix) {
			return CategoryTemplate
		}
	}

	for _, suffix := range f.widgetSuffixes {
		if strings.HasSuffix(className, suffix) {
			return CategoryWidget
		}
	}

	return CategoryUnknown
}

// IsBlueprint returns true if the class is a blueprint-generated instance.
func (f *ClassFilter) IsBlueprint(className string) bool {
	return f.Classify(className) == CategoryBlueprint
}

// IsComponent returns true if the class is a UI component.
func (f *ClassFilter) IsComponent(className string) bool {
	return f.Classify(className) == CategoryComponent
}

// AddComponentSuffix adds a custom component suffix.
func (f *ClassFilter) AddComponentSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.componentSuffixes = append(f.componentSuffixes, suffix)
	f.categoryCache = make(map[string]ClassCategory)
}

// AddBlueprintPrefix adds a custom blueprint prefix.
func (f *ClassFilter) AddBlueprintPrefix(prefix string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.blueprintPrefixes = append(f.blueprintPrefixes, prefix)
	f.categoryCache = make(map[string]ClassCategory)
}

// ClearCache clears the classification cache.
func (f *ClassFilter) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.categoryCache = make(map[string]ClassCategory)
}

// DefaultFilter is the default global filter instance.
var DefaultFilter = NewClassFilter()

// Classify classifies a class using the default filter.
func Classify(className string) ClassCategory {
	return DefaultFilter.Classify(className)
}
