// Package widgets resolves which collaborating plugin owns a field and
// replays that plugin's initialisation contract when rows are cloned. The
// registry is the single kind→initialiser lookup table the editor dispatches
// through; fields never advertise widgets via markup classes.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/archivekit/formset/pkg/formtree"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetRemoteSelect = "remote-select"
	WidgetSearchSelect = "search-select"
	WidgetRichText     = "richtext"
	WidgetSlider       = "slider"
)

// Matcher decides whether a widget should handle the supplied field.
type Matcher func(field *formtree.Field) bool

// Initializer replays a plugin's init contract against a field, typically
// by stamping the data attributes the plugin reads at bind time.
type Initializer func(field *formtree.Field)

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order.
type Registry struct {
	mu           sync.RWMutex
	rules        []rule
	initializers map[string]Initializer
}

// NewRegistry constructs a registry with the built-in matchers and
// initialisers registered.
func NewRegistry() *Registry {
	reg := &Registry{initializers: make(map[string]Initializer)}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// SetInitializer installs or replaces the initialiser invoked for a widget.
func (r *Registry) SetInitializer(name string, init Initializer) {
	if r == nil || init == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.initializers[trimmed] = init
}

// Resolve returns the widget name for a field. An explicit metadata hint is
// honoured before matcher evaluation.
func (r *Registry) Resolve(field *formtree.Field) (string, bool) {
	if field == nil {
		return "", false
	}
	if field.Metadata != nil {
		if explicit := strings.TrimSpace(field.Metadata["widget"]); explicit != "" {
			return explicit, true
		}
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	if len(rules) == 0 {
		return "", false
	}
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Initialize resolves the field's widget and runs its initialiser. Fields
// without a widget are left untouched. The resolved name is recorded in the
// field metadata so renderers and tests can observe the decision.
func (r *Registry) Initialize(field *formtree.Field) {
	name, ok := r.Resolve(field)
	if !ok {
		return
	}
	if field.Metadata == nil {
		field.Metadata = make(map[string]string)
	}
	field.Metadata["widget"] = name

	r.mu.RLock()
	init := r.initializers[name]
	r.mu.RUnlock()
	if init != nil {
		init(field)
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetRemoteSelect, 90, func(field *formtree.Field) bool {
		if field.Kind == formtree.KindRemoteSelect {
			return true
		}
		return field.Metadata != nil && field.Metadata[MetaAutocompleteURL] != ""
	})
	r.Register(WidgetSearchSelect, 80, func(field *formtree.Field) bool {
		return field.Kind == formtree.KindSearchSelect
	})
	r.Register(WidgetRichText, 70, func(field *formtree.Field) bool {
		return field.Kind == formtree.KindRichText
	})
	r.Register(WidgetSlider, 60, func(field *formtree.Field) bool {
		return field.Kind == formtree.KindSlider
	})

	r.SetInitializer(WidgetRemoteSelect, InitRemoteSelect)
	r.SetInitializer(WidgetSearchSelect, InitSearchSelect)
	r.SetInitializer(WidgetRichText, InitRichText)
	r.SetInitializer(WidgetSlider, InitSlider)
}
