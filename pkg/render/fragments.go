package render

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/archivekit/formset/pkg/formtree"
	"github.com/archivekit/formset/pkg/selection"
)

// Fragments renders the small DOM fragments the editor injects: formset
// rows, duplicate-candidate rows, filter toggles, and removal notices.
type Fragments struct {
	engine *Engine
	theme  themeContext
	chrome map[string]string
}

// FragmentOption configures the Fragments renderer.
type FragmentOption func(*fragmentConfig)

type fragmentConfig struct {
	engine *Engine
	theme  *theme.RendererConfig
}

// WithEngine injects a pre-built template engine.
func WithEngine(engine *Engine) FragmentOption {
	return func(cfg *fragmentConfig) {
		if engine != nil {
			cfg.engine = engine
		}
	}
}

// WithTheme supplies a resolved theme whose tokens and CSS variables are
// exposed to every fragment template.
func WithTheme(cfg *theme.RendererConfig) FragmentOption {
	return func(c *fragmentConfig) {
		c.theme = cfg
	}
}

// NewFragments constructs a renderer over the embedded templates unless an
// engine is injected.
func NewFragments(options ...FragmentOption) (*Fragments, error) {
	var cfg fragmentConfig
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine := cfg.engine
	if engine == nil {
		built, err := NewEngine(WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("render: configure engine: %w", err)
		}
		engine = built
	}

	return &Fragments{
		engine: engine,
		theme:  buildThemeContext(cfg.theme),
		chrome: chromeContext(),
	}, nil
}

// Row renders a formset row fragment.
func (f *Fragments) Row(row *formtree.Row) ([]byte, error) {
	if row == nil {
		return nil, fmt.Errorf("render: nil row")
	}

	fields := make([]map[string]any, 0, len(row.Fields))
	for _, field := range row.Fields {
		fields = append(fields, fieldContext(field))
	}

	trigger := row.Trigger
	if trigger == "" {
		trigger = formtree.TriggerDelete
	}
	label := "Delete"
	if trigger == formtree.TriggerUndo {
		label = "Undo"
	}

	out, err := f.engine.Render("templates/row", map[string]any{
		"row": map[string]any{
			"index":           row.Index,
			"form_type":       row.FormType,
			"header_inactive": row.HeaderInactive,
			"body_hidden":     row.BodyHidden,
			"trigger":         string(trigger),
			"trigger_label":   label,
			"preferred":       row.Highlighted(formtree.FlagPreferred),
			"authorised":      row.Highlighted(formtree.FlagAuthorised),
		},
		"fields": fields,
		"theme":  f.theme,
		"chrome": f.chrome,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// DuplicateRow renders one candidate row of the duplicate-record table.
func (f *Fragments) DuplicateRow(candidate *selection.Candidate) ([]byte, error) {
	if candidate == nil {
		return nil, fmt.Errorf("render: nil candidate")
	}
	out, err := f.engine.Render("templates/duplicate_row", map[string]any{
		"candidate": map[string]any{
			"record_id":      candidate.RecordID,
			"display_name":   candidate.DisplayName,
			"primary":        candidate.Primary,
			"merge_enabled":  candidate.MergeEnabled,
			"merge_selected": candidate.MergeSelected,
		},
		"theme":  f.theme,
		"chrome": f.chrome,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// FilterToggle renders the "show more"/"show fewer" control for a filter
// list. hidden is the number of values the collapsed state conceals.
func (f *Fragments) FilterToggle(name string, hidden int, expanded bool) ([]byte, error) {
	out, err := f.engine.Render("templates/filter_toggle", map[string]any{
		"name":     name,
		"hidden":   hidden,
		"expanded": expanded,
		"theme":    f.theme,
		"chrome":   f.chrome,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// RemovalNotice renders the group-level "fields were removed" notice.
func (f *Fragments) RemovalNotice(group *formtree.Group) ([]byte, error) {
	if group == nil {
		return nil, fmt.Errorf("render: nil group")
	}
	out, err := f.engine.Render("templates/removal_notice", map[string]any{
		"prefix": group.Prefix,
		"theme":  f.theme,
		"chrome": f.chrome,
	})
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

func fieldContext(field *formtree.Field) map[string]any {
	attrs := make([]map[string]string, 0, len(field.Metadata))
	keys := make([]string, 0, len(field.Metadata))
	for key := range field.Metadata {
		if strings.HasPrefix(key, "data-") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		attrs = append(attrs, map[string]string{
			"name":  key,
			"value": field.Metadata[key],
		})
	}

	id := field.ID
	if id == "" {
		id = formtree.FieldID(field.Name)
	}

	return map[string]any{
		"name":     field.Name,
		"id":       id,
		"kind":     string(field.Kind),
		"label":    field.Label,
		"value":    field.Value,
		"options":  field.Options,
		"checked":  field.Checked,
		"hidden":   field.Hidden,
		"required": field.Required,
		"attrs":    attrs,
	}
}
