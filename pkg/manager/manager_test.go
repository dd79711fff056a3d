package manager

import (
	"errors"
	"testing"

	"github.com/archivekit/formset/pkg/formtree"
	"github.com/archivekit/formset/pkg/widgets"
)

func identityGroup(maxRows int) *formtree.Group {
	return &formtree.Group{
		Prefix:     "identities",
		MaxRows:    maxRows,
		AddEnabled: true,
		Blueprints: map[string]*formtree.Row{
			"identity": {
				FormType: "identity",
				Fields: []*formtree.Field{
					{
						Name: "identities-__prefix__-display_name",
						Kind: formtree.KindText,
					},
					{
						Name: "identities-__prefix__-preferred_identity",
						Kind: formtree.KindCheckbox,
					},
					{
						Name: "identities-__prefix__-DELETE",
						Kind: formtree.KindCheckbox,
					},
				},
				Groups: []*formtree.Group{
					{
						Prefix:     "identities-__prefix__-name_entries",
						AddEnabled: true,
						Blueprints: map[string]*formtree.Row{
							"name_entry": {
								FormType: "name_entry",
								Fields: []*formtree.Field{
									{
										Name: "identities-__prefix__-name_entries-__prefix__-display_name",
										Kind: formtree.KindText,
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestAddRow_RenumbersAndCounts(t *testing.T) {
	group := identityGroup(0)
	group.TotalRows = 2
	m := New()

	row, err := m.AddRow(group, "identity")
	if err != nil {
		t.Fatalf("AddRow: %v", err)
	}

	if group.TotalRows != 3 {
		t.Fatalf("TotalRows = %d, want 3", group.TotalRows)
	}
	if len(group.Rows) != 1 || group.Rows[0] != row {
		t.Fatalf("row not appended to group")
	}
	if row.Index != 2 {
		t.Fatalf("row index = %d, want 2", row.Index)
	}

	wantNames := []string{
		"identities-2-display_name",
		"identities-2-preferred_identity",
		"identities-2-DELETE",
	}
	for i, field := range row.Fields {
		if field.Name != wantNames[i] {
			t.Fatalf("field %d name = %q, want %q", i, field.Name, wantNames[i])
		}
		if field.ID != formtree.FieldID(wantNames[i]) {
			t.Fatalf("field %d id = %q, want %q", i, field.ID, formtree.FieldID(wantNames[i]))
		}
	}
}

func TestAddRow_NestedGroupKeepsHierarchy(t *testing.T) {
	group := identityGroup(0)
	m := New()

	row, err := m.AddRow(group, "identity")
	if err != nil {
		t.Fatalf("AddRow outer: %v", err)
	}

	nested := row.Groups[0]
	if nested.Prefix != "identities-0-name_entries" {
		t.Fatalf("nested prefix = %q", nested.Prefix)
	}
	if got := nested.TotalControlName(); got != "identities-0-name_entries-TOTAL_FORMS" {
		t.Fatalf("nested counter control = %q", got)
	}

	entry, err := m.AddRow(nested, "name_entry")
	if err != nil {
		t.Fatalf("AddRow nested: %v", err)
	}
	if entry.Fields[0].Name != "identities-0-name_entries-0-display_name" {
		t.Fatalf("nested field name = %q", entry.Fields[0].Name)
	}
}

func TestAddRow_DisablesAddControlBeforeBound(t *testing.T) {
	group := identityGroup(3)
	group.TotalRows = 1
	m := New()

	if _, err := m.AddRow(group, "identity"); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	// 2 rows with a bound of 3: the next add would reach the bound, so the
	// control goes dark now.
	if group.AddEnabled {
		t.Fatal("add control should be disabled pre-emptively")
	}
}

func TestAddRow_GroupFull(t *testing.T) {
	group := identityGroup(1)
	group.TotalRows = 1
	m := New()

	_, err := m.AddRow(group, "identity")
	if !errors.Is(err, ErrGroupFull) {
		t.Fatalf("want ErrGroupFull, got %v", err)
	}
	if group.TotalRows != 1 {
		t.Fatalf("TotalRows mutated on failed add: %d", group.TotalRows)
	}
}

func TestAddRow_UnknownFormType(t *testing.T) {
	group := identityGroup(0)
	if _, err := New().AddRow(group, "place"); !errors.Is(err, ErrUnknownFormType) {
		t.Fatalf("want ErrUnknownFormType, got %v", err)
	}
}

func TestAddRow_InitialisesWidgets(t *testing.T) {
	group := &formtree.Group{
		Prefix:     "transcriptions",
		AddEnabled: true,
		Blueprints: map[string]*formtree.Row{
			"transcription": {
				Fields: []*formtree.Field{
					{
						Name: "transcriptions-__prefix__-transcription",
						Kind: formtree.KindRichText,
					},
				},
			},
		},
	}

	m := New(WithWidgets(widgets.NewRegistry()))
	row, err := m.AddRow(group, "transcription")
	if err != nil {
		t.Fatalf("AddRow: %v", err)
	}

	field := row.Fields[0]
	if field.Metadata["widget"] != widgets.WidgetRichText {
		t.Fatalf("widget not resolved on clone: %q", field.Metadata["widget"])
	}
	if field.Metadata[widgets.MetaEditorID] != "id_transcriptions-0-transcription" {
		t.Fatalf("editor binding = %q", field.Metadata[widgets.MetaEditorID])
	}
}

func TestToggleRowDeletion_RoundTrips(t *testing.T) {
	row := &formtree.Row{
		Index: 0,
		Fields: []*formtree.Field{
			{Name: "identities-0-display_name", Kind: formtree.KindText},
			{Name: "identities-0-DELETE", Kind: formtree.KindCheckbox},
		},
		Trigger: formtree.TriggerDelete,
	}
	m := New()

	m.ToggleRowDeletion(row)
	if !row.HeaderInactive || !row.BodyHidden {
		t.Fatal("row not marked deleted")
	}
	if !row.DeleteField().Checked {
		t.Fatal("DELETE checkbox not set")
	}
	if row.Trigger != formtree.TriggerUndo {
		t.Fatalf("trigger = %q, want undo", row.Trigger)
	}

	m.ToggleRowDeletion(row)
	if row.HeaderInactive || row.BodyHidden {
		t.Fatal("second toggle did not restore visibility")
	}
	if row.DeleteField().Checked {
		t.Fatal("second toggle did not restore DELETE flag")
	}
	if row.Trigger != formtree.TriggerDelete {
		t.Fatalf("trigger = %q, want delete", row.Trigger)
	}
}

func TestToggleRowDeletion_ClearsExclusiveFlags(t *testing.T) {
	preferred := &formtree.Field{
		Name:    "identities-0-preferred_identity",
		Kind:    formtree.KindCheckbox,
		Checked: true,
	}
	row := &formtree.Row{Fields: []*formtree.Field{preferred}}
	row.SetHighlight(formtree.FlagPreferred, true)

	New().ToggleRowDeletion(row)
	if preferred.Checked {
		t.Fatal("preferred flag survived deletion")
	}
	if row.Highlighted(formtree.FlagPreferred) {
		t.Fatal("highlight survived deletion")
	}
}

func TestToggleFieldDeletion(t *testing.T) {
	group := &formtree.Group{Prefix: "identities"}
	field := &formtree.Field{Name: "identities-0-date_from", Kind: formtree.KindText}

	New().ToggleFieldDeletion(group, field)
	if !field.Hidden {
		t.Fatal("field not hidden")
	}
	if !group.RemovalNotice {
		t.Fatal("removal notice not raised")
	}
}
