package viewdef

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/archivekit/formset/pkg/formtree"
	"github.com/archivekit/formset/pkg/manager"
)

const identitiesYAML = `
groups:
  identities:
    max_rows: 6
    forms:
      identity:
        fields:
          - name: display_name
            kind: text
            label: Display name
            required: true
          - name: preferred_identity
            kind: checkbox
            exclusive: preferred
          - name: authority
            kind: remote-select
            widget:
              autocomplete.url: /autocomplete/authority/
              data-placeholder: Search authorities
          - name: DELETE
            kind: checkbox
        groups:
          name_entries:
            forms:
              name_entry:
                fields:
                  - name: display_name
                    kind: text
                  - name: authorised_form
                    kind: checkbox
                    exclusive: authorised
`

func testFS(t *testing.T) *Loader {
	t.Helper()
	return NewLoader(fstest.MapFS{
		"views/identities.yaml": &fstest.MapFile{Data: []byte(identitiesYAML)},
		"views/dates.json": &fstest.MapFile{Data: []byte(`{
			"groups": {
				"dates": {
					"forms": {
						"date": {
							"fields": [
								{"name": "date_value", "kind": "text"},
								{"name": "DELETE", "kind": "checkbox"}
							]
						}
					}
				}
			}
		}`)},
		"views/identities_again.yaml": &fstest.MapFile{Data: []byte(identitiesYAML)},
		"views/bad_kind.yaml": &fstest.MapFile{Data: []byte(`
groups:
  broken:
    forms:
      broken:
        fields:
          - name: x
            kind: dropdown
`)},
	})
}

func TestLoadGroupsBuildsBlueprintNames(t *testing.T) {
	groups, err := testFS(t).LoadGroups("views/identities.yaml")
	if err != nil {
		t.Fatalf("LoadGroups: %v", err)
	}
	group, ok := groups["identities"]
	if !ok {
		t.Fatalf("missing identities group, got %v", groups)
	}
	if group.MaxRows != 6 {
		t.Fatalf("MaxRows = %d, want 6", group.MaxRows)
	}
	if !group.AddEnabled {
		t.Fatal("AddEnabled should start true")
	}
	if group.TotalControlName() != "identities-TOTAL_FORMS" {
		t.Fatalf("total control = %q", group.TotalControlName())
	}

	blueprint, ok := group.Blueprint("identity")
	if !ok {
		t.Fatal("missing identity blueprint")
	}
	name := blueprint.Fields[0]
	if name.Name != "identities-__prefix__-display_name" {
		t.Fatalf("field name = %q", name.Name)
	}
	if name.ID != "id_identities-__prefix__-display_name" {
		t.Fatalf("field id = %q", name.ID)
	}
	if !name.Required {
		t.Fatal("display_name should be required")
	}

	preferred := blueprint.Fields[1]
	if got := preferred.Exclusive(); got != formtree.FlagPreferred {
		t.Fatalf("Exclusive() = %q, want %q", got, formtree.FlagPreferred)
	}

	authority := blueprint.Fields[2]
	if authority.Kind != formtree.KindRemoteSelect {
		t.Fatalf("authority kind = %q", authority.Kind)
	}
	if authority.Metadata["autocomplete.url"] != "/autocomplete/authority/" {
		t.Fatalf("widget metadata not carried: %v", authority.Metadata)
	}

	if len(blueprint.Groups) != 1 {
		t.Fatalf("nested groups = %d, want 1", len(blueprint.Groups))
	}
	nested := blueprint.Groups[0]
	if nested.Prefix != "identities-__prefix__-name_entries" {
		t.Fatalf("nested prefix = %q", nested.Prefix)
	}
	if nested.Parent != blueprint {
		t.Fatal("nested group should point back at its blueprint row")
	}
	nestedBlueprint, ok := nested.Blueprint("name_entry")
	if !ok {
		t.Fatal("missing name_entry blueprint")
	}
	if got := nestedBlueprint.Fields[0].Name; got != "identities-__prefix__-name_entries-__prefix__-display_name" {
		t.Fatalf("nested field name = %q", got)
	}
}

func TestJSONDefinitionsLoad(t *testing.T) {
	groups, err := testFS(t).LoadGroups("views/dates.json")
	if err != nil {
		t.Fatalf("LoadGroups: %v", err)
	}
	group := groups["dates"]
	if group == nil {
		t.Fatal("missing dates group")
	}
	if group.MaxRows != 0 {
		t.Fatalf("MaxRows = %d, want 0 (unbounded)", group.MaxRows)
	}
	blueprint, _ := group.Blueprint("date")
	if blueprint == nil || blueprint.Fields[0].Name != "dates-__prefix__-date_value" {
		t.Fatalf("unexpected blueprint: %+v", blueprint)
	}
}

func TestDuplicateGroupAcrossFiles(t *testing.T) {
	_, err := testFS(t).LoadGroups("views/identities.yaml", "views/identities_again.yaml")
	if !errors.Is(err, ErrDuplicateGroup) {
		t.Fatalf("err = %v, want ErrDuplicateGroup", err)
	}
}

func TestUnknownKindRejected(t *testing.T) {
	_, err := testFS(t).Load("views/bad_kind.yaml")
	if err == nil || !strings.Contains(err.Error(), `unknown kind "dropdown"`) {
		t.Fatalf("err = %v, want unknown kind", err)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := testFS(t).Load("views/nope.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// Built groups must be usable by the manager without further fix-up.
func TestBuiltGroupFeedsManager(t *testing.T) {
	groups, err := testFS(t).LoadGroups("views/identities.yaml")
	if err != nil {
		t.Fatalf("LoadGroups: %v", err)
	}
	group := groups["identities"]

	mgr := manager.New()
	row, err := mgr.AddRow(group, "identity")
	if err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if got := row.Fields[0].Name; got != "identities-0-display_name" {
		t.Fatalf("row field name = %q", got)
	}
	if group.TotalRows != 1 {
		t.Fatalf("TotalRows = %d, want 1", group.TotalRows)
	}
	if got := row.Groups[0].Prefix; got != "identities-0-name_entries" {
		t.Fatalf("nested prefix after add = %q", got)
	}
}
