package formtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDerivedPrefix(t *testing.T) {
	cases := []struct {
		name    string
		control string
		expect  string
	}{
		{
			name:    "flat group",
			control: "identities-TOTAL_FORMS",
			expect:  "identities",
		},
		{
			name:    "nested group",
			control: "identities-0-name_entries-TOTAL_FORMS",
			expect:  "identities-0-name_entries",
		},
		{
			name:    "no marker",
			control: "identities",
			expect:  "identities",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DerivedPrefix(tc.control); got != tc.expect {
				t.Fatalf("DerivedPrefix(%q) = %q, want %q", tc.control, got, tc.expect)
			}
		})
	}
}

func TestApplyIndex(t *testing.T) {
	cases := []struct {
		name   string
		in     string
		prefix string
		index  int
		expect string
	}{
		{
			name:   "flat field",
			in:     "identities-__prefix__-display_name",
			prefix: "identities",
			index:  3,
			expect: "identities-3-display_name",
		},
		{
			name:   "nested blueprint field keeps full hierarchy",
			in:     "identities-__prefix__-name_entries-__prefix__-display_name",
			prefix: "identities-0-name_entries",
			index:  2,
			expect: "identities-0-name_entries-2-display_name",
		},
		{
			name:   "no placeholder untouched",
			in:     "identities-0-display_name",
			prefix: "identities",
			index:  5,
			expect: "identities-0-display_name",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyIndex(tc.in, tc.prefix, tc.index); got != tc.expect {
				t.Fatalf("ApplyIndex(%q) = %q, want %q", tc.in, got, tc.expect)
			}
		})
	}
}

func TestApplyIndexFirst_PreservesDeepPlaceholders(t *testing.T) {
	got := ApplyIndexFirst("identities-__prefix__-name_entries", "identities", 2)
	if got != "identities-2-name_entries" {
		t.Fatalf("unexpected prefix: %q", got)
	}

	got = ApplyIndexFirst(
		"identities-__prefix__-name_entries-__prefix__-parts", "identities", 1)
	if got != "identities-1-name_entries-__prefix__-parts" {
		t.Fatalf("deep placeholder lost: %q", got)
	}
}

func TestRowClone_Independent(t *testing.T) {
	original := &Row{
		FormType: "name_entry",
		Fields: []*Field{
			{
				Name:     "identities-__prefix__-display_name",
				Kind:     KindText,
				Metadata: map[string]string{"autocomplete.url": "/search"},
				Options:  []string{"a", "b"},
			},
		},
		Groups: []*Group{
			{
				Prefix: "identities-__prefix__-name_entries",
				Blueprints: map[string]*Row{
					"part": {Fields: []*Field{{Name: "identities-__prefix__-name_entries-__prefix__-part"}}},
				},
				AddEnabled: true,
			},
		},
	}

	clone := original.Clone()
	if diff := cmp.Diff(original.Fields[0], clone.Fields[0]); diff != "" {
		t.Fatalf("cloned field differs (-want +got):\n%s", diff)
	}

	clone.Fields[0].Name = "changed"
	clone.Fields[0].Metadata["autocomplete.url"] = "/other"
	clone.Groups[0].Blueprints["part"].Fields[0].Name = "changed"

	if original.Fields[0].Name != "identities-__prefix__-display_name" {
		t.Fatal("clone shares field with original")
	}
	if original.Fields[0].Metadata["autocomplete.url"] != "/search" {
		t.Fatal("clone shares metadata with original")
	}
	if original.Groups[0].Blueprints["part"].Fields[0].Name == "changed" {
		t.Fatal("clone shares nested blueprint with original")
	}
	if clone.Groups[0].Parent != clone {
		t.Fatal("nested group parent not rewired to clone")
	}
}

func TestFieldExclusive(t *testing.T) {
	preferred := &Field{Name: "identities-0-preferred_identity", Kind: KindCheckbox}
	if got := preferred.Exclusive(); got != FlagPreferred {
		t.Fatalf("preferred flag not detected: %q", got)
	}

	authorised := &Field{Name: "identities-0-name_entries-1-authorised_form", Kind: KindCheckbox}
	if got := authorised.Exclusive(); got != FlagAuthorised {
		t.Fatalf("authorised flag not detected: %q", got)
	}

	explicit := &Field{
		Name:     "identities-0-primary_contact",
		Kind:     KindCheckbox,
		Metadata: map[string]string{"exclusive": "preferred"},
	}
	if got := explicit.Exclusive(); got != FlagPreferred {
		t.Fatalf("explicit metadata ignored: %q", got)
	}

	if got := (&Field{Name: "identities-0-preferred_identity", Kind: KindText}).Exclusive(); got != "" {
		t.Fatalf("non-checkbox resolved as exclusive: %q", got)
	}
}

func TestRowHighlight(t *testing.T) {
	row := &Row{}
	if row.Highlighted(FlagPreferred) {
		t.Fatal("fresh row highlighted")
	}
	row.SetHighlight(FlagPreferred, true)
	if !row.Highlighted(FlagPreferred) {
		t.Fatal("highlight not set")
	}
	if row.Highlighted(FlagAuthorised) {
		t.Fatal("highlight leaked across kinds")
	}
	row.SetHighlight(FlagPreferred, false)
	if row.Highlighted(FlagPreferred) {
		t.Fatal("highlight not cleared")
	}
}
