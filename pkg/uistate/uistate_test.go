package uistate

import "testing"

func TestFilterList_BelowThresholdHasNoToggle(t *testing.T) {
	list := NewFilterList("languages", make([]FilterItem, 5))
	if list.Collapsible() {
		t.Fatal("five items should not collapse")
	}
	if len(list.Visible()) != 5 || list.HiddenCount() != 0 {
		t.Fatalf("visible=%d hidden=%d", len(list.Visible()), list.HiddenCount())
	}
}

func TestFilterList_CollapseAndExpand(t *testing.T) {
	list := NewFilterList("writers", make([]FilterItem, 12))
	if !list.Collapsible() {
		t.Fatal("twelve items should collapse")
	}
	if len(list.Visible()) != 5 {
		t.Fatalf("collapsed visible = %d", len(list.Visible()))
	}
	if list.HiddenCount() != 7 {
		t.Fatalf("hidden = %d", list.HiddenCount())
	}

	if !list.Toggle() {
		t.Fatal("toggle should expand")
	}
	if len(list.Visible()) != 12 || list.HiddenCount() != 0 {
		t.Fatalf("expanded visible=%d hidden=%d", len(list.Visible()), list.HiddenCount())
	}

	if list.Toggle() {
		t.Fatal("second toggle should collapse")
	}
	if len(list.Visible()) != 5 {
		t.Fatalf("re-collapsed visible = %d", len(list.Visible()))
	}
}

func TestTableView_Paging(t *testing.T) {
	view := NewTableView(25, 10)
	if view.PageCount() != 3 {
		t.Fatalf("pages = %d", view.PageCount())
	}

	if !view.Next() || view.Page != 1 {
		t.Fatalf("after Next: page %d", view.Page)
	}
	view.Goto(99)
	if view.Page != 2 {
		t.Fatalf("Goto clamps to last page, got %d", view.Page)
	}
	if view.Next() {
		t.Fatal("Next past last page")
	}

	from, to := view.Bounds()
	if from != 20 || to != 25 {
		t.Fatalf("bounds = [%d, %d)", from, to)
	}

	if !view.Prev() || view.Page != 1 {
		t.Fatalf("after Prev: page %d", view.Page)
	}
}

func TestTableView_UnpagedShowsEverything(t *testing.T) {
	view := NewTableView(7, 0)
	if view.PageCount() != 1 {
		t.Fatalf("pages = %d", view.PageCount())
	}
	from, to := view.Bounds()
	if from != 0 || to != 7 {
		t.Fatalf("bounds = [%d, %d)", from, to)
	}
}

func TestTableView_SortToggles(t *testing.T) {
	view := NewTableView(10, 10)
	view.Sort("date")
	if view.SortColumn != "date" || view.Direction != SortAsc {
		t.Fatalf("first sort: %s %d", view.SortColumn, view.Direction)
	}
	view.Sort("date")
	if view.Direction != SortDesc {
		t.Fatalf("second sort should flip: %d", view.Direction)
	}
	view.Sort("title")
	if view.SortColumn != "title" || view.Direction != SortAsc {
		t.Fatalf("new column resets direction: %s %d", view.SortColumn, view.Direction)
	}
}

func TestModalAndHelpToggle(t *testing.T) {
	var modal Modal
	modal.Show()
	if !modal.Open {
		t.Fatal("Show")
	}
	modal.Hide()
	if modal.Open {
		t.Fatal("Hide")
	}
	if !modal.Toggle() || modal.Toggle() {
		t.Fatal("Toggle sequence")
	}

	var help HelpToggle
	if !help.Toggle() || help.Toggle() {
		t.Fatal("help toggle sequence")
	}
}
