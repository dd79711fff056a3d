package formtree

// Clone deep-copies a row, including its fields and any nested groups with
// their blueprints. Highlight state is not copied; a fresh clone owns no
// exclusive selection.
func (r *Row) Clone() *Row {
	if r == nil {
		return nil
	}
	clone := &Row{
		Index:          r.Index,
		FormType:       r.FormType,
		HeaderInactive: r.HeaderInactive,
		BodyHidden:     r.BodyHidden,
		Trigger:        r.Trigger,
	}
	if len(r.Fields) > 0 {
		clone.Fields = make([]*Field, len(r.Fields))
		for i, field := range r.Fields {
			clone.Fields[i] = field.clone()
		}
	}
	if len(r.Groups) > 0 {
		clone.Groups = make([]*Group, len(r.Groups))
		for i, group := range r.Groups {
			nested := group.clone()
			nested.Parent = clone
			clone.Groups[i] = nested
		}
	}
	return clone
}

func (f *Field) clone() *Field {
	if f == nil {
		return nil
	}
	clone := *f
	if len(f.Options) > 0 {
		clone.Options = append([]string(nil), f.Options...)
	}
	if len(f.Metadata) > 0 {
		clone.Metadata = make(map[string]string, len(f.Metadata))
		for key, value := range f.Metadata {
			clone.Metadata[key] = value
		}
	}
	return &clone
}

func (g *Group) clone() *Group {
	if g == nil {
		return nil
	}
	clone := &Group{
		Prefix:        g.Prefix,
		TotalRows:     g.TotalRows,
		MaxRows:       g.MaxRows,
		AddEnabled:    g.AddEnabled,
		RemovalNotice: g.RemovalNotice,
	}
	if len(g.Rows) > 0 {
		clone.Rows = make([]*Row, len(g.Rows))
		for i, row := range g.Rows {
			clone.Rows[i] = row.Clone()
		}
	}
	if len(g.Blueprints) > 0 {
		clone.Blueprints = make(map[string]*Row, len(g.Blueprints))
		for formType, row := range g.Blueprints {
			clone.Blueprints[formType] = row.Clone()
		}
	}
	return clone
}

// WalkFields visits every field in the row, including fields of nested
// groups' rows and blueprints, in document order.
func (r *Row) WalkFields(visit func(*Field)) {
	if r == nil || visit == nil {
		return
	}
	for _, field := range r.Fields {
		visit(field)
	}
	for _, group := range r.Groups {
		for _, row := range group.Rows {
			row.WalkFields(visit)
		}
		for _, row := range group.Blueprints {
			row.WalkFields(visit)
		}
	}
}

// WalkGroups visits the row's nested groups depth-first.
func (r *Row) WalkGroups(visit func(*Group)) {
	if r == nil || visit == nil {
		return
	}
	for _, group := range r.Groups {
		visit(group)
		for _, row := range group.Rows {
			row.WalkGroups(visit)
		}
	}
}
