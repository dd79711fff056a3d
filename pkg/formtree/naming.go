package formtree

import (
	"strconv"
	"strings"
)

// Placeholder is the index token blueprint fields carry instead of a numeric
// position. It matches the token the server emits in empty-form markup.
const Placeholder = "__prefix__"

// Management-control name markers. Each group's counter controls end in
// these fixed tokens.
const (
	TotalControlSuffix = "-TOTAL_FORMS"
	MaxControlSuffix   = "-MAX_NUM_FORMS"
)

// IDPrefix is prepended to a field name to form its element identifier.
const IDPrefix = "id_"

// DerivedPrefix extracts a group prefix from the name of its total-count
// control: the substring preceding the total-count marker. The result
// carries the full nesting hierarchy of group names, which is what makes
// renumbering work for nested groups.
func DerivedPrefix(totalControlName string) string {
	if idx := strings.LastIndex(totalControlName, TotalControlSuffix); idx >= 0 {
		return totalControlName[:idx]
	}
	return totalControlName
}

// ApplyIndex rewrites a blueprint identifier for a concrete row position.
// Everything up to and including the last occurrence of the placeholder
// token is replaced by `<prefix>-<index>`; names without the token are
// returned unchanged. Replacing at the last occurrence is what keeps nested
// blueprints correct: the prefix derived from the enclosing group's counter
// control already contains the outer indices.
func ApplyIndex(name, prefix string, index int) string {
	at := strings.LastIndex(name, Placeholder)
	if at < 0 {
		return name
	}
	return prefix + "-" + strconv.Itoa(index) + name[at+len(Placeholder):]
}

// ApplyIndexFirst is the variant used for nested group prefixes: only the
// first placeholder is resolved, so deeper placeholders survive the outer
// renumbering and are settled when rows are added to the nested group.
func ApplyIndexFirst(name, prefix string, index int) string {
	at := strings.Index(name, Placeholder)
	if at < 0 {
		return name
	}
	return prefix + "-" + strconv.Itoa(index) + name[at+len(Placeholder):]
}

// FieldID derives the element identifier for a field name.
func FieldID(name string) string {
	return IDPrefix + name
}

// HasPlaceholder reports whether an identifier still carries the blueprint
// placeholder token.
func HasPlaceholder(name string) bool {
	return strings.Contains(name, Placeholder)
}
