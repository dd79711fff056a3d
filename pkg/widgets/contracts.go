package widgets

import (
	"strconv"
	"strings"

	"github.com/archivekit/formset/pkg/formtree"
	"github.com/archivekit/formset/pkg/uistate"
)

// Metadata keys shared between view definitions, initialisers, and the
// fragment renderer. The data-* keys mirror the attributes the
// searchable-select plugin reads when it binds.
const (
	MetaAutocompleteURL = "autocomplete.url"
	MetaPlaceholder     = "autocomplete.placeholder"

	MetaAjaxURL    = "data-ajax--url"
	MetaAjaxType   = "data-ajax--type"
	MetaAjaxCache  = "data-ajax--cache"
	MetaAllowClear = "data-allow-clear"
	MetaDataPlace  = "data-placeholder"
	MetaEditorID   = "editor.bind"

	MetaSliderMin = "slider.min"
	MetaSliderMax = "slider.max"

	MetaDataSliderRange  = "data-slider-range"
	MetaDataSliderMin    = "data-slider-min"
	MetaDataSliderMax    = "data-slider-max"
	MetaDataSliderValues = "data-slider-values"
)

// Default slider bounds when a view definition carries no hints.
const (
	DefaultSliderMin = 0
	DefaultSliderMax = 100
)

// InitRemoteSelect stamps the attributes a remote-lookup searchable select
// needs: the lookup URL, GET transport, response caching, and whether the
// selection may be cleared (it may, unless the field is required).
func InitRemoteSelect(field *formtree.Field) {
	if field == nil {
		return
	}
	meta := ensureMetadata(field)
	if url := meta[MetaAutocompleteURL]; url != "" {
		meta[MetaAjaxURL] = url
	}
	meta[MetaAjaxType] = "GET"
	meta[MetaAjaxCache] = "true"
	meta[MetaAllowClear] = strconv.FormatBool(!field.Required)
	if placeholder := meta[MetaPlaceholder]; placeholder != "" {
		meta[MetaDataPlace] = placeholder
	}
}

// InitSearchSelect configures a plain searchable select over the field's
// static options; no remote lookup is involved.
func InitSearchSelect(field *formtree.Field) {
	if field == nil {
		return
	}
	meta := ensureMetadata(field)
	meta[MetaAllowClear] = strconv.FormatBool(!field.Required)
}

// InitRichText records the element identifier the rich-text editor binds
// to. The editor plugin itself is a collaborator; binding happens when the
// fragment reaches the page.
func InitRichText(field *formtree.Field) {
	if field == nil {
		return
	}
	if field.ID == "" {
		field.ID = formtree.FieldID(field.Name)
	}
	ensureMetadata(field)[MetaEditorID] = field.ID
}

func ensureMetadata(field *formtree.Field) map[string]string {
	if field.Metadata == nil {
		field.Metadata = make(map[string]string)
	}
	return field.Metadata
}

// InitSlider stamps the range-slider contract onto the field: bounds from
// the view definition's hints (or the defaults), and the current handle
// positions from the field value. The value round-trips as "lower,upper".
func InitSlider(field *formtree.Field) {
	if field == nil {
		return
	}
	meta := ensureMetadata(field)
	min := metaInt(meta, MetaSliderMin, DefaultSliderMin)
	max := metaInt(meta, MetaSliderMax, DefaultSliderMax)
	lower, upper := sliderValues(field.Value, min, max)

	meta[MetaDataSliderRange] = "true"
	meta[MetaDataSliderMin] = strconv.Itoa(min)
	meta[MetaDataSliderMax] = strconv.Itoa(max)
	meta[MetaDataSliderValues] = strconv.Itoa(lower) + "," + strconv.Itoa(upper)
}

// SliderConfig is the capability contract of the range-slider plugin used
// by the year filter: init({range, min, max, values, onSlide}).
type SliderConfig struct {
	Range  bool
	Min    int
	Max    int
	Values [2]int

	// OnSlide receives the handle positions while the user drags.
	OnSlide func(lower, upper int)
}

// SliderContract replays the plugin init payload for an initialised slider
// field. The returned OnSlide writes dragged handle positions back into the
// field's value so the selection survives submission.
func SliderContract(field *formtree.Field) SliderConfig {
	cfg := SliderConfig{Range: true, Min: DefaultSliderMin, Max: DefaultSliderMax}
	if field == nil {
		return cfg
	}
	if field.Metadata != nil {
		cfg.Min = metaInt(field.Metadata, MetaDataSliderMin, cfg.Min)
		cfg.Max = metaInt(field.Metadata, MetaDataSliderMax, cfg.Max)
	}
	lower, upper := sliderValues(field.Value, cfg.Min, cfg.Max)
	cfg.Values = [2]int{lower, upper}
	cfg.OnSlide = func(lower, upper int) {
		field.Value = strconv.Itoa(lower) + "," + strconv.Itoa(upper)
		if field.Metadata != nil {
			field.Metadata[MetaDataSliderValues] = field.Value
		}
	}
	return cfg
}

// TableConfig is the capability contract of the sortable/pageable table
// plugin: init({widgets, pager}).
type TableConfig struct {
	Widgets []string
	Pager   TablePagerConfig
}

// TablePagerConfig configures the table plugin's pager block.
type TablePagerConfig struct {
	Container string
	Size      int
}

// View binds the pager block to the display state the editor tracks for a
// table of rowCount rows.
func (c TableConfig) View(rowCount int) *uistate.TableView {
	return &uistate.TableView{
		RowCount: rowCount,
		PageSize: c.Pager.Size,
	}
}

func metaInt(meta map[string]string, key string, fallback int) int {
	raw, ok := meta[key]
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}

// sliderValues parses a "lower,upper" value, clamping to the bounds. A
// missing or malformed value spans the full range.
func sliderValues(value string, min, max int) (int, int) {
	lower, upper := min, max
	parts := strings.SplitN(value, ",", 2)
	if len(parts) == 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
			lower = n
		}
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			upper = n
		}
	}
	if lower < min {
		lower = min
	}
	if upper > max {
		upper = max
	}
	if lower > upper {
		lower, upper = upper, lower
	}
	return lower, upper
}
