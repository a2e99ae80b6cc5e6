package spreadsheet

// Column is a header cell plus the style overrides applied to every cell of
// the column. Zero values fall back to the exporter defaults.
type Column struct {
	FieldName     string
	Label         string
	FontFamily    string
	FontSize      float64
	AlignHeader   string
	AlignData     string
	Format        string
	Width         float64
	Height        float64
	VerticalAlign string
	WrapText      bool
	BgColor       string
	BgColorData   string
}

// Filter is a label/value line printed above the table.
type Filter struct {
	Label string
	Value any
}

// MergedHeader spans Label across the header columns From..To.
type MergedHeader struct {
	Label string
	From  string
	To    string
}

type Sheet struct {
	Name          string
	Filters       []Filter
	MergedHeaders []MergedHeader
	Headers       []Column
	Data          []map[string]any
	AddTotals     bool
}

func (s *Sheet) columnIndex(fieldName string) (int, bool) {
	for i, h := range s.Headers {
		if h.FieldName == fieldName {
			return i + 1, true
		}
	}

	return 0, false
}
