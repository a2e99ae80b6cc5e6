package spreadsheet

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	defaultFontFamily    = "Calibri"
	defaultFontSize      = 9
	defaultAlignHeader   = "center"
	defaultAlignData     = "general"
	defaultFormat        = "General"
	defaultWidth         = 20
	defaultHeight        = 20
	defaultVerticalAlign = "bottom"

	headerHeight = 30
)

type rowKind int

const (
	rowFilter rowKind = iota
	rowHeader
	rowData
	rowTotal
)

// cellFormat is the part of a style stored in the workbook style table.
type cellFormat struct {
	fontFamily string
	fontSize   float64
	bold       bool
	horizontal string
	vertical   string
	wrapText   bool
	numFormat  string
	fill       string
}

type cellStyle struct {
	cellFormat
	width  float64
	height float64
}

func resolveStyle(col Column, kind rowKind) cellStyle {
	s := cellStyle{
		cellFormat: cellFormat{
			fontFamily: or(col.FontFamily, defaultFontFamily),
			fontSize:   or(col.FontSize, defaultFontSize),
			bold:       true,
			vertical:   or(col.VerticalAlign, defaultVerticalAlign),
			wrapText:   col.WrapText,
			numFormat:  or(col.Format, defaultFormat),
		},
		width:  or(col.Width, defaultWidth),
		height: or(col.Height, defaultHeight),
	}

	alignHeader := or(col.AlignHeader, defaultAlignHeader)
	alignData := or(col.AlignData, defaultAlignData)

	switch kind {
	case rowHeader, rowTotal:
		s.horizontal = alignHeader
		s.fill = col.BgColor
		s.vertical = "center"
		s.wrapText = true
		s.height = headerHeight

		if kind == rowTotal {
			s.horizontal = alignData
			s.height = defaultHeight
		}

	case rowData:
		s.horizontal = alignData
		s.fill = col.BgColorData
		s.bold = false

	default:
		s.horizontal = alignData
		s.fill = ""
	}

	return s
}

func (f cellFormat) excelize() *excelize.Style {
	horizontal := f.horizontal
	if horizontal == defaultAlignData {
		horizontal = ""
	}

	style := &excelize.Style{
		Font: &excelize.Font{
			Family: f.fontFamily,
			Size:   f.fontSize,
			Bold:   f.bold,
		},
		Alignment: &excelize.Alignment{
			Horizontal: horizontal,
			Vertical:   f.vertical,
			WrapText:   f.wrapText,
		},
	}

	if f.numFormat != defaultFormat {
		numFormat := f.numFormat
		style.CustomNumFmt = &numFormat
	}

	if f.fill != "" {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"#" + strings.TrimPrefix(f.fill, "#")},
		}
	}

	return style
}

func or[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}

	return v
}
