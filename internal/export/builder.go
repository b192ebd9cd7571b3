package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// sheetBuilder appends logical blocks (title, metadata, header, data,
// group) to a worksheet while tracking a cursor row, so styling never
// depends on hard-coded row offsets. It also records the longest rendered
// string per column for width sizing.
type sheetBuilder struct {
	f       *excelize.File
	row     int
	cols    int
	longest []int
	dataIdx int
	err     error

	titleStyle      int
	metaLabelStyle  int
	headerStyle     int
	altRowStyle     int
	groupStyle      int
	groupTotalStyle int
}

func newSheetBuilder(cols int) (*sheetBuilder, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	b := &sheetBuilder{f: f, row: 1, cols: cols, longest: make([]int, cols)}

	var err error
	b.titleStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	b.metaLabelStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	b.headerStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return nil, err
	}
	b.altRowStyle, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
	})
	if err != nil {
		return nil, err
	}
	b.groupStyle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E2EFDA"}},
	})
	if err != nil {
		return nil, err
	}
	b.groupTotalStyle, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Italic: true}})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (b *sheetBuilder) cell(col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil && b.err == nil {
		b.err = err
	}
	return name
}

func (b *sheetBuilder) note(col int, v interface{}) {
	if col < len(b.longest) {
		if n := len(rendered(v)); n > b.longest[col] {
			b.longest[col] = n
		}
	}
}

func rendered(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// addTitle writes the bold title merged across all data columns.
func (b *sheetBuilder) addTitle(title string) {
	if b.err != nil {
		return
	}
	start := b.cell(1, b.row)
	end := b.cell(b.cols, b.row)
	if err := b.f.SetCellValue(sheetName, start, title); err != nil {
		b.err = err
		return
	}
	if err := b.f.MergeCell(sheetName, start, end); err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellStyle(sheetName, start, end, b.titleStyle); err != nil {
		b.err = err
		return
	}
	b.row++
}

// addMeta writes a bold label in the first column and its value in the second.
func (b *sheetBuilder) addMeta(label, value string) {
	if b.err != nil {
		return
	}
	lc := b.cell(1, b.row)
	vc := b.cell(2, b.row)
	if err := b.f.SetCellValue(sheetName, lc, label); err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellValue(sheetName, vc, value); err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellStyle(sheetName, lc, lc, b.metaLabelStyle); err != nil {
		b.err = err
		return
	}
	b.note(0, label)
	b.note(1, value)
	b.row++
}

func (b *sheetBuilder) blankRow() {
	b.row++
}

// addHeader writes the column header row and restarts data-row banding.
func (b *sheetBuilder) addHeader(headers []string) {
	if b.err != nil {
		return
	}
	for i, h := range headers {
		if err := b.f.SetCellValue(sheetName, b.cell(i+1, b.row), h); err != nil {
			b.err = err
			return
		}
		b.note(i, h)
	}
	start := b.cell(1, b.row)
	end := b.cell(len(headers), b.row)
	if err := b.f.SetCellStyle(sheetName, start, end, b.headerStyle); err != nil {
		b.err = err
		return
	}
	b.row++
	b.dataIdx = 0
}

// addRow writes one data row, shading every other row since the last header.
func (b *sheetBuilder) addRow(cells []interface{}) {
	if b.err != nil {
		return
	}
	for i, v := range cells {
		if err := b.f.SetCellValue(sheetName, b.cell(i+1, b.row), v); err != nil {
			b.err = err
			return
		}
		b.note(i, v)
	}
	if b.dataIdx%2 == 1 {
		start := b.cell(1, b.row)
		end := b.cell(len(cells), b.row)
		if err := b.f.SetCellStyle(sheetName, start, end, b.altRowStyle); err != nil {
			b.err = err
			return
		}
	}
	b.dataIdx++
	b.row++
}

// addGroupRow writes a project-name banner spanning all data columns.
func (b *sheetBuilder) addGroupRow(title string) {
	if b.err != nil {
		return
	}
	start := b.cell(1, b.row)
	end := b.cell(b.cols, b.row)
	if err := b.f.SetCellValue(sheetName, start, title); err != nil {
		b.err = err
		return
	}
	if err := b.f.MergeCell(sheetName, start, end); err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellStyle(sheetName, start, end, b.groupStyle); err != nil {
		b.err = err
		return
	}
	b.note(0, title)
	b.row++
}

// addGroupTotal writes the per-group total-time row.
func (b *sheetBuilder) addGroupTotal(label, value string) {
	if b.err != nil {
		return
	}
	lc := b.cell(1, b.row)
	vc := b.cell(2, b.row)
	if err := b.f.SetCellValue(sheetName, lc, label); err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellValue(sheetName, vc, value); err != nil {
		b.err = err
		return
	}
	if err := b.f.SetCellStyle(sheetName, lc, vc, b.groupTotalStyle); err != nil {
		b.err = err
		return
	}
	b.note(0, label)
	b.note(1, value)
	b.row++
}

// finish applies column widths: the larger of the per-column floor and the
// longest rendered string seen in that column, so content never clips.
func (b *sheetBuilder) finish(floors []float64) (*bytes.Buffer, error) {
	if b.err != nil {
		return nil, b.err
	}
	for i := 0; i < b.cols; i++ {
		floor := 10.0
		if i < len(floors) {
			floor = floors[i]
		}
		width := float64(b.longest[i]) + 2
		if width < floor {
			width = floor
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := b.f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, err
		}
	}
	buf, err := b.f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func (b *sheetBuilder) close() {
	_ = b.f.Close()
}
