package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/mr-compare/internal/report"
	"github.com/xuri/excelize/v2"
)

const (
	partnersSheet = "Partners"
	linksSheet    = "Search Links"
)

var partnerColumns = []string{
	"Partner", "Program", "Category", "Ratio", "Converted", "Unit", "Cash Value (KRW)", "Above Gift", "Badge", "Booking URL",
}

// XLSXFormat writes the report to an Excel workbook with one sheet for the
// partner table and one for the search links.
func XLSXFormat(path string, r report.Report) error {
	f, err := buildWorkbook(r)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// setCells writes values into consecutive rows of column col starting at row.
func setCells(f *excelize.File, sheet, col string, row int, values ...interface{}) error {
	for i, v := range values {
		if err := f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row+i), v); err != nil {
			return err
		}
	}
	return nil
}

// buildWorkbook returns an open workbook; the file is closed on any error.
func buildWorkbook(r report.Report) (_ *excelize.File, err error) {
	f := excelize.NewFile()
	defer func() {
		if err != nil {
			_ = f.Close()
		}
	}()

	if err := f.SetSheetName("Sheet1", partnersSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(linksSheet); err != nil {
		return nil, err
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	numberStyleID, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(partnerColumns))
	for i, title := range partnerColumns {
		header[i] = title
	}
	if err := f.SetSheetRow(partnersSheet, "A1", &header); err != nil {
		return nil, err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(partnerColumns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(partnersSheet, "A1", lastHeader, headerStyleID); err != nil {
		return nil, err
	}

	for i, e := range r.Partners {
		badge := ""
		if e.Badge != nil {
			badge = e.Badge.Label
		}
		name, program := e.Partner.ShortName()
		values := []interface{}{
			name,
			program,
			e.Partner.Category.Label(),
			e.Ratio,
			e.Miles,
			e.Partner.Category.Unit(),
			e.CashValue,
			e.AboveGift,
			badge,
			e.BookingURL,
		}
		if err := f.SetSheetRow(partnersSheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return nil, err
		}
	}
	if n := len(r.Partners); n > 0 {
		if err := f.SetCellStyle(partnersSheet, "E2", fmt.Sprintf("E%d", n+1), numberStyleID); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(partnersSheet, "G2", fmt.Sprintf("G%d", n+1), numberStyleID); err != nil {
			return nil, err
		}
	}

	summaryRow := len(r.Partners) + 3
	if err := setCells(f, partnersSheet, "A", summaryRow, "Balance", "Gift card value (KRW)"); err != nil {
		return nil, err
	}
	if err := setCells(f, partnersSheet, "B", summaryRow, r.Balance, r.GiftValue); err != nil {
		return nil, err
	}

	linkHeader := []interface{}{"Tool", "Description", "URL"}
	if err := f.SetSheetRow(linksSheet, "A1", &linkHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(linksSheet, "A1", "C1", headerStyleID); err != nil {
		return nil, err
	}
	for i, l := range r.Links {
		row := i + 2
		values := []interface{}{l.Name, l.Description, l.URL}
		if err := f.SetSheetRow(linksSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, err
		}
		if err := f.SetCellHyperLink(linksSheet, fmt.Sprintf("C%d", row), l.URL, "External"); err != nil {
			return nil, err
		}
	}

	if idx, err := f.GetSheetIndex(partnersSheet); err == nil {
		f.SetActiveSheet(idx)
	}
	return f, nil
}
