// Package export renders read-only roster snapshots for download.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pulpito/internal/domain/model"
)

// Spreadsheet layout constants; the sheet mirrors the original
// two-column export (display name, date).
const (
	sheetName    = "Oradores"
	columnName   = "Nome"
	columnDate   = "Data"
	nameColWidth = 32
	dateColWidth = 14
)

// WriteJSON encodes the roster as a downloadable JSON array.
func WriteJSON(w io.Writer, roster model.Roster) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(roster); err != nil {
		return fmt.Errorf("encode roster json: %w", err)
	}
	return nil
}

// WriteXLSX renders the roster as a two-column spreadsheet.
func WriteXLSX(w io.Writer, roster model.Roster) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetName, "A1", &[]any{columnName, columnDate}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range roster {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &[]any{rec.Name, rec.Date.String()}); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	if err := f.SetColWidth(sheetName, "A", "A", nameColWidth); err != nil {
		return fmt.Errorf("size name column: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", dateColWidth); err != nil {
		return fmt.Errorf("size date column: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
