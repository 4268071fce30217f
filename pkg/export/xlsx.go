// Package export writes plots and catalog rows as XLSX workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cultivos/entities"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var plotHeaders = []string{
	"numero", "tipo_de_cultivo", "siembra", "primera_cosecha", "cosecha_rutinaria", "tipo_suelo", "temperatura",
}

// WritePlots writes one sheet named "hectareas" with a header row.
func WritePlots(w io.Writer, plots []entities.Hectarea) error {
	rows := make([][]any, 0, len(plots))
	for _, p := range plots {
		var soil, temp any
		if p.SoilType != nil {
			soil = *p.SoilType
		}
		if p.Temperature != nil {
			temp = *p.Temperature
		}
		rows = append(rows, []any{p.Number, p.CropType, p.SowingDate, p.FirstHarvest, p.RoutineHarvest, soil, temp})
	}
	return WriteSheet(w, "hectareas", plotHeaders, rows)
}

// WriteCatalog writes catalog rows using their own export columns.
func WriteCatalog[T any, P entities.CatalogPtr[T]](w io.Writer, sheet string, rows []T) error {
	out := make([][]any, 0, len(rows))
	for i := range rows {
		out = append(out, P(&rows[i]).ExportRow())
	}
	return WriteSheet(w, sheet, P(new(T)).ExportHeaders(), out)
}

// WriteSheet writes a single-sheet workbook. Nil cells are left empty.
func WriteSheet(w io.Writer, sheet string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	head := make([]any, len(headers))
	for i, h := range headers {
		head[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		return fmt.Errorf("header row: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
