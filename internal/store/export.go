package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/inovacc/rostr/internal/model"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"name", "age", "grade"}

// ExportCSV writes the header row followed by one row per student, using
// the raw field values.
func ExportCSV(w io.Writer, students []model.Student) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, s := range students {
		row := []string{
			s.Name,
			strconv.Itoa(s.Age),
			strconv.FormatFloat(s.Grade, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// ExportCSVFile writes the roster as CSV to path, overwriting it.
func ExportCSVFile(path string, students []model.Student) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ExportCSV(f, students); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// ExportXLSXFile writes the roster to an Excel workbook with a single
// "Students" sheet carrying the same columns as the CSV export.
func ExportXLSXFile(path string, students []model.Student) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheet = "Students"

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for i, s := range students {
		row := i + 2
		values := []any{s.Name, s.Age, s.Grade}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
