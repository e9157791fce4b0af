package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// Export formats
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

var exportColumns = []string{
	"APPLICATION ID",
	"APPLICANT",
	"EMAIL",
	"STATUS",
	"APPLIED DATE",
	"RESUME URL",
	"COVER LETTER",
}

type exportRow []string

// ExportJobApplications renders the applications of an owned job as a
// spreadsheet. It returns the file bytes and a suggested filename.
func (uc *applicationUsecase) ExportJobApplications(ctx context.Context, employerID, jobID, format string) ([]byte, string, error) {
	if format != "" && format != ExportFormatXLSX && format != ExportFormatCSV {
		return nil, "", apperror.BadRequest(fmt.Sprintf("unsupported export format: %s", format))
	}

	job, err := uc.validateJobOwnership(ctx, employerID, jobID)
	if err != nil {
		return nil, "", err
	}

	apps, err := uc.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	rows := make([]exportRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, uc.exportRow(ctx, app))
	}

	base := fmt.Sprintf("%s_applications_%s", job.ID, uc.now().Format("20060102_150405"))
	if format == ExportFormatCSV {
		data, err := exportCSV(rows)
		if err != nil {
			return nil, "", apperror.Internal(err)
		}
		return data, base + ".csv", nil
	}

	data, err := exportExcel(job.Title, rows)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return data, base + ".xlsx", nil
}

func (uc *applicationUsecase) exportRow(ctx context.Context, app domain.Application) exportRow {
	name, email := "", ""
	if user, err := uc.userRepo.GetByID(ctx, app.UserID); err == nil {
		name, email = user.Name, user.Email
	}
	coverLetter := ""
	if app.CoverLetter != nil {
		coverLetter = *app.CoverLetter
	}
	return exportRow{
		app.ID,
		name,
		email,
		app.Status,
		app.AppliedDate.Format("2006-01-02"),
		app.ResumeURL,
		coverLetter,
	}
}

// exportExcel writes one sheet with a styled header row
func exportExcel(title string, rows []exportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	if err := writeExcelRow(f, sheetName, 1, exportColumns); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	endCell, err := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", endCell, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for rowIdx, row := range rows {
		if err := writeExcelRow(f, sheetName, rowIdx+2, row); err != nil {
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(exportColumns))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "A", lastCol, 22); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title}); err != nil {
			return nil, fmt.Errorf("failed to set document properties: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeExcelRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	for colIdx, value := range values {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

func exportCSV(rows []exportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}
	return buf.Bytes(), nil
}
