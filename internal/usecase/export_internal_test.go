package usecase

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteExcelRowReportsMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	err := writeExcelRow(f, "NoSuchSheet", 1, []string{"a", "b"})
	assert.Error(t, err)
}

func TestExportExcelStylesHeader(t *testing.T) {
	data, err := exportExcel("Data Scientist", []exportRow{
		{"app3", "John Doe", "john.doe@example.com", "applied", "2024-01-25", "/resumes/default-resume.pdf", ""},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle("Applications", "G1")
	require.NoError(t, err)
	assert.NotZero(t, styleID)

	width, err := f.GetColWidth("Applications", "G")
	require.NoError(t, err)
	assert.Equal(t, float64(22), width)

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", props.Title)

	val, err := f.GetCellValue("Applications", "B2")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", val)
}
