package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/luminar-edu/studyplan/internal/schedule"
)

const sheetName = "Schedule"

// XLSX renders the schedule as a workbook with one row per (day, course)
// allocation plus a header carrying the student identity and weekly total.
func XLSX(res schedule.Result) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("naming sheet: %w", err)
	}

	meta := [][]interface{}{
		{"Student", res.StudentName},
		{"Level", res.AcademicLevel},
		{"Semester", res.Semester},
		{"Total Weekly Hours", res.TotalWeeklyHours},
	}
	for i, row := range meta {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, "", fmt.Errorf("writing meta row: %w", err)
		}
	}

	header := []interface{}{"Day", "Course", "Hours"}
	if err := f.SetSheetRow(sheetName, "A6", &header); err != nil {
		return nil, "", fmt.Errorf("writing header: %w", err)
	}

	rowNum := 7
	for _, day := range res.Schedule {
		for _, alloc := range day.Allocations {
			row := []interface{}{day.Day, alloc.Course, alloc.Hours}
			cell := fmt.Sprintf("A%d", rowNum)
			if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
				return nil, "", fmt.Errorf("writing row %d: %w", rowNum, err)
			}
			rowNum++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), SanitizeFilename(res.StudentName) + "_schedule.xlsx", nil
}
