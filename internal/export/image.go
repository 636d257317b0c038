package export

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/luminar-edu/studyplan/internal/schedule"
)

const (
	imgWidth   = 760
	rowHeight  = 26
	headerArea = 96
	colDay     = 24.0
	colCourse  = 180.0
	colHours   = 600.0
)

// PNG renders the schedule as a printable timetable image: a title block
// followed by one row per (day, course) allocation.
func PNG(res schedule.Result) ([]byte, string, error) {
	rows := 1 // column header
	for _, day := range res.Schedule {
		rows += len(day.Allocations)
	}

	height := headerArea + rows*rowHeight + rowHeight
	dc := gg.NewContext(imgWidth, height)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	dc.DrawStringAnchored(res.StudentName+" Study Timetable", imgWidth/2, 28, 0.5, 0.5)
	dc.DrawStringAnchored(
		fmt.Sprintf("Level: %s   Semester: %s", res.AcademicLevel, res.Semester),
		imgWidth/2, 50, 0.5, 0.5)
	dc.DrawStringAnchored(
		fmt.Sprintf("Total Weekly Hours: %v", res.TotalWeeklyHours),
		imgWidth/2, 70, 0.5, 0.5)

	y := float64(headerArea)
	dc.DrawString("Day", colDay, y)
	dc.DrawString("Course", colCourse, y)
	dc.DrawString("Hours", colHours, y)
	dc.DrawLine(colDay, y+6, imgWidth-colDay, y+6)
	dc.Stroke()

	for _, day := range res.Schedule {
		for i, alloc := range day.Allocations {
			y += rowHeight
			if i == 0 {
				dc.DrawString(day.Day, colDay, y)
			}
			dc.DrawString(alloc.Course, colCourse, y)
			dc.DrawString(fmt.Sprintf("%v hrs", alloc.Hours), colHours, y)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, "", fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), SanitizeFilename(res.StudentName) + "_schedule.png", nil
}
