// Package export renders a generated schedule for download and keeps the
// recent results addressable for the download endpoints.
//
// Renderers only read the identity fields, the weekly total, and the daily
// allocation lists; they never recompute hours.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/luminar-edu/studyplan/internal/schedule"
)

// CSV renders the schedule as Day,Course,Hours rows. Returns the content
// and the suggested filename.
func CSV(res schedule.Result) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Day", "Course", "Hours"}); err != nil {
		return nil, "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, day := range res.Schedule {
		for _, alloc := range day.Allocations {
			row := []string{day.Day, alloc.Course, formatHours(alloc.Hours)}
			if err := w.Write(row); err != nil {
				return nil, "", fmt.Errorf("writing csv row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), SanitizeFilename(res.StudentName) + "_schedule.csv", nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
