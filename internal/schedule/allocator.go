package schedule

import "math"

// weightedCourse pairs a course name with its adjusted weight. Slices keep
// request order; map iteration would scramble the daily allocation lists.
type weightedCourse struct {
	name   string
	weight float64
}

// allocate spreads the weekly hour budget across courses in proportion to
// weight, then evenly across days with a one-hour daily floor per course.
// The floor means the daily sum can exceed the nominal budget when many
// low-weight courses are present; every course keeps visible daily
// presence instead of rounding to near-zero.
//
// Hours are rounded to two decimals only at this presentation boundary.
func allocate(weighted []weightedCourse, avgHoursPerDay float64, days []string) ([]CourseHours, []DailyAllocation) {
	weeklyHours := avgHoursPerDay * float64(len(days))

	totalWeight := 0.0
	for _, wc := range weighted {
		totalWeight += wc.weight
	}
	if totalWeight == 0 {
		totalWeight = 1.0
	}

	perCourse := make([]CourseHours, 0, len(weighted))
	for _, wc := range weighted {
		hours := (wc.weight / totalWeight) * weeklyHours
		perCourse = append(perCourse, CourseHours{Course: wc.name, Hours: hours})
	}

	plan := make([]DailyAllocation, 0, len(days))
	for _, day := range days {
		allocs := make([]CourseHours, 0, len(perCourse))
		for _, ch := range perCourse {
			perDay := math.Max(1.0, ch.Hours/float64(len(days)))
			allocs = append(allocs, CourseHours{Course: ch.Course, Hours: round2(perDay)})
		}
		plan = append(plan, DailyAllocation{Day: day, Allocations: allocs})
	}

	for i := range perCourse {
		perCourse[i].Hours = round2(perCourse[i].Hours)
	}
	return perCourse, plan
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
