package schedule

import (
	"github.com/luminar-edu/studyplan/internal/rules"
)

var advisoryNotes = []string{
	"Lower confidence and higher credit-unit courses are allocated more study time.",
	"Hours are distributed evenly across the week.",
}

// Generate runs the full pipeline for one pre-validated request: evaluate
// topic facts, aggregate per-course weights, allocate the weekly budget,
// assemble the result. The returned log holds one explanation line per
// rule firing, in evaluation order; it is diagnostic only and never part
// of the result.
//
// Generate is a pure function of its input: identical requests produce
// identical results.
func Generate(req Request, catalog *rules.Catalog) (Result, []string) {
	engine := rules.NewEngine(catalog, req.CramMode)

	boostsByCourse := make(map[string][]rules.Adjustment)
	var log []string
	for _, fact := range req.Topics {
		adjs, lines := engine.Evaluate(fact)
		boostsByCourse[fact.CourseID] = append(boostsByCourse[fact.CourseID], adjs...)
		log = append(log, lines...)
	}

	weighted := make([]weightedCourse, 0, len(req.Courses))
	for _, c := range req.Courses {
		weighted = append(weighted, weightedCourse{
			name:   c.Name,
			weight: AggregateWeight(c, boostsByCourse[c.Name]),
		})
	}

	perCourse, plan := allocate(weighted, req.AvgHoursPerDay, Weekdays)

	perCourseHours := make(map[string]float64, len(perCourse))
	for _, ch := range perCourse {
		perCourseHours[ch.Course] = ch.Hours
	}

	return Result{
		StudentName:      req.StudentName,
		AcademicLevel:    req.AcademicLevel,
		Semester:         req.Semester,
		TotalWeeklyHours: round2(req.AvgHoursPerDay * float64(len(Weekdays))),
		Schedule:         plan,
		Notes:            advisoryNotes,
		PerCourseHours:   perCourseHours,
	}, log
}
