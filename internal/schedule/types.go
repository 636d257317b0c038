// Package schedule turns declared courses into a weekly study plan:
// base weight from confidence and credit load, rule-boost adjustment when
// topic facts are present, then proportional allocation of the weekly
// hour budget across courses and days.
package schedule

import (
	"fmt"

	"github.com/luminar-edu/studyplan/internal/rules"
)

// Weekdays is the fixed plan order, Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Course is one declared course. Confidence runs 1-5 (1 = very weak);
// credit units are 1 or more.
type Course struct {
	Name            string `json:"name"`
	ConfidenceLevel int    `json:"confidence_level"`
	CreditUnit      int    `json:"credit_unit"`
}

// Validate checks the declared ranges.
func (c Course) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("course: name is required")
	}
	if c.ConfidenceLevel < 1 || c.ConfidenceLevel > 5 {
		return fmt.Errorf("course %s: confidence_level %d out of range [1,5]", c.Name, c.ConfidenceLevel)
	}
	if c.CreditUnit < 1 {
		return fmt.Errorf("course %s: credit_unit %d must be at least 1", c.Name, c.CreditUnit)
	}
	return nil
}

// Request is the validated input for one schedule generation.
type Request struct {
	StudentName    string            `json:"student_name"`
	AcademicLevel  string            `json:"academic_level"`
	Semester       string            `json:"semester"`
	AvgHoursPerDay float64           `json:"avg_hours_per_day"`
	Courses        []Course          `json:"courses"`
	Topics         []rules.TopicFact `json:"topics,omitempty"`
	CramMode       bool              `json:"cram_mode,omitempty"`
}

// Validate checks the request and everything it carries. Topic facts must
// reference a declared course.
func (r Request) Validate() error {
	if r.AvgHoursPerDay <= 0 || r.AvgHoursPerDay > 24 {
		return fmt.Errorf("avg_hours_per_day %v out of range (0,24]", r.AvgHoursPerDay)
	}
	names := make(map[string]bool, len(r.Courses))
	for _, c := range r.Courses {
		if err := c.Validate(); err != nil {
			return err
		}
		if names[c.Name] {
			return fmt.Errorf("course %s: duplicate name", c.Name)
		}
		names[c.Name] = true
	}
	for _, t := range r.Topics {
		if err := t.Validate(); err != nil {
			return err
		}
		if !names[t.CourseID] {
			return fmt.Errorf("topic %s: unknown course %q", t.TopicID, t.CourseID)
		}
	}
	return nil
}

// CourseHours is one course's share of a day or a week.
type CourseHours struct {
	Course string  `json:"course"`
	Hours  float64 `json:"hours"`
}

// DailyAllocation is a single day's plan. Allocations keep request order.
type DailyAllocation struct {
	Day         string        `json:"day"`
	Allocations []CourseHours `json:"allocations"`
}

// Result is the generated weekly plan.
type Result struct {
	StudentName      string             `json:"student_name"`
	AcademicLevel    string             `json:"academic_level"`
	Semester         string             `json:"semester"`
	TotalWeeklyHours float64            `json:"total_weekly_hours"`
	Schedule         []DailyAllocation  `json:"schedule"`
	Notes            []string           `json:"notes"`
	PerCourseHours   map[string]float64 `json:"per_course_hours,omitempty"`
}
