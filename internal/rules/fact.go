// Package rules evaluates priority rules against per-topic study facts.
//
// The rule catalog is data (catalog.yaml), not code: a fixed, ordered list
// of guarded boosts evaluated in a single pass. Every matching rule fires
// and the boosts sum; no rule chains off another rule's output.
package rules

import (
	"fmt"
)

// Exam format tokens accepted on the wire.
const (
	ExamMCQ       = "mcq"
	ExamWritten   = "written"
	ExamPractical = "practical"
	ExamOral      = "oral"
)

// ExamTypes lists the valid exam format tokens.
var ExamTypes = []string{ExamMCQ, ExamWritten, ExamPractical, ExamOral}

// TopicFact is the per-topic record the engine evaluates. One fact per
// gradable unit of study content. Facts are read-only once constructed;
// out-of-range values are a construction error, never an engine concern.
type TopicFact struct {
	CourseID   string   `json:"course_id" yaml:"course_id"`
	TopicID    string   `json:"topic_id" yaml:"topic_id"`
	Difficulty float64  `json:"difficulty" yaml:"difficulty"`
	Mastery    float64  `json:"mastery" yaml:"mastery"`
	Importance float64  `json:"importance" yaml:"importance"`
	ExamType   string   `json:"exam_type" yaml:"exam_type"`
	DaysToExam int      `json:"days_to_exam" yaml:"days_to_exam"`
	EstHours   float64  `json:"est_hours" yaml:"est_hours"`
	Prereqs    []string `json:"prereqs,omitempty" yaml:"prereqs,omitempty"`
}

// Validate checks every bounded field against its declared range.
func (f TopicFact) Validate() error {
	if f.CourseID == "" {
		return fmt.Errorf("topic fact: course_id is required")
	}
	if f.TopicID == "" {
		return fmt.Errorf("topic fact %s: topic_id is required", f.CourseID)
	}
	if f.Difficulty < 0 || f.Difficulty > 1 {
		return fmt.Errorf("topic %s: difficulty %v out of range [0,1]", f.TopicID, f.Difficulty)
	}
	if f.Mastery < 0 || f.Mastery > 1 {
		return fmt.Errorf("topic %s: mastery %v out of range [0,1]", f.TopicID, f.Mastery)
	}
	if f.Importance <= 0 {
		return fmt.Errorf("topic %s: importance %v must be positive", f.TopicID, f.Importance)
	}
	if !validExamType(f.ExamType) {
		return fmt.Errorf("topic %s: unknown exam_type %q", f.TopicID, f.ExamType)
	}
	if f.DaysToExam < 0 {
		return fmt.Errorf("topic %s: days_to_exam %d must be non-negative", f.TopicID, f.DaysToExam)
	}
	if f.EstHours < 0 {
		return fmt.Errorf("topic %s: est_hours %v must be non-negative", f.TopicID, f.EstHours)
	}
	return nil
}

func validExamType(s string) bool {
	for _, t := range ExamTypes {
		if s == t {
			return true
		}
	}
	return false
}
