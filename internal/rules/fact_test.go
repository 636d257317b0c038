package rules

import "testing"

func TestTopicFact_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TopicFact)
		wantErr bool
	}{
		{"valid", func(f *TopicFact) {}, false},
		{"valid-with-prereqs", func(f *TopicFact) { f.Prereqs = []string{"limits"} }, false},
		{"missing-course", func(f *TopicFact) { f.CourseID = "" }, true},
		{"missing-topic", func(f *TopicFact) { f.TopicID = "" }, true},
		{"difficulty-low", func(f *TopicFact) { f.Difficulty = -0.1 }, true},
		{"difficulty-high", func(f *TopicFact) { f.Difficulty = 1.1 }, true},
		{"mastery-high", func(f *TopicFact) { f.Mastery = 2 }, true},
		{"importance-zero", func(f *TopicFact) { f.Importance = 0 }, true},
		{"bad-exam-type", func(f *TopicFact) { f.ExamType = "takehome" }, true},
		{"negative-days", func(f *TopicFact) { f.DaysToExam = -1 }, true},
		{"negative-hours", func(f *TopicFact) { f.EstHours = -2 }, true},
		{"boundary-zero-mastery", func(f *TopicFact) { f.Mastery = 0 }, false},
		{"boundary-full-difficulty", func(f *TopicFact) { f.Difficulty = 1 }, false},
		{"exam-today", func(f *TopicFact) { f.DaysToExam = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFact()
			tt.mutate(&f)
			err := f.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
