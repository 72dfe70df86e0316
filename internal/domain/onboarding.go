package domain

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingState is the whole onboarding session: where the user is in the
// question graph, what they answered, and the data-entry tasks generated so
// far. The core never holds this ambiently; the calling shell loads and
// persists it around each operation.
type OnboardingState struct {
	ID            uuid.UUID
	CurrentStep   QuestionID
	HouseholdType *HouseholdType
	Answers       map[QuestionID]Answer
	Tasks         []DataEntryTask
	IsComplete    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TaskByID finds a task in the session, nil when absent
func (s *OnboardingState) TaskByID(id string) *DataEntryTask {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

// RecordAnswer stores or overwrites the answer for its question
func (s *OnboardingState) RecordAnswer(a Answer) {
	if s.Answers == nil {
		s.Answers = make(map[QuestionID]Answer)
	}
	s.Answers[a.QuestionID] = a
}
