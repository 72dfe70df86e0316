package domain

// QuestionID identifies one step in the onboarding question graph
type QuestionID string

// HouseholdType is captured once near the start of onboarding. It currently
// does not branch the question graph but is threaded through next-question
// resolution so richer branching stays a local change.
type HouseholdType string

const (
	HouseholdIndividual HouseholdType = "individual"
	HouseholdCouple     HouseholdType = "couple"
	HouseholdFamily     HouseholdType = "family"
)

// Valid reports whether the household type is known
func (h HouseholdType) Valid() bool {
	switch h {
	case HouseholdIndividual, HouseholdCouple, HouseholdFamily:
		return true
	}
	return false
}

// InputKind describes the shape of answer a question expects
type InputKind string

const (
	InputSingleSelect InputKind = "single_select"
	InputMultiSelect  InputKind = "multi_select"
	InputInfo         InputKind = "info" // informational step, no answer domain
)

// Question is one node in the onboarding graph. Immutable, defined at process
// start.
type Question struct {
	ID      QuestionID
	Prompt  string
	Kind    InputKind
	Options []string // answer domain for select kinds
}

// Accepts reports whether value is inside the question's answer domain
func (q Question) Accepts(value string) bool {
	if q.Kind == InputInfo {
		return true
	}
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Answer is the recorded response to one question. Re-answering overwrites
// the prior value. Count/Counts carry the optional "how many of these?"
// itemization.
type Answer struct {
	QuestionID QuestionID
	Values     []string       // one element for single-select
	Count      int            // itemization for single-select, 0 = unspecified
	Counts     map[string]int // itemization per option for multi-select
}

// CountFor resolves the itemization count for one selected option, defaulting
// to a single entry.
func (a Answer) CountFor(option string) int {
	if n, ok := a.Counts[option]; ok && n > 0 {
		return n
	}
	if a.Count > 0 {
		return a.Count
	}
	return 1
}
