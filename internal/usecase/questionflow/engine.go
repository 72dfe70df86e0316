// Package questionflow holds the onboarding question graph: a finite acyclic
// sequence of category questions split into an asset phase and a liability
// phase. The graph is declared once here; callers resolve navigation through
// the Engine instead of hard-coding routes.
package questionflow

import (
	"fmt"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// Question ids, in flow order
const (
	StepWelcome      domain.QuestionID = "welcome"
	StepHousehold    domain.QuestionID = "household"
	StepCashAccounts domain.QuestionID = "cash_accounts"
	StepSavings      domain.QuestionID = "savings"
	StepRetirement   domain.QuestionID = "retirement"
	StepInvestments  domain.QuestionID = "investments"
	StepRealEstate   domain.QuestionID = "real_estate"
	StepVehicles     domain.QuestionID = "vehicles"
	StepOtherAssets  domain.QuestionID = "other_assets"
	StepMortgages    domain.QuestionID = "mortgages"
	StepCreditCards  domain.QuestionID = "credit_cards"
	StepAutoLoans    domain.QuestionID = "auto_loans"
	StepStudentLoans domain.QuestionID = "student_loans"
	StepOtherDebts   domain.QuestionID = "other_debts"
	StepTasks        domain.QuestionID = "tasks"
	StepReview       domain.QuestionID = "review"
)

// Phase groups questions for progress display
type Phase string

const (
	PhaseIntro       Phase = "intro"
	PhaseAssets      Phase = "assets"
	PhaseLiabilities Phase = "liabilities"
	PhaseWrapUp      Phase = "wrap_up"
)

// Progress locates the current step inside the whole flow
type Progress struct {
	Step       int // 1-based
	TotalSteps int
	Percentage float64
}

// routeFunc resolves the next question from the answer and household type.
// Empty result means the flow is finished. Household type is unused by every
// current route but stays in the signature so branching on it is a data
// change, not an API change.
type routeFunc func(answer domain.Answer, household domain.HouseholdType) domain.QuestionID

type node struct {
	question domain.Question
	phase    Phase
	next     routeFunc
}

// Engine resolves navigation over the question graph. All methods are pure
// with respect to the engine: the graph is immutable after New.
type Engine struct {
	nodes map[domain.QuestionID]node
	order []domain.QuestionID
}

// New builds the engine with the standard flow: welcome → household → asset
// chain → liability chain → tasks → review.
func New() *Engine {
	e := &Engine{nodes: make(map[domain.QuestionID]node)}

	linear := []struct {
		q     domain.Question
		phase Phase
	}{
		{domain.Question{ID: StepWelcome, Prompt: "Let's build your net-worth picture.", Kind: domain.InputInfo}, PhaseIntro},
		{domain.Question{ID: StepHousehold, Prompt: "Who is this plan for?", Kind: domain.InputSingleSelect,
			Options: []string{"individual", "couple", "family"}}, PhaseIntro},
		{domain.Question{ID: StepCashAccounts, Prompt: "Do you have checking or cash accounts?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseAssets},
		{domain.Question{ID: StepSavings, Prompt: "Do you have savings accounts?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseAssets},
		{domain.Question{ID: StepRetirement, Prompt: "Which retirement accounts do you have?", Kind: domain.InputMultiSelect,
			Options: []string{"401k", "ira", "roth", "hsa", "pension", "other_retirement", "none"}}, PhaseAssets},
		{domain.Question{ID: StepInvestments, Prompt: "Do you have brokerage or investment accounts?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseAssets},
		{domain.Question{ID: StepRealEstate, Prompt: "Do you own real estate?", Kind: domain.InputMultiSelect,
			Options: []string{"primary", "rental", "land", "none"}}, PhaseAssets},
		{domain.Question{ID: StepVehicles, Prompt: "Do you own vehicles you want to track?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseAssets},
		{domain.Question{ID: StepOtherAssets, Prompt: "Any other significant assets?", Kind: domain.InputMultiSelect,
			Options: []string{"business", "valuables", "other", "none"}}, PhaseAssets},
		{domain.Question{ID: StepMortgages, Prompt: "Do you have a mortgage?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseLiabilities},
		{domain.Question{ID: StepCreditCards, Prompt: "Do you carry credit card balances?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseLiabilities},
		{domain.Question{ID: StepAutoLoans, Prompt: "Do you have auto loans?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseLiabilities},
		{domain.Question{ID: StepStudentLoans, Prompt: "Do you have student loans?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseLiabilities},
		{domain.Question{ID: StepOtherDebts, Prompt: "Any other debts?", Kind: domain.InputSingleSelect,
			Options: []string{"yes", "no"}}, PhaseLiabilities},
		{domain.Question{ID: StepTasks, Prompt: "Fill in the details for each account.", Kind: domain.InputInfo}, PhaseWrapUp},
		{domain.Question{ID: StepReview, Prompt: "Review your net-worth snapshot.", Kind: domain.InputInfo}, PhaseWrapUp},
	}

	for i, item := range linear {
		var nextID domain.QuestionID
		if i+1 < len(linear) {
			nextID = linear[i+1].q.ID
		}
		e.nodes[item.q.ID] = node{
			question: item.q,
			phase:    item.phase,
			next:     linearRoute(nextID),
		}
		e.order = append(e.order, item.q.ID)
	}

	return e
}

// linearRoute routes to a fixed successor regardless of answer or household
func linearRoute(next domain.QuestionID) routeFunc {
	return func(domain.Answer, domain.HouseholdType) domain.QuestionID {
		return next
	}
}

// First returns the entry question of the flow
func (e *Engine) First() domain.QuestionID {
	return e.order[0]
}

// Question looks up a question definition
func (e *Engine) Question(id domain.QuestionID) (domain.Question, error) {
	n, ok := e.nodes[id]
	if !ok {
		return domain.Question{}, fmt.Errorf("question %q: %w", id, domain.ErrNotFound)
	}
	return n.question, nil
}

// NextQuestion resolves the question that follows current. Returns "" after
// the final step, signaling onboarding completion eligibility. A pure
// function of its inputs: no session state is consulted. An unknown current
// id is a programmer error and is reported as such.
func (e *Engine) NextQuestion(current domain.QuestionID, answer domain.Answer, household domain.HouseholdType) (domain.QuestionID, error) {
	n, ok := e.nodes[current]
	if !ok {
		return "", fmt.Errorf("next of unknown question %q: %w", current, domain.ErrNotFound)
	}
	return n.next(answer, household), nil
}

// Phase returns the flow phase the question belongs to
func (e *Engine) Phase(id domain.QuestionID) (Phase, error) {
	n, ok := e.nodes[id]
	if !ok {
		return "", fmt.Errorf("phase of unknown question %q: %w", id, domain.ErrNotFound)
	}
	return n.phase, nil
}

// Progress locates id inside the flow for progress display. Unknown ids
// report step 1, mirroring a fresh session.
func (e *Engine) Progress(id domain.QuestionID) Progress {
	index := 0
	for i, step := range e.order {
		if step == id {
			index = i
			break
		}
	}

	total := len(e.order)
	percentage := 0.0
	if total > 1 {
		percentage = float64(index) / float64(total-1) * 100
	}

	return Progress{
		Step:       index + 1,
		TotalSteps: total,
		Percentage: percentage,
	}
}
