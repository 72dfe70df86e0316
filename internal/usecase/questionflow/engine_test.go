package questionflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youcanfi/networth-backend/internal/domain"
)

func TestNextQuestion_WalksWholeFlow(t *testing.T) {
	engine := New()

	expected := []domain.QuestionID{
		StepWelcome, StepHousehold,
		StepCashAccounts, StepSavings, StepRetirement, StepInvestments,
		StepRealEstate, StepVehicles, StepOtherAssets,
		StepMortgages, StepCreditCards, StepAutoLoans, StepStudentLoans, StepOtherDebts,
		StepTasks, StepReview,
	}

	current := engine.First()
	visited := []domain.QuestionID{current}
	for {
		next, err := engine.NextQuestion(current, domain.Answer{QuestionID: current}, domain.HouseholdIndividual)
		require.NoError(t, err)
		if next == "" {
			break
		}
		visited = append(visited, next)
		current = next
	}

	assert.Equal(t, expected, visited)
}

func TestNextQuestion_TerminalAfterReview(t *testing.T) {
	engine := New()

	next, err := engine.NextQuestion(StepReview, domain.Answer{}, domain.HouseholdFamily)
	require.NoError(t, err)
	assert.Equal(t, domain.QuestionID(""), next)
}

func TestNextQuestion_PureFunction(t *testing.T) {
	engine := New()
	answer := domain.Answer{QuestionID: StepRetirement, Values: []string{"401k", "roth"}}

	first, err := engine.NextQuestion(StepRetirement, answer, domain.HouseholdCouple)
	require.NoError(t, err)

	// Identical inputs must yield identical results across repeated calls
	for i := 0; i < 10; i++ {
		again, err := engine.NextQuestion(StepRetirement, answer, domain.HouseholdCouple)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestNextQuestion_HouseholdDoesNotChangeTopology(t *testing.T) {
	engine := New()
	answer := domain.Answer{QuestionID: StepCashAccounts, Values: []string{"yes"}}

	for _, household := range []domain.HouseholdType{domain.HouseholdIndividual, domain.HouseholdCouple, domain.HouseholdFamily} {
		next, err := engine.NextQuestion(StepCashAccounts, answer, household)
		require.NoError(t, err)
		assert.Equal(t, StepSavings, next)
	}
}

func TestNextQuestion_UnknownID(t *testing.T) {
	engine := New()

	_, err := engine.NextQuestion("nonsense", domain.Answer{}, domain.HouseholdIndividual)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestQuestion_AnswerDomain(t *testing.T) {
	engine := New()

	q, err := engine.Question(StepRetirement)
	require.NoError(t, err)
	assert.Equal(t, domain.InputMultiSelect, q.Kind)
	assert.True(t, q.Accepts("401k"))
	assert.False(t, q.Accepts("403b"))
}

func TestPhase(t *testing.T) {
	engine := New()

	tests := []struct {
		id   domain.QuestionID
		want Phase
	}{
		{StepWelcome, PhaseIntro},
		{StepVehicles, PhaseAssets},
		{StepStudentLoans, PhaseLiabilities},
		{StepReview, PhaseWrapUp},
	}

	for _, tt := range tests {
		got, err := engine.Phase(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "phase of %s", tt.id)
	}
}

func TestProgress(t *testing.T) {
	engine := New()

	first := engine.Progress(StepWelcome)
	assert.Equal(t, 1, first.Step)
	assert.Equal(t, 16, first.TotalSteps)
	assert.Equal(t, 0.0, first.Percentage)

	last := engine.Progress(StepReview)
	assert.Equal(t, 16, last.Step)
	assert.Equal(t, 100.0, last.Percentage)
}
