package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/youcanfi/networth-backend/internal/domain"
	"github.com/youcanfi/networth-backend/internal/usecase/questionflow"
)

type serviceEnv struct {
	sessions    *MockOnboardingRepository
	assets      *MockAssetRepository
	liabilities *MockLiabilityRepository
	service     *Service
}

func newServiceEnv() *serviceEnv {
	env := &serviceEnv{
		sessions:    new(MockOnboardingRepository),
		assets:      new(MockAssetRepository),
		liabilities: new(MockLiabilityRepository),
	}
	env.service = NewService(env.sessions, env.assets, env.liabilities)
	return env
}

func freshState() *domain.OnboardingState {
	return &domain.OnboardingState{
		ID:          uuid.New(),
		CurrentStep: questionflow.StepWelcome,
		Answers:     make(map[domain.QuestionID]domain.Answer),
	}
}

func TestGetOrCreateState_InitializesFirstStep(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	blank := &domain.OnboardingState{ID: uuid.New()}
	env.sessions.On("GetOrCreate", mock.Anything).Return(blank, nil)
	env.sessions.On("Save", mock.Anything, blank).Return(nil)

	state, err := env.service.GetOrCreateState(ctx)
	require.NoError(t, err)
	assert.Equal(t, questionflow.StepWelcome, state.CurrentStep)
	env.sessions.AssertCalled(t, "Save", mock.Anything, blank)
}

func TestGetOrCreateState_ExistingSessionUntouched(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	existing := freshState()
	existing.CurrentStep = questionflow.StepRetirement
	env.sessions.On("GetOrCreate", mock.Anything).Return(existing, nil)

	state, err := env.service.GetOrCreateState(ctx)
	require.NoError(t, err)
	assert.Equal(t, questionflow.StepRetirement, state.CurrentStep)
	env.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestSetHouseholdType(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	env.sessions.On("GetOrCreate", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)

	got, err := env.service.SetHouseholdType(ctx, domain.HouseholdCouple)
	require.NoError(t, err)
	require.NotNil(t, got.HouseholdType)
	assert.Equal(t, domain.HouseholdCouple, *got.HouseholdType)
}

func TestSetHouseholdType_Invalid(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	_, err := env.service.SetHouseholdType(ctx, domain.HouseholdType("commune"))
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	env.sessions.AssertNotCalled(t, "GetOrCreate", mock.Anything)
}

func TestAnswerQuestion_GeneratesTasksAndAdvances(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.CurrentStep = questionflow.StepRetirement
	env.sessions.On("GetOrCreate", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)

	got, err := env.service.AnswerQuestion(ctx, domain.Answer{
		QuestionID: questionflow.StepRetirement,
		Values:     []string{"401k", "ira"},
	})
	require.NoError(t, err)

	require.Len(t, got.Tasks, 2)
	assert.Equal(t, string(domain.AssetCategoryRetirement401k), got.Tasks[0].Category)
	assert.Equal(t, string(domain.AssetCategoryRetirementIRA), got.Tasks[1].Category)
	assert.Equal(t, domain.TaskStatusPending, got.Tasks[0].Status)
	assert.Equal(t, questionflow.StepInvestments, got.CurrentStep)
	assert.Equal(t, got.Answers[questionflow.StepRetirement].Values, []string{"401k", "ira"})
}

func TestAnswerQuestion_RejectsValueOutsideDomain(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	_, err := env.service.AnswerQuestion(ctx, domain.Answer{
		QuestionID: questionflow.StepCashAccounts,
		Values:     []string{"maybe"},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	env.sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAnswerQuestion_RejectsMultipleValuesForSingleSelect(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	_, err := env.service.AnswerQuestion(ctx, domain.Answer{
		QuestionID: questionflow.StepCashAccounts,
		Values:     []string{"yes", "no"},
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestAnswerQuestion_UnknownQuestion(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	_, err := env.service.AnswerQuestion(ctx, domain.Answer{QuestionID: "favorite_color"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAnswerQuestion_HouseholdAnswerSetsType(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.CurrentStep = questionflow.StepHousehold
	env.sessions.On("GetOrCreate", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)

	got, err := env.service.AnswerQuestion(ctx, domain.Answer{
		QuestionID: questionflow.StepHousehold,
		Values:     []string{"family"},
	})
	require.NoError(t, err)
	require.NotNil(t, got.HouseholdType)
	assert.Equal(t, domain.HouseholdFamily, *got.HouseholdType)
	assert.Equal(t, questionflow.StepCashAccounts, got.CurrentStep)
}

func TestAnswerQuestion_ReanswerEarlierStepDoesNotRewind(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.CurrentStep = questionflow.StepMortgages
	env.sessions.On("GetOrCreate", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)

	got, err := env.service.AnswerQuestion(ctx, domain.Answer{
		QuestionID: questionflow.StepCashAccounts,
		Values:     []string{"yes"},
	})
	require.NoError(t, err)
	assert.Equal(t, questionflow.StepMortgages, got.CurrentStep)
	require.Len(t, got.Tasks, 1)
}

func TestAnswerQuestion_ReanswerDoesNotDuplicateTerminalTasks(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.CurrentStep = questionflow.StepSavings
	entityID := uuid.New()
	state.Tasks = []domain.DataEntryTask{{
		ID:          "task-cash_accounts-cash-1",
		Type:        domain.TaskTypeAsset,
		Category:    string(domain.AssetCategoryCash),
		DefaultName: "Cash & Checking",
		Status:      domain.TaskStatusCompleted,
		EntityID:    &entityID,
	}}
	env.sessions.On("GetOrCreate", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)

	got, err := env.service.AnswerQuestion(ctx, domain.Answer{
		QuestionID: questionflow.StepCashAccounts,
		Values:     []string{"yes"},
	})
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, domain.TaskStatusCompleted, got.Tasks[0].Status)
}

func TestCompleteTask_CreatesAsset(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.Tasks = []domain.DataEntryTask{{
		ID:          "task-retirement-retirement_401k-1",
		Type:        domain.TaskTypeAsset,
		Category:    string(domain.AssetCategoryRetirement401k),
		DefaultName: "401(k)",
		Status:      domain.TaskStatusPending,
	}}
	env.sessions.On("Get", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)
	env.assets.On("Create", mock.Anything, mock.AnythingOfType("*domain.Asset")).Return(nil)

	got, err := env.service.CompleteTask(ctx, "task-retirement-retirement_401k-1", CompleteTaskInput{
		Value: decimal.NewFromInt(85000),
	})
	require.NoError(t, err)

	created := env.assets.Calls[0].Arguments.Get(1).(*domain.Asset)
	assert.Equal(t, domain.AssetCategoryRetirement401k, created.Category)
	assert.Equal(t, "401(k)", created.Name) // default name used when none given
	assert.True(t, created.Value.Equal(decimal.NewFromInt(85000)))

	task := got.TaskByID("task-retirement-retirement_401k-1")
	assert.Equal(t, domain.TaskStatusCompleted, task.Status)
	require.NotNil(t, task.EntityID)
	assert.Equal(t, created.ID, *task.EntityID)
}

func TestCompleteTask_CreatesLiabilityWithRate(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.Tasks = []domain.DataEntryTask{{
		ID:          "task-mortgages-mortgage-1",
		Type:        domain.TaskTypeLiability,
		Category:    string(domain.LiabilityCategoryMortgage),
		DefaultName: "Mortgage",
		Status:      domain.TaskStatusPending,
	}}
	env.sessions.On("Get", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)
	env.liabilities.On("Create", mock.Anything, mock.AnythingOfType("*domain.Liability")).Return(nil)

	rate := decimal.NewFromFloat(6.25)
	_, err := env.service.CompleteTask(ctx, "task-mortgages-mortgage-1", CompleteTaskInput{
		Name:         "Home Loan",
		Value:        decimal.NewFromInt(320000),
		InterestRate: &rate,
	})
	require.NoError(t, err)

	created := env.liabilities.Calls[0].Arguments.Get(1).(*domain.Liability)
	assert.Equal(t, "Home Loan", created.Name)
	assert.True(t, created.Balance.Equal(decimal.NewFromInt(320000)))
	require.NotNil(t, created.InterestRate)
	assert.True(t, created.InterestRate.Equal(rate))
}

func TestCompleteTask_AlreadyTerminal(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.Tasks = []domain.DataEntryTask{{
		ID:       "task-vehicles-vehicle-1",
		Type:     domain.TaskTypeAsset,
		Category: string(domain.AssetCategoryVehicle),
		Status:   domain.TaskStatusSkipped,
	}}
	env.sessions.On("Get", mock.Anything).Return(state, nil)

	_, err := env.service.CompleteTask(ctx, "task-vehicles-vehicle-1", CompleteTaskInput{
		Value: decimal.NewFromInt(15000),
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	env.assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCompleteTask_InvalidValueRejectedBeforeWrite(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.Tasks = []domain.DataEntryTask{{
		ID:       "task-vehicles-vehicle-1",
		Type:     domain.TaskTypeAsset,
		Category: string(domain.AssetCategoryVehicle),
		Status:   domain.TaskStatusPending,
	}}
	env.sessions.On("Get", mock.Anything).Return(state, nil)

	_, err := env.service.CompleteTask(ctx, "task-vehicles-vehicle-1", CompleteTaskInput{
		Name:  "Truck",
		Value: decimal.NewFromInt(-5000),
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	env.assets.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, domain.TaskStatusPending, state.Tasks[0].Status)
}

func TestCompleteTask_UnknownTask(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	env.sessions.On("Get", mock.Anything).Return(freshState(), nil)

	_, err := env.service.CompleteTask(ctx, "task-nope", CompleteTaskInput{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSkipTask(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.Tasks = []domain.DataEntryTask{{
		ID:       "task-vehicles-vehicle-1",
		Type:     domain.TaskTypeAsset,
		Category: string(domain.AssetCategoryVehicle),
		Status:   domain.TaskStatusPending,
	}}
	env.sessions.On("Get", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)

	got, err := env.service.SkipTask(ctx, "task-vehicles-vehicle-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusSkipped, got.Tasks[0].Status)
	assert.Nil(t, got.Tasks[0].EntityID)
}

func TestComplete_PendingTasksDoNotBlock(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.CurrentStep = questionflow.StepReview
	state.Tasks = []domain.DataEntryTask{{
		ID:     "task-savings-savings-1",
		Type:   domain.TaskTypeAsset,
		Status: domain.TaskStatusPending,
	}}
	env.sessions.On("Get", mock.Anything).Return(state, nil)
	env.sessions.On("Save", mock.Anything, state).Return(nil)

	got, err := env.service.Complete(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsComplete)
	assert.Equal(t, domain.TaskStatusPending, got.Tasks[0].Status)
}

func TestReset_DeletesCreatedEntities(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	assetID := uuid.New()
	liabilityID := uuid.New()
	state := freshState()
	state.Tasks = []domain.DataEntryTask{
		{ID: "t1", Type: domain.TaskTypeAsset, Status: domain.TaskStatusCompleted, EntityID: &assetID},
		{ID: "t2", Type: domain.TaskTypeLiability, Status: domain.TaskStatusCompleted, EntityID: &liabilityID},
		{ID: "t3", Type: domain.TaskTypeAsset, Status: domain.TaskStatusSkipped},
		{ID: "t4", Type: domain.TaskTypeAsset, Status: domain.TaskStatusPending},
	}
	env.sessions.On("Get", mock.Anything).Return(state, nil)
	env.assets.On("Delete", mock.Anything, assetID).Return(nil)
	env.liabilities.On("Delete", mock.Anything, liabilityID).Return(nil)
	env.sessions.On("Reset", mock.Anything).Return(nil)

	require.NoError(t, env.service.Reset(ctx))

	env.assets.AssertNumberOfCalls(t, "Delete", 1)
	env.liabilities.AssertNumberOfCalls(t, "Delete", 1)
	env.sessions.AssertCalled(t, "Reset", mock.Anything)
}

func TestReset_NeverStartedIsNoop(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	env.sessions.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)

	require.NoError(t, env.service.Reset(ctx))
	env.sessions.AssertNotCalled(t, "Reset", mock.Anything)
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.CurrentStep = questionflow.StepReview
	env.sessions.On("GetOrCreate", mock.Anything).Return(state, nil)

	progress, err := env.service.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 16, progress.Step)
	assert.Equal(t, 16, progress.TotalSteps)
	assert.InDelta(t, 100.0, progress.Percentage, 0.001)
}

func TestCurrentQuestion(t *testing.T) {
	ctx := context.Background()
	env := newServiceEnv()

	state := freshState()
	state.CurrentStep = questionflow.StepCashAccounts
	env.sessions.On("GetOrCreate", mock.Anything).Return(state, nil)

	question, err := env.service.CurrentQuestion(ctx)
	require.NoError(t, err)
	assert.Equal(t, questionflow.StepCashAccounts, question.ID)
	assert.Equal(t, domain.InputSingleSelect, question.Kind)
}
