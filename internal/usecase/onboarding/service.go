// Package onboarding drives the guided setup session: it walks the question
// flow, turns answers into data-entry tasks, and turns completed tasks into
// assets and liabilities. The session is loaded and saved around every
// operation; nothing here is ambient.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/youcanfi/networth-backend/internal/domain"
	"github.com/youcanfi/networth-backend/internal/usecase/questionflow"
	"github.com/youcanfi/networth-backend/internal/usecase/taskgen"
)

// Service orchestrates the onboarding session
type Service struct {
	sessions    domain.OnboardingRepository
	assets      domain.AssetRepository
	liabilities domain.LiabilityRepository
	flow        *questionflow.Engine
}

// NewService creates a new Service instance
func NewService(
	sessions domain.OnboardingRepository,
	assets domain.AssetRepository,
	liabilities domain.LiabilityRepository,
) *Service {
	return &Service{
		sessions:    sessions,
		assets:      assets,
		liabilities: liabilities,
		flow:        questionflow.New(),
	}
}

// GetOrCreateState returns the current session, starting a fresh one at the
// first question when none exists
func (s *Service) GetOrCreateState(ctx context.Context) (*domain.OnboardingState, error) {
	state, err := s.sessions.GetOrCreate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding state: %w", err)
	}
	if state.CurrentStep == "" {
		state.CurrentStep = s.flow.First()
		if err := s.sessions.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to save onboarding state: %w", err)
		}
	}
	return state, nil
}

// CurrentQuestion returns the question the session is waiting on
func (s *Service) CurrentQuestion(ctx context.Context) (domain.Question, error) {
	state, err := s.GetOrCreateState(ctx)
	if err != nil {
		return domain.Question{}, err
	}
	return s.flow.Question(state.CurrentStep)
}

// SetHouseholdType records who the plan is for
func (s *Service) SetHouseholdType(ctx context.Context, household domain.HouseholdType) (*domain.OnboardingState, error) {
	if !household.Valid() {
		return nil, domain.NewValidationError("invalid household type %q", household)
	}

	state, err := s.GetOrCreateState(ctx)
	if err != nil {
		return nil, err
	}

	state.HouseholdType = &household
	state.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return state, nil
}

// AnswerQuestion records the answer, generates the data-entry tasks it calls
// for, and advances the session to the next question. Values outside the
// question's answer domain are rejected before anything is stored.
// Re-answering an earlier question regenerates only tasks whose identity does
// not already exist; tasks already completed or skipped are never recreated.
func (s *Service) AnswerQuestion(ctx context.Context, answer domain.Answer) (*domain.OnboardingState, error) {
	question, err := s.flow.Question(answer.QuestionID)
	if err != nil {
		return nil, err
	}

	if question.Kind == domain.InputSingleSelect && len(answer.Values) > 1 {
		return nil, domain.NewValidationError("question %s takes a single answer", question.ID)
	}
	for _, value := range answer.Values {
		if !question.Accepts(value) {
			return nil, domain.NewValidationError("answer %q is not an option for question %s",
				value, question.ID)
		}
	}

	state, err := s.GetOrCreateState(ctx)
	if err != nil {
		return nil, err
	}

	state.RecordAnswer(answer)

	if question.ID == questionflow.StepHousehold && len(answer.Values) == 1 {
		household := domain.HouseholdType(answer.Values[0])
		state.HouseholdType = &household
	}

	generated := taskgen.TasksFor(question.ID, answer, state.Tasks)
	state.Tasks = append(state.Tasks, generated...)

	household := domain.HouseholdIndividual
	if state.HouseholdType != nil {
		household = *state.HouseholdType
	}
	next, err := s.flow.NextQuestion(question.ID, answer, household)
	if err != nil {
		return nil, err
	}

	// Answering an earlier question again must not rewind the session
	if question.ID == state.CurrentStep && next != "" {
		state.CurrentStep = next
	}

	state.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return state, nil
}

// CompleteTaskInput carries the user-entered details for one task
type CompleteTaskInput struct {
	Name         string
	Value        decimal.Decimal
	InterestRate *decimal.Decimal // liabilities only
}

// CompleteTask creates the asset or liability a task stands for and marks the
// task completed with the created entity's id
func (s *Service) CompleteTask(ctx context.Context, taskID string, input CompleteTaskInput) (*domain.OnboardingState, error) {
	state, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}

	task := state.TaskByID(taskID)
	if task == nil {
		return nil, fmt.Errorf("task %q: %w", taskID, domain.ErrNotFound)
	}

	name := input.Name
	if name == "" {
		name = task.DefaultName
	}

	entityID, err := s.createEntity(ctx, task, name, input)
	if err != nil {
		return nil, err
	}

	if err := task.Complete(entityID); err != nil {
		return nil, err
	}

	state.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return state, nil
}

func (s *Service) createEntity(ctx context.Context, task *domain.DataEntryTask, name string, input CompleteTaskInput) (uuid.UUID, error) {
	// Terminal tasks are caught here before the entity write, so a repeated
	// completion never creates a duplicate record
	if task.Terminal() {
		return uuid.Nil, domain.NewValidationError("task %s is already %s", task.ID, task.Status)
	}

	switch task.Type {
	case domain.TaskTypeAsset:
		asset := &domain.Asset{
			ID:       uuid.New(),
			Category: domain.AssetCategory(task.Category),
			Name:     name,
			Value:    input.Value,
		}
		if err := asset.Validate(); err != nil {
			return uuid.Nil, err
		}
		if err := s.assets.Create(ctx, asset); err != nil {
			return uuid.Nil, fmt.Errorf("failed to create asset: %w", err)
		}
		return asset.ID, nil
	case domain.TaskTypeLiability:
		liability := &domain.Liability{
			ID:           uuid.New(),
			Category:     domain.LiabilityCategory(task.Category),
			Name:         name,
			Balance:      input.Value,
			InterestRate: input.InterestRate,
		}
		if err := liability.Validate(); err != nil {
			return uuid.Nil, err
		}
		if err := s.liabilities.Create(ctx, liability); err != nil {
			return uuid.Nil, fmt.Errorf("failed to create liability: %w", err)
		}
		return liability.ID, nil
	}
	return uuid.Nil, domain.NewValidationError("task %s has invalid type %q", task.ID, task.Type)
}

// SkipTask marks a task skipped without creating anything
func (s *Service) SkipTask(ctx context.Context, taskID string) (*domain.OnboardingState, error) {
	state, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}

	task := state.TaskByID(taskID)
	if task == nil {
		return nil, fmt.Errorf("task %q: %w", taskID, domain.ErrNotFound)
	}
	if err := task.Skip(); err != nil {
		return nil, err
	}

	state.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return state, nil
}

// Complete finishes onboarding. Pending tasks do not block completion; they
// stay available for later entry.
func (s *Service) Complete(ctx context.Context) (*domain.OnboardingState, error) {
	state, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}

	state.IsComplete = true
	state.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save onboarding state: %w", err)
	}
	return state, nil
}

// Reset discards the session and deletes every entity its completed tasks
// created
func (s *Service) Reset(ctx context.Context) error {
	state, err := s.sessions.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}

	for _, task := range state.Tasks {
		if task.Status != domain.TaskStatusCompleted || task.EntityID == nil {
			continue
		}
		switch task.Type {
		case domain.TaskTypeAsset:
			err = s.assets.Delete(ctx, *task.EntityID)
		case domain.TaskTypeLiability:
			err = s.liabilities.Delete(ctx, *task.EntityID)
		}
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to delete entity for task %s: %w", task.ID, err)
		}
	}

	return s.sessions.Reset(ctx)
}

// Progress reports where the session is inside the flow
func (s *Service) Progress(ctx context.Context) (questionflow.Progress, error) {
	state, err := s.GetOrCreateState(ctx)
	if err != nil {
		return questionflow.Progress{}, err
	}
	return s.flow.Progress(state.CurrentStep), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
