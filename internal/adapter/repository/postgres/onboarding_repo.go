package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// onboardingRepository implements domain.OnboardingRepository. The session is
// a single row; answers and tasks live in jsonb columns since they are always
// read and written as a whole.
type onboardingRepository struct {
	db *DB
}

// NewOnboardingRepository creates a new onboarding repository
func NewOnboardingRepository(db *DB) domain.OnboardingRepository {
	return &onboardingRepository{db: db}
}

// jsonAnswer is the jsonb shape of one recorded answer
type jsonAnswer struct {
	QuestionID string         `json:"question_id"`
	Values     []string       `json:"values"`
	Count      int            `json:"count,omitempty"`
	Counts     map[string]int `json:"counts,omitempty"`
}

// jsonTask is the jsonb shape of one data-entry task
type jsonTask struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	DefaultName string  `json:"default_name"`
	Status      string  `json:"status"`
	EntityID    *string `json:"entity_id,omitempty"`
}

// GetOrCreate retrieves the session, inserting a blank one when onboarding
// has not started yet
func (r *onboardingRepository) GetOrCreate(ctx context.Context) (*domain.OnboardingState, error) {
	state, err := r.Get(ctx)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	state = &domain.OnboardingState{
		ID:      uuid.New(),
		Answers: make(map[domain.QuestionID]domain.Answer),
	}

	query := `
		INSERT INTO onboarding_state (id, current_step, household_type, answers, tasks, is_complete, created_at, updated_at)
		VALUES ($1, $2, NULL, '{}', '[]', FALSE, NOW(), NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, state.ID, string(state.CurrentStep)); err != nil {
		return nil, fmt.Errorf("failed to create onboarding state: %w", err)
	}

	return state, nil
}

// Get retrieves the session
func (r *onboardingRepository) Get(ctx context.Context) (*domain.OnboardingState, error) {
	query := `
		SELECT id, current_step, household_type, answers, tasks, is_complete, created_at, updated_at
		FROM onboarding_state
		LIMIT 1
	`

	var state domain.OnboardingState
	var household sql.NullString
	var answersJSON, tasksJSON []byte

	err := r.db.QueryRowContext(ctx, query).Scan(
		&state.ID,
		&state.CurrentStep,
		&household,
		&answersJSON,
		&tasksJSON,
		&state.IsComplete,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("onboarding state: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get onboarding state: %w", err)
	}

	if household.Valid {
		h := domain.HouseholdType(household.String)
		state.HouseholdType = &h
	}

	if err := decodeAnswers(answersJSON, &state); err != nil {
		return nil, err
	}
	if err := decodeTasks(tasksJSON, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// Save persists the whole session state
func (r *onboardingRepository) Save(ctx context.Context, state *domain.OnboardingState) error {
	answersJSON, err := encodeAnswers(state)
	if err != nil {
		return err
	}
	tasksJSON, err := encodeTasks(state)
	if err != nil {
		return err
	}

	var household interface{}
	if state.HouseholdType != nil {
		household = string(*state.HouseholdType)
	}

	query := `
		UPDATE onboarding_state
		SET current_step = $2, household_type = $3, answers = $4, tasks = $5,
		    is_complete = $6, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		state.ID,
		string(state.CurrentStep),
		household,
		answersJSON,
		tasksJSON,
		state.IsComplete,
	)
	if err != nil {
		return fmt.Errorf("failed to save onboarding state: %w", err)
	}

	return requireRowAffected(result, "onboarding state", state.ID)
}

// Reset discards the session
func (r *onboardingRepository) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM onboarding_state`); err != nil {
		return fmt.Errorf("failed to reset onboarding state: %w", err)
	}
	return nil
}

func encodeAnswers(state *domain.OnboardingState) ([]byte, error) {
	answers := make(map[string]jsonAnswer, len(state.Answers))
	for id, a := range state.Answers {
		answers[string(id)] = jsonAnswer{
			QuestionID: string(a.QuestionID),
			Values:     a.Values,
			Count:      a.Count,
			Counts:     a.Counts,
		}
	}
	data, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	return data, nil
}

func decodeAnswers(data []byte, state *domain.OnboardingState) error {
	var answers map[string]jsonAnswer
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("failed to decode answers: %w", err)
	}
	state.Answers = make(map[domain.QuestionID]domain.Answer, len(answers))
	for id, a := range answers {
		state.Answers[domain.QuestionID(id)] = domain.Answer{
			QuestionID: domain.QuestionID(a.QuestionID),
			Values:     a.Values,
			Count:      a.Count,
			Counts:     a.Counts,
		}
	}
	return nil
}

func encodeTasks(state *domain.OnboardingState) ([]byte, error) {
	tasks := make([]jsonTask, 0, len(state.Tasks))
	for _, t := range state.Tasks {
		task := jsonTask{
			ID:          t.ID,
			Type:        string(t.Type),
			Category:    t.Category,
			DefaultName: t.DefaultName,
			Status:      string(t.Status),
		}
		if t.EntityID != nil {
			s := t.EntityID.String()
			task.EntityID = &s
		}
		tasks = append(tasks, task)
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

func decodeTasks(data []byte, state *domain.OnboardingState) error {
	var tasks []jsonTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		return fmt.Errorf("failed to decode tasks: %w", err)
	}
	state.Tasks = make([]domain.DataEntryTask, 0, len(tasks))
	for _, t := range tasks {
		task := domain.DataEntryTask{
			ID:          t.ID,
			Type:        domain.TaskType(t.Type),
			Category:    t.Category,
			DefaultName: t.DefaultName,
			Status:      domain.TaskStatus(t.Status),
		}
		if t.EntityID != nil {
			id, err := uuid.Parse(*t.EntityID)
			if err != nil {
				return fmt.Errorf("failed to parse task entity_id: %w", err)
			}
			task.EntityID = &id
		}
		state.Tasks = append(state.Tasks, task)
	}
	return nil
}
