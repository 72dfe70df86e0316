package domain

import (
	"github.com/google/uuid"
)

// TaskType says which side of the balance sheet a task feeds
type TaskType string

const (
	TaskTypeAsset     TaskType = "asset"
	TaskTypeLiability TaskType = "liability"
)

// TaskStatus tracks a task through its lifecycle. Completed and skipped are
// terminal; a terminal task is never regenerated.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusSkipped   TaskStatus = "skipped"
)

// DataEntryTask is a pending obligation, generated from an onboarding answer,
// to supply details for one asset or liability of a given category. The id is
// derived from (question, category, ordinal) so repeated generation
// deduplicates by identity.
type DataEntryTask struct {
	ID          string
	Type        TaskType
	Category    string // AssetCategory or LiabilityCategory value per Type
	DefaultName string
	Status      TaskStatus
	EntityID    *uuid.UUID // set on completion
}

// Terminal reports whether the task reached a final state
func (t *DataEntryTask) Terminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusSkipped
}

// Complete transitions the task to completed, recording the entity it produced
func (t *DataEntryTask) Complete(entityID uuid.UUID) error {
	if t.Terminal() {
		return NewValidationError("task %s is already %s", t.ID, t.Status)
	}
	t.Status = TaskStatusCompleted
	t.EntityID = &entityID
	return nil
}

// Skip transitions the task to its terminal skipped state
func (t *DataEntryTask) Skip() error {
	if t.Terminal() {
		return NewValidationError("task %s is already %s", t.ID, t.Status)
	}
	t.Status = TaskStatusSkipped
	return nil
}
