package taskgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youcanfi/networth-backend/internal/domain"
	"github.com/youcanfi/networth-backend/internal/usecase/questionflow"
)

func TestTasksFor_SingleSelectYes(t *testing.T) {
	answer := domain.Answer{QuestionID: questionflow.StepMortgages, Values: []string{"yes"}}

	tasks := TasksFor(questionflow.StepMortgages, answer, nil)

	require.Len(t, tasks, 1)
	assert.Equal(t, "task-mortgages-mortgage-1", tasks[0].ID)
	assert.Equal(t, domain.TaskTypeLiability, tasks[0].Type)
	assert.Equal(t, "mortgage", tasks[0].Category)
	assert.Equal(t, "Mortgage", tasks[0].DefaultName)
	assert.Equal(t, domain.TaskStatusPending, tasks[0].Status)
}

func TestTasksFor_SingleSelectNo(t *testing.T) {
	answer := domain.Answer{QuestionID: questionflow.StepCashAccounts, Values: []string{"no"}}
	assert.Empty(t, TasksFor(questionflow.StepCashAccounts, answer, nil))
}

func TestTasksFor_MultiSelect(t *testing.T) {
	answer := domain.Answer{
		QuestionID: questionflow.StepRetirement,
		Values:     []string{"401k", "roth", "hsa"},
	}

	tasks := TasksFor(questionflow.StepRetirement, answer, nil)

	require.Len(t, tasks, 3)
	assert.Equal(t, "retirement_401k", tasks[0].Category)
	assert.Equal(t, "401(k)", tasks[0].DefaultName)
	assert.Equal(t, "retirement_roth", tasks[1].Category)
	assert.Equal(t, "retirement_hsa", tasks[2].Category)
}

func TestTasksFor_ItemizationCounts(t *testing.T) {
	answer := domain.Answer{
		QuestionID: questionflow.StepRetirement,
		Values:     []string{"401k", "ira"},
		Counts:     map[string]int{"401k": 2},
	}

	tasks := TasksFor(questionflow.StepRetirement, answer, nil)

	require.Len(t, tasks, 3)
	assert.Equal(t, "task-retirement-retirement_401k-1", tasks[0].ID)
	assert.Equal(t, "401(k) 1", tasks[0].DefaultName)
	assert.Equal(t, "task-retirement-retirement_401k-2", tasks[1].ID)
	assert.Equal(t, "401(k) 2", tasks[1].DefaultName)
	// No count for ira means one unnumbered task
	assert.Equal(t, "Traditional IRA", tasks[2].DefaultName)
}

func TestTasksFor_NoDuplicatesForCompletedCategories(t *testing.T) {
	answer := domain.Answer{QuestionID: questionflow.StepInvestments, Values: []string{"yes"}}

	first := TasksFor(questionflow.StepInvestments, answer, nil)
	require.Len(t, first, 1)

	entityID := uuid.New()
	require.NoError(t, first[0].Complete(entityID))

	// Re-answering with the first call's tasks completed produces nothing
	second := TasksFor(questionflow.StepInvestments, answer, first)
	assert.Empty(t, second)
}

func TestTasksFor_SkippedTasksAreNotRegenerated(t *testing.T) {
	answer := domain.Answer{QuestionID: questionflow.StepCreditCards, Values: []string{"yes"}}

	first := TasksFor(questionflow.StepCreditCards, answer, nil)
	require.Len(t, first, 1)
	require.NoError(t, first[0].Skip())

	assert.Empty(t, TasksFor(questionflow.StepCreditCards, answer, first))
}

func TestTasksFor_NewCategoryOnReanswer(t *testing.T) {
	first := TasksFor(questionflow.StepRealEstate, domain.Answer{
		QuestionID: questionflow.StepRealEstate,
		Values:     []string{"primary"},
	}, nil)
	require.Len(t, first, 1)

	// User re-answers adding a rental; only the new category surfaces
	second := TasksFor(questionflow.StepRealEstate, domain.Answer{
		QuestionID: questionflow.StepRealEstate,
		Values:     []string{"primary", "rental"},
	}, first)

	require.Len(t, second, 1)
	assert.Equal(t, "real_estate_rental", second[0].Category)
}

func TestTasksFor_RaisedCountAddsOnlyNewOrdinals(t *testing.T) {
	base := domain.Answer{
		QuestionID: questionflow.StepVehicles,
		Values:     []string{"yes"},
		Count:      1,
	}
	first := TasksFor(questionflow.StepVehicles, base, nil)
	require.Len(t, first, 1)

	raised := base
	raised.Count = 3
	second := TasksFor(questionflow.StepVehicles, raised, first)

	require.Len(t, second, 2)
	assert.Equal(t, "task-vehicles-vehicle-2", second[0].ID)
	assert.Equal(t, "task-vehicles-vehicle-3", second[1].ID)
}

func TestTasksFor_QuestionWithoutRules(t *testing.T) {
	answer := domain.Answer{QuestionID: questionflow.StepWelcome}
	assert.Nil(t, TasksFor(questionflow.StepWelcome, answer, nil))
}
