// Package taskgen turns answered onboarding questions into pending data-entry
// tasks. Generation is identity-based: task ids are derived from the question,
// category and ordinal, so answering the same question twice never duplicates
// a task that already exists, whatever state it reached.
package taskgen

import (
	"fmt"

	"github.com/youcanfi/networth-backend/internal/domain"
	"github.com/youcanfi/networth-backend/internal/usecase/questionflow"
)

// template describes the task one answer option produces
type template struct {
	taskType    domain.TaskType
	category    string
	defaultName string
}

// rules maps question id → answer option → task template. Options without an
// entry ("no", "none") generate nothing.
var rules = map[domain.QuestionID]map[string]template{
	questionflow.StepCashAccounts: {
		"yes": {domain.TaskTypeAsset, string(domain.AssetCategoryCash), "Cash & Checking"},
	},
	questionflow.StepSavings: {
		"yes": {domain.TaskTypeAsset, string(domain.AssetCategorySavings), "Savings"},
	},
	questionflow.StepRetirement: {
		"401k":             {domain.TaskTypeAsset, string(domain.AssetCategoryRetirement401k), "401(k)"},
		"ira":              {domain.TaskTypeAsset, string(domain.AssetCategoryRetirementIRA), "Traditional IRA"},
		"roth":             {domain.TaskTypeAsset, string(domain.AssetCategoryRetirementRoth), "Roth IRA"},
		"hsa":              {domain.TaskTypeAsset, string(domain.AssetCategoryRetirementHSA), "HSA"},
		"pension":          {domain.TaskTypeAsset, string(domain.AssetCategoryRetirementPension), "Pension"},
		"other_retirement": {domain.TaskTypeAsset, string(domain.AssetCategoryRetirementOther), "Other Retirement"},
	},
	questionflow.StepInvestments: {
		"yes": {domain.TaskTypeAsset, string(domain.AssetCategoryBrokerage), "Brokerage Account"},
	},
	questionflow.StepRealEstate: {
		"primary": {domain.TaskTypeAsset, string(domain.AssetCategoryRealEstatePrimary), "Primary Residence"},
		"rental":  {domain.TaskTypeAsset, string(domain.AssetCategoryRealEstateRental), "Rental Property"},
		"land":    {domain.TaskTypeAsset, string(domain.AssetCategoryRealEstateLand), "Land"},
	},
	questionflow.StepVehicles: {
		"yes": {domain.TaskTypeAsset, string(domain.AssetCategoryVehicle), "Vehicle"},
	},
	questionflow.StepOtherAssets: {
		"business":  {domain.TaskTypeAsset, string(domain.AssetCategoryBusiness), "Business"},
		"valuables": {domain.TaskTypeAsset, string(domain.AssetCategoryValuables), "Valuables"},
		"other":     {domain.TaskTypeAsset, string(domain.AssetCategoryOther), "Other Asset"},
	},
	questionflow.StepMortgages: {
		"yes": {domain.TaskTypeLiability, string(domain.LiabilityCategoryMortgage), "Mortgage"},
	},
	questionflow.StepCreditCards: {
		"yes": {domain.TaskTypeLiability, string(domain.LiabilityCategoryCreditCard), "Credit Card"},
	},
	questionflow.StepAutoLoans: {
		"yes": {domain.TaskTypeLiability, string(domain.LiabilityCategoryAutoLoan), "Auto Loan"},
	},
	questionflow.StepStudentLoans: {
		"yes": {domain.TaskTypeLiability, string(domain.LiabilityCategoryStudentLoan), "Student Loan"},
	},
	questionflow.StepOtherDebts: {
		"yes": {domain.TaskTypeLiability, string(domain.LiabilityCategoryOther), "Other Debt"},
	},
}

// TaskID builds the stable identity for the nth task of a category under a
// question. Ordinals start at 1.
func TaskID(questionID domain.QuestionID, category string, ordinal int) string {
	return fmt.Sprintf("task-%s-%s-%d", questionID, category, ordinal)
}

// TasksFor generates the pending tasks an answer calls for, minus any whose
// identity already exists in existing. Options the question's rules don't
// know ("no", "none", or free-form noise) generate nothing. The itemization
// count on the answer produces that many numbered tasks per selected option.
func TasksFor(questionID domain.QuestionID, answer domain.Answer, existing []domain.DataEntryTask) []domain.DataEntryTask {
	questionRules, ok := rules[questionID]
	if !ok {
		return nil
	}

	seen := make(map[string]bool, len(existing))
	for _, task := range existing {
		seen[task.ID] = true
	}

	var generated []domain.DataEntryTask
	for _, option := range answer.Values {
		tpl, ok := questionRules[option]
		if !ok {
			continue
		}

		count := answer.CountFor(option)
		for i := 1; i <= count; i++ {
			id := TaskID(questionID, tpl.category, i)
			if seen[id] {
				continue
			}
			seen[id] = true

			name := tpl.defaultName
			if count > 1 {
				name = fmt.Sprintf("%s %d", name, i)
			}

			generated = append(generated, domain.DataEntryTask{
				ID:          id,
				Type:        tpl.taskType,
				Category:    tpl.category,
				DefaultName: name,
				Status:      domain.TaskStatusPending,
			})
		}
	}

	return generated
}
