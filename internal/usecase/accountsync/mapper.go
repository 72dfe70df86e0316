package accountsync

import (
	"strings"

	"github.com/youcanfi/networth-backend/internal/domain"
)

// CategoryMapping resolves a provider account to one side of the balance
// sheet and its category there
type CategoryMapping struct {
	IsAsset   bool
	Asset     domain.AssetCategory
	Liability domain.LiabilityCategory
}

type accountKey struct {
	accountType string
	subtype     string
}

var assetMappings = map[accountKey]domain.AssetCategory{
	{"depository", "checking"}:     domain.AssetCategoryCash,
	{"depository", "savings"}:      domain.AssetCategorySavings,
	{"depository", "money market"}: domain.AssetCategorySavings,
	{"depository", "cd"}:           domain.AssetCategorySavings,
	{"investment", "401k"}:         domain.AssetCategoryRetirement401k,
	{"investment", "403b"}:         domain.AssetCategoryRetirement401k,
	{"investment", "ira"}:          domain.AssetCategoryRetirementIRA,
	{"investment", "roth"}:         domain.AssetCategoryRetirementRoth,
	{"investment", "hsa"}:          domain.AssetCategoryRetirementHSA,
	{"investment", "pension"}:      domain.AssetCategoryRetirementPension,
	{"investment", "brokerage"}:    domain.AssetCategoryBrokerage,
	{"investment", "529"}:          domain.AssetCategoryOther,
}

var liabilityMappings = map[accountKey]domain.LiabilityCategory{
	{"credit", "credit card"}: domain.LiabilityCategoryCreditCard,
	{"loan", "auto"}:          domain.LiabilityCategoryAutoLoan,
	{"loan", "student"}:       domain.LiabilityCategoryStudentLoan,
	{"loan", "mortgage"}:      domain.LiabilityCategoryMortgage,
	{"loan", "personal"}:      domain.LiabilityCategoryPersonalLoan,
}

// MapProviderCategory maps a provider account type/subtype pair onto a local
// category. Unknown subtypes fall back to the type's "other" bucket; a type
// the tracker has no side for reports !ok.
func MapProviderCategory(accountType, accountSubtype string) (CategoryMapping, bool) {
	key := accountKey{
		accountType: strings.ToLower(accountType),
		subtype:     strings.ToLower(accountSubtype),
	}

	if category, ok := assetMappings[key]; ok {
		return CategoryMapping{IsAsset: true, Asset: category}, true
	}
	if category, ok := liabilityMappings[key]; ok {
		return CategoryMapping{IsAsset: false, Liability: category}, true
	}

	switch key.accountType {
	case "depository", "investment":
		return CategoryMapping{IsAsset: true, Asset: domain.AssetCategoryOther}, true
	case "credit", "loan":
		return CategoryMapping{IsAsset: false, Liability: domain.LiabilityCategoryOther}, true
	}

	return CategoryMapping{}, false
}
