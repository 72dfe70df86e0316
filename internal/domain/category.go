package domain

// AssetCategory enumerates every asset category the tracker understands.
// Label, Color and Valid are total over the enum so adding a category is a
// compile-visible change in one place.
type AssetCategory string

const (
	AssetCategoryCash              AssetCategory = "cash"
	AssetCategorySavings           AssetCategory = "savings"
	AssetCategoryRetirement401k    AssetCategory = "retirement_401k"
	AssetCategoryRetirementIRA     AssetCategory = "retirement_ira"
	AssetCategoryRetirementRoth    AssetCategory = "retirement_roth"
	AssetCategoryRetirementHSA     AssetCategory = "retirement_hsa"
	AssetCategoryRetirementPension AssetCategory = "retirement_pension"
	AssetCategoryRetirementOther   AssetCategory = "retirement_other"
	AssetCategoryBrokerage         AssetCategory = "brokerage"
	AssetCategoryRealEstatePrimary AssetCategory = "real_estate_primary"
	AssetCategoryRealEstateRental  AssetCategory = "real_estate_rental"
	AssetCategoryRealEstateLand    AssetCategory = "real_estate_land"
	AssetCategoryVehicle           AssetCategory = "vehicle"
	AssetCategoryBusiness          AssetCategory = "business"
	AssetCategoryValuables         AssetCategory = "valuables"
	AssetCategoryOther             AssetCategory = "other"
)

// fallback display values for categories that slip past validation
const (
	defaultAssetColor     = "#a0a0a0"
	defaultLiabilityColor = "#c7b8b8"
)

// Label returns the display label for the category
func (c AssetCategory) Label() string {
	switch c {
	case AssetCategoryCash:
		return "Cash & Checking"
	case AssetCategorySavings:
		return "Savings"
	case AssetCategoryRetirement401k:
		return "401(k)"
	case AssetCategoryRetirementIRA:
		return "Traditional IRA"
	case AssetCategoryRetirementRoth:
		return "Roth IRA"
	case AssetCategoryRetirementHSA:
		return "HSA"
	case AssetCategoryRetirementPension:
		return "Pension"
	case AssetCategoryRetirementOther:
		return "Other Retirement"
	case AssetCategoryBrokerage:
		return "Brokerage"
	case AssetCategoryRealEstatePrimary:
		return "Primary Residence"
	case AssetCategoryRealEstateRental:
		return "Rental Property"
	case AssetCategoryRealEstateLand:
		return "Land"
	case AssetCategoryVehicle:
		return "Vehicles"
	case AssetCategoryBusiness:
		return "Business"
	case AssetCategoryValuables:
		return "Valuables"
	case AssetCategoryOther:
		return "Other Assets"
	default:
		return string(c)
	}
}

// Color returns the chart color for the category
func (c AssetCategory) Color() string {
	switch c {
	case AssetCategoryCash:
		return "#4a7c59"
	case AssetCategorySavings:
		return "#5a9b6a"
	case AssetCategoryRetirement401k:
		return "#1e3a5f"
	case AssetCategoryRetirementIRA:
		return "#2d5a8a"
	case AssetCategoryRetirementRoth:
		return "#3d6a9a"
	case AssetCategoryRetirementHSA:
		return "#4d7aaa"
	case AssetCategoryRetirementPension:
		return "#5d8aba"
	case AssetCategoryRetirementOther:
		return "#6d9aca"
	case AssetCategoryBrokerage:
		return "#d4a84b"
	case AssetCategoryRealEstatePrimary:
		return "#8b7355"
	case AssetCategoryRealEstateRental:
		return "#9b8365"
	case AssetCategoryRealEstateLand:
		return "#ab9375"
	case AssetCategoryVehicle:
		return "#636e72"
	case AssetCategoryBusiness:
		return "#2d3436"
	case AssetCategoryValuables:
		return "#b8922f"
	case AssetCategoryOther:
		return defaultAssetColor
	default:
		return defaultAssetColor
	}
}

// Valid reports whether the category is a known asset category
func (c AssetCategory) Valid() bool {
	switch c {
	case AssetCategoryCash, AssetCategorySavings,
		AssetCategoryRetirement401k, AssetCategoryRetirementIRA,
		AssetCategoryRetirementRoth, AssetCategoryRetirementHSA,
		AssetCategoryRetirementPension, AssetCategoryRetirementOther,
		AssetCategoryBrokerage,
		AssetCategoryRealEstatePrimary, AssetCategoryRealEstateRental,
		AssetCategoryRealEstateLand,
		AssetCategoryVehicle, AssetCategoryBusiness, AssetCategoryValuables,
		AssetCategoryOther:
		return true
	}
	return false
}

// LiabilityCategory enumerates every liability category the tracker understands
type LiabilityCategory string

const (
	LiabilityCategoryMortgage     LiabilityCategory = "mortgage"
	LiabilityCategoryCreditCard   LiabilityCategory = "credit_card"
	LiabilityCategoryAutoLoan     LiabilityCategory = "auto_loan"
	LiabilityCategoryStudentLoan  LiabilityCategory = "student_loan"
	LiabilityCategoryPersonalLoan LiabilityCategory = "personal_loan"
	LiabilityCategoryOther        LiabilityCategory = "other"
)

// Label returns the display label for the category
func (c LiabilityCategory) Label() string {
	switch c {
	case LiabilityCategoryMortgage:
		return "Mortgage"
	case LiabilityCategoryCreditCard:
		return "Credit Cards"
	case LiabilityCategoryAutoLoan:
		return "Auto Loan"
	case LiabilityCategoryStudentLoan:
		return "Student Loans"
	case LiabilityCategoryPersonalLoan:
		return "Personal Loan"
	case LiabilityCategoryOther:
		return "Other Debt"
	default:
		return string(c)
	}
}

// Color returns the chart color for the category
func (c LiabilityCategory) Color() string {
	switch c {
	case LiabilityCategoryMortgage:
		return "#c75c5c"
	case LiabilityCategoryCreditCard:
		return "#d77070"
	case LiabilityCategoryAutoLoan:
		return "#e78484"
	case LiabilityCategoryStudentLoan:
		return "#f79898"
	case LiabilityCategoryPersonalLoan:
		return "#e7a8a8"
	case LiabilityCategoryOther:
		return defaultLiabilityColor
	default:
		return defaultLiabilityColor
	}
}

// Valid reports whether the category is a known liability category
func (c LiabilityCategory) Valid() bool {
	switch c {
	case LiabilityCategoryMortgage, LiabilityCategoryCreditCard,
		LiabilityCategoryAutoLoan, LiabilityCategoryStudentLoan,
		LiabilityCategoryPersonalLoan, LiabilityCategoryOther:
		return true
	}
	return false
}
