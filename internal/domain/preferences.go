package domain

// BudgetTier is the closed set of budget ranges a user can pick at onboarding.
type BudgetTier string

const (
	BudgetEconomy  BudgetTier = "Economy"
	BudgetStandard BudgetTier = "Standard"
	BudgetLuxury   BudgetTier = "Luxury"
)

// Valid reports whether b is one of the known budget tiers.
func (b BudgetTier) Valid() bool {
	switch b {
	case BudgetEconomy, BudgetStandard, BudgetLuxury:
		return true
	}
	return false
}

// UserPreferences captures the onboarding answers: a budget range plus
// free-form interest and travel-style tags. Written once at onboarding,
// persisted, and read-only thereafter. Its presence in the persisted session
// is what tells startup to skip onboarding.
type UserPreferences struct {
	BudgetRange BudgetTier `json:"budgetRange"`
	Interests   []string   `json:"interests"`
	TravelStyle []string   `json:"travelStyle"`
}
