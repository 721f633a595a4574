// Package billing provides the static payment display data: saved payment
// methods, subscription plans and billing history. It is a read-only mock
// content provider; no payments are processed anywhere.
package billing

// PaymentMethod is one saved card.
type PaymentMethod struct {
	ID          string
	Brand       string
	Last4       string
	ExpiryMonth int
	ExpiryYear  int
	Default     bool
}

// Plan is one subscription tier.
type Plan struct {
	ID       string
	Name     string
	Price    float64
	Interval string
	Features []string
}

// Invoice is one billing-history line.
type Invoice struct {
	ID          string
	Date        string
	Amount      float64
	Status      string
	Description string
}

// CurrentPlanID is the tier the demo account is shown on.
const CurrentPlanID = "pro"

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{ID: "1", Brand: "Visa", Last4: "4242", ExpiryMonth: 12, ExpiryYear: 2025, Default: true},
		{ID: "2", Brand: "Mastercard", Last4: "5555", ExpiryMonth: 8, ExpiryYear: 2024},
	}
}

func Plans() []Plan {
	return []Plan{
		{
			ID:       "free",
			Name:     "Free",
			Price:    0,
			Interval: "month",
			Features: []string{"5 scans per month", "Basic routine tracking", "Community access"},
		},
		{
			ID:       "pro",
			Name:     "Pro",
			Price:    9.99,
			Interval: "month",
			Features: []string{"Unlimited scans", "Ingredient explanations", "Allergy alerts", "Routine reminders"},
		},
		{
			ID:       "premium",
			Name:     "Premium",
			Price:    19.99,
			Interval: "month",
			Features: []string{"Everything in Pro", "Personal skincare coach", "Custom routines", "Early access to features"},
		},
	}
}

func History() []Invoice {
	return []Invoice{
		{ID: "INV-004", Date: "2024-04-01", Amount: 9.99, Status: "paid", Description: "Pro Plan - Monthly"},
		{ID: "INV-003", Date: "2024-03-01", Amount: 9.99, Status: "paid", Description: "Pro Plan - Monthly"},
		{ID: "INV-002", Date: "2024-02-01", Amount: 9.99, Status: "paid", Description: "Pro Plan - Monthly"},
		{ID: "INV-001", Date: "2024-01-01", Amount: 9.99, Status: "paid", Description: "Pro Plan - Monthly"},
	}
}

// CurrentPlan returns the plan matching CurrentPlanID.
func CurrentPlan() Plan {
	for _, p := range Plans() {
		if p.ID == CurrentPlanID {
			return p
		}
	}
	return Plans()[0]
}
