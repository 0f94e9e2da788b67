package models

import "strings"

// Budget is one of the fixed budget brackets offered on the request form.
type Budget string

const (
	BudgetUnder5K Budget = "< 5K"
	Budget5KTo10K Budget = "5K-10K"
	BudgetOver10K Budget = "> 10K"
)

// budgetAliases maps every accepted spelling, lowercased, to its bracket.
// The French labels are the values posted by the site's request form.
var budgetAliases = map[string]Budget{
	"< 5k":          BudgetUnder5K,
	"<5k":           BudgetUnder5K,
	"moins de 5k €": BudgetUnder5K,
	"moins de 5k":   BudgetUnder5K,
	"5k-10k":        Budget5KTo10K,
	"5k-10k €":      Budget5KTo10K,
	"> 10k":         BudgetOver10K,
	">10k":          BudgetOver10K,
	"plus de 10k €": BudgetOver10K,
	"plus de 10k":   BudgetOver10K,
}

// ParseBudget normalizes s to a Budget. The second result is false when s
// names no known bracket.
func ParseBudget(s string) (Budget, bool) {
	b, ok := budgetAliases[strings.ToLower(strings.TrimSpace(s))]
	return b, ok
}

func (b Budget) String() string {
	return string(b)
}

// ProjectRequest is the payload of POST /api/custom-projects. Nothing of it
// is stored; it only drives the two notification emails.
type ProjectRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Budget    string `json:"budget"`
	ServiceID string `json:"serviceId"`
	Summary   string `json:"summary"`
}

// StatusResponse is the envelope used by every endpoint that has no payload
// of its own.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)
