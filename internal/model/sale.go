// Package model defines the records that flow through the sales pipeline.
package model

// Canonical sales method labels.
const (
	MethodCall      = "Call"
	MethodEmail     = "Email"
	MethodEmailCall = "Email + Call"
)

// CanonicalMethods returns the closed set of sales method labels in
// tie-break order. Dominance derivation resolves equal shares to the
// first method in this order.
func CanonicalMethods() []string {
	return []string{MethodCall, MethodEmail, MethodEmailCall}
}

// Sale is one customer transaction row. Revenue is nil when the source
// cell is empty; cleaning replaces it with the method mean.
type Sale struct {
	State           string   `json:"state"`
	Method          string   `json:"sales_method"`
	Revenue         *float64 `json:"revenue"`
	YearsAsCustomer int      `json:"years_as_customer"`
}
