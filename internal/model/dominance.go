package model

// StateDominance is the per-state aggregate handed to the renderer.
// Shares are percentages over the canonical method set and sum to 100.
// Code is the two-letter USPS code, or empty when the state name has no
// entry in the code table; such rows are kept, never dropped.
type StateDominance struct {
	State          string             `json:"state"`
	Code           string             `json:"state_abbrev,omitempty"`
	Shares         map[string]float64 `json:"shares"`
	DominantMethod string             `json:"dominant_method"`
	Strength       float64            `json:"dominance_strength"`
}
