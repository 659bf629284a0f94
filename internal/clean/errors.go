package clean

import "fmt"

// UnknownMethodError reports a raw sales_method value with no entry in
// the alias table. Cleaning fails hard on these rather than letting a
// misclassified row skew the per-state grouping.
type UnknownMethodError struct {
	Raw string
	Row int
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown sales method %q at row %d", e.Raw, e.Row)
}

// ImputationError reports a method whose mean revenue is undefined
// because no row of that method carries a revenue value.
type ImputationError struct {
	Method string
}

func (e *ImputationError) Error() string {
	return fmt.Sprintf("cannot impute revenue for method %q: no non-missing values", e.Method)
}
