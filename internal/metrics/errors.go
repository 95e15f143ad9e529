package metrics

import (
	"fmt"
	"strings"
)

// EmptyCatalogError indicates a statistical aggregate was requested over a
// catalog with zero rows, where mean and median are undefined.
type EmptyCatalogError struct {
	Op string
}

func (e *EmptyCatalogError) Error() string {
	return fmt.Sprintf("%s: catalog is empty", e.Op)
}

// InvalidCriterionError indicates TopProducts was asked to rank by an
// unrecognized field.
type InvalidCriterionError struct {
	Criterion string
}

func (e *InvalidCriterionError) Error() string {
	return fmt.Sprintf("unknown ranking criterion %q (valid: %s)",
		e.Criterion, strings.Join(Criteria, ", "))
}
