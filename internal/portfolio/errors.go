package portfolio

import "fmt"

// CatalogError reports a catalog that cannot be loaded or breaks an invariant.
type CatalogError struct {
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error: %s", e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// ProjectNotFoundError is returned when a project index is out of range.
type ProjectNotFoundError struct {
	Index int
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project not found: %d", e.Index)
}
