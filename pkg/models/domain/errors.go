package domain

import "fmt"

// DataIntegrityError reports a Program referencing a client absent from the
// Catalog. The engine fails fast on it; a corrupt catalog cannot be repaired
// locally.
type DataIntegrityError struct {
	ProgramID string
	ClientID  string
}

func (e DataIntegrityError) Error() string {
	return fmt.Sprintf("program %q references unknown client %q", e.ProgramID, e.ClientID)
}

// ValidationError reports an internally inconsistent Filters value. The
// engine surfaces it instead of clamping, so upstream UI bugs stay visible.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
