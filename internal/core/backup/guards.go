// Package backup contains the pure validation logic for restore files.
// Guards are pure functions that evaluate preconditions without side effects.
package backup

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// ImportContext provides context for restore-file guards. The three shape
// markers correspond to the top-level profile object and the two entity
// arrays of the backup format.
type ImportContext struct {
	HasProfile   bool
	HasHospitals bool
	HasShifts    bool
}

// CanImport evaluates whether a backup file may replace local state.
// Rules:
// - The profile object must be present
// - The hospitals array must be present (empty is fine)
// - The shifts array must be present (empty is fine)
func CanImport(ctx ImportContext) GuardResult {
	if !ctx.HasProfile {
		return GuardResult{Allowed: false, Reason: "invalid backup file: missing userProfile"}
	}
	if !ctx.HasHospitals {
		return GuardResult{Allowed: false, Reason: "invalid backup file: missing hospitals"}
	}
	if !ctx.HasShifts {
		return GuardResult{Allowed: false, Reason: "invalid backup file: missing shifts"}
	}
	return GuardResult{Allowed: true}
}
