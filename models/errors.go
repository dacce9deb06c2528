package models

import "errors"

var (
	// ErrForbidden means the actor lacks the role, permission or ownership
	// required for the requested operation. Terminal: retrying without a
	// role change cannot succeed.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTransition means the requested target state is not reachable
	// from the article's current state under any rule.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrScheduleConflict means a competing schedule request for the same
	// article interleaved with this one.
	ErrScheduleConflict = errors.New("schedule conflict")
)
