package domain

import "errors"

// Error taxonomy for a single target. Every failure is local to one file;
// callers classify outcomes with errors.Is.
var (
	// ErrNotFound is returned when a configured path does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedDeclaration is returned when no single supported export form matched.
	ErrUnsupportedDeclaration = errors.New("unsupported declaration")
	// ErrAlreadyTransformed is returned when the wrapper call is already present.
	ErrAlreadyTransformed = errors.New("already transformed")
	// ErrMissingAnchor is returned when the wrapper import has nowhere to go.
	ErrMissingAnchor = errors.New("anchor import not found")
	// ErrInvalidModuleTag is returned for tags that cannot be embedded in a single-quoted literal.
	ErrInvalidModuleTag = errors.New("invalid module tag")
	// ErrIO wraps read and write failures.
	ErrIO = errors.New("io failure")
	// ErrDuplicateTarget is returned when two targets resolve to the same file.
	ErrDuplicateTarget = errors.New("duplicate target")
	// ErrRunFailed is returned by the workflow when the batch did not succeed.
	ErrRunFailed = errors.New("run finished with failures")
)
