package source

import "errors"

var (
	// ErrConnectivity is returned when the remote source is unreachable or
	// produced a malformed response.
	ErrConnectivity = errors.New("record source unreachable")

	// ErrMutation is returned when a remote status write fails. Non-fatal:
	// the caller logs it and accepts the eventual-consistency gap.
	ErrMutation = errors.New("record status mutation failed")

	// ErrRowInvalid is returned (per row) when an incoming row fails schema
	// validation or field mapping. Invalid rows are skipped, never fatal.
	ErrRowInvalid = errors.New("invalid requisition row")
)
