package service

import "errors"

var (
	// ErrRecordNotFound is returned when a workflow operation targets an
	// identifier absent from the current snapshot.
	ErrRecordNotFound = errors.New("requisition record not found")
)
