package errors

import "fmt"

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrNameTaken           = fmt.Errorf("display name already taken")
	ErrMalformedAddressing = fmt.Errorf("addressed line has no body")
	ErrSinkClosed          = fmt.Errorf("outbound sink is closed")
	ErrSinkFull            = fmt.Errorf("outbound sink is full")
	ErrLineTooLong         = fmt.Errorf("line exceeds maximum length")
	ErrNotAPhraseFile      = fmt.Errorf("phrase directory contains directories")
	ErrInvalidPayload      = fmt.Errorf("invalid event payload")
	ErrServerShutdown      = fmt.Errorf("server is shutting down")
)
