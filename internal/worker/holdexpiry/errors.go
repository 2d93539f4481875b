package holdexpiry

import "errors"

var (
	ErrAlreadyRunning = errors.New("holdexpiry: worker already running")
	ErrInvalidConfig  = errors.New("holdexpiry: invalid config")
)
