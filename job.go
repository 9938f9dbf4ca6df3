package anyon

import "time"

// Job represents work to be done
type Job struct {
	ID        string
	Fn        func() (any, error)
	StartTime time.Time
}

// Result wraps the outcome of a Job with metadata
type Result struct {
	Value     any
	Error     error
	CreatedAt time.Time
}
