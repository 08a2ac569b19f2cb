// Package async provides the request slot shared by every session flow.
package async

import (
	"guardianclima.app/pkg/errors"
)

// Status represents the lifecycle state of an operation slot
type Status int

const (
	Idle Status = iota
	Loading
	Succeeded
	Failed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket identifies one started request. Completions carrying a ticket
// issued before the latest Start or Reset are ignored.
type Ticket uint64

// Op holds the state of one request flow. It is not safe for concurrent
// use; the owner serialises access.
type Op[T any] struct {
	status Status
	result T
	err    error
	gen    Ticket
}

// State is a read-only copy of an Op
type State[T any] struct {
	Status Status
	Result T
	Err    error
}

// Start moves the slot to Loading and clears the previous result and error.
func (o *Op[T]) Start() (Ticket, error) {
	return o.begin(true)
}

// Refresh moves the slot to Loading but keeps the current result visible
// until the response arrives.
func (o *Op[T]) Refresh() (Ticket, error) {
	return o.begin(false)
}

func (o *Op[T]) begin(clear bool) (Ticket, error) {
	if o.status == Loading {
		return 0, errors.NewBusyError("a request is already in progress")
	}
	o.gen++
	o.status = Loading
	o.err = nil
	if clear {
		var zero T
		o.result = zero
	}
	return o.gen, nil
}

// Succeed stores the result of the request identified by ticket.
// It reports false when the ticket is stale.
func (o *Op[T]) Succeed(ticket Ticket, result T) bool {
	if ticket != o.gen || o.status != Loading {
		return false
	}
	o.status = Succeeded
	o.result = result
	o.err = nil
	return true
}

// Fail stores the error of the request identified by ticket.
// It reports false when the ticket is stale.
func (o *Op[T]) Fail(ticket Ticket, err error) bool {
	if ticket != o.gen || o.status != Loading {
		return false
	}
	var zero T
	o.status = Failed
	o.result = zero
	o.err = err
	return true
}

// Reset returns the slot to Idle and invalidates any outstanding ticket.
func (o *Op[T]) Reset() {
	var zero T
	o.gen++
	o.status = Idle
	o.result = zero
	o.err = nil
}

// Set replaces the result directly, outside of a request cycle.
func (o *Op[T]) Set(result T) {
	if o.status != Loading {
		o.status = Succeeded
	}
	o.result = result
	o.err = nil
}

// Update applies fn to the current result. The status is left untouched
// so an in-flight refresh still lands.
func (o *Op[T]) Update(fn func(T) T) {
	o.result = fn(o.result)
	if o.status == Idle || o.status == Failed {
		o.status = Succeeded
		o.err = nil
	}
}

func (o *Op[T]) IsLoading() bool {
	return o.status == Loading
}

func (o *Op[T]) Result() T {
	return o.result
}

func (o *Op[T]) Err() error {
	return o.err
}

// Snapshot returns a copy of the slot
func (o *Op[T]) Snapshot() State[T] {
	return State[T]{Status: o.status, Result: o.result, Err: o.err}
}

// IsLoading reports whether the captured slot was loading
func (s State[T]) IsLoading() bool {
	return s.Status == Loading
}

// ErrorMessage returns the user facing message of the captured error, if any
func (s State[T]) ErrorMessage() string {
	if s.Err == nil {
		return ""
	}
	return errors.UserMessage(s.Err)
}
