package models

import "fmt"

// ValidationError reports a missing or invalid required field (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError reports an identifier with no matching record (HTTP 404).
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}

func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// RenderError reports a failure in any stage of invoice rendering (HTTP 500).
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func NewRenderError(stage string, err error) error {
	return &RenderError{Stage: stage, Err: err}
}

// SendError reports an email dispatch failure (HTTP 500). It never affects
// the booking record the notification was about.
type SendError struct {
	Err error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("send email: %v", e.Err)
}

func (e *SendError) Unwrap() error { return e.Err }

func NewSendError(err error) error {
	return &SendError{Err: err}
}
