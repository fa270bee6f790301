// Package errors provides structured error types for agentchat.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindIO
	KindNetwork
	KindStatus
	KindDecode
	KindConfig
	KindTimeout
	KindEmptyReply
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindStatus:
		return "unexpected status"
	case KindDecode:
		return "decode error"
	case KindConfig:
		return "configuration error"
	case KindTimeout:
		return "timeout"
	case KindEmptyReply:
		return "empty reply"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for agentchat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Chat endpoint errors

func RequestFailed(op Op, endpoint string, err error) error {
	return E(op, KindNetwork, fmt.Sprintf("request to %s failed", endpoint), err)
}

func RequestTimeout(op Op, endpoint string, err error) error {
	return E(op, KindTimeout, fmt.Sprintf("request to %s timed out", endpoint), err)
}

func SendFailed(endpoint string, err error) error {
	return RequestFailed(Op("chat.Send"), endpoint, err)
}

func BadStatus(op Op, status int, body string) error {
	if body == "" {
		return E(op, KindStatus, fmt.Sprintf("server returned status %d", status))
	}
	return E(op, KindStatus, fmt.Sprintf("server returned status %d: %s", status, body))
}

func DecodeFailed(op Op, err error) error {
	return E(op, KindDecode, "failed to decode response body", err)
}

func EmptyReply() error {
	return E(Op("chat.Send"), KindEmptyReply, "response had no ai_response")
}

func EmptyMessage() error {
	return E(Op("chat.Send"), KindInvalid, "message is empty")
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
