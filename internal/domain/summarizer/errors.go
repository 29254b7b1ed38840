package summarizer

import (
	"fmt"

	apperrors "github.com/yanqian/summarizer-console/pkg/errors"
)

// User facing failure messages.
const (
	MsgEmptyInput     = "Please enter some text to summarize."
	MsgTooShort       = "Text is too short. Please enter at least 5 words."
	MsgEmptySummary   = "Received empty summary from server."
	MsgTimeout        = "Request timed out. The server might be busy loading the model. Please try again."
	MsgUnreachable    = "Failed to connect to backend. Is the server running on port 8000?"
	MsgConnectFailure = "Failed to connect to the server."
)

// MinWords is the smallest accepted input, counted in whitespace separated tokens.
const MinWords = 5

// ErrSubmissionInFlight rejects a submit while another request is pending.
var ErrSubmissionInFlight = apperrors.Wrap(apperrors.CodeSubmissionInFlight, "a summarization request is already in flight", nil)

// Reason tells why a backend call failed.
type Reason string

const (
	ReasonCancelled   Reason = "cancelled"
	ReasonUnreachable Reason = "unreachable"
	ReasonHTTPStatus  Reason = "http_status"
	ReasonDecode      Reason = "decode"
	ReasonTransport   Reason = "transport"
)

// CallError is returned by Backend implementations. StatusCode and Detail are
// set for ReasonHTTPStatus; Detail holds the server supplied message, if any.
type CallError struct {
	Reason     Reason
	StatusCode int
	Detail     string
	Err        error
}

func (e *CallError) Error() string {
	switch {
	case e.Reason == ReasonHTTPStatus && e.Detail != "":
		return e.Detail
	case e.Reason == ReasonHTTPStatus:
		return fmt.Sprintf("summarize request failed: status=%d", e.StatusCode)
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Reason)
	}
}

func (e *CallError) Unwrap() error {
	return e.Err
}
