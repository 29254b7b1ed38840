package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// Length is the requested summary length preset.
type Length string

const (
	LengthShort  Length = "short"
	LengthMedium Length = "medium"
	LengthLong   Length = "long"
)

// Lengths lists the presets in display order.
var Lengths = []Length{LengthShort, LengthMedium, LengthLong}

// ParseLength accepts the wire representation; empty input maps to medium.
func ParseLength(raw string) (Length, error) {
	switch Length(strings.ToLower(strings.TrimSpace(raw))) {
	case "", LengthMedium:
		return LengthMedium, nil
	case LengthShort:
		return LengthShort, nil
	case LengthLong:
		return LengthLong, nil
	default:
		return "", fmt.Errorf("length must be one of short, medium, long: got %q", raw)
	}
}

// Config configures the request lifecycle.
type Config struct {
	Timeout       time.Duration
	DefaultModel  string
	DefaultLength Length
}

// Request is the payload posted to the summarization backend.
type Request struct {
	Text   string `json:"text"`
	Length Length `json:"length"`
	Model  string `json:"model"`
}

// Response is the backend's success body.
type Response struct {
	Summary           string  `json:"summary"`
	OriginalWordCount int     `json:"original_word_count"`
	SummaryWordCount  int     `json:"summary_word_count"`
	CompressionRatio  float64 `json:"compression_ratio"`
}

// Phase is the active variant of an Outcome.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
)

// String returns the string representation of Phase.
func (p Phase) String() string {
	return string(p)
}

// Outcome is the state of the current submission. Response is only meaningful
// in PhaseSuccess and Message only in PhaseFailure.
type Outcome struct {
	Phase        Phase
	SubmissionID string
	Response     Response
	Message      string
}

func idle() Outcome {
	return Outcome{Phase: PhaseIdle}
}

func loading(id string) Outcome {
	return Outcome{Phase: PhaseLoading, SubmissionID: id}
}

func succeeded(id string, resp Response) Outcome {
	return Outcome{Phase: PhaseSuccess, SubmissionID: id, Response: resp}
}

func failed(id, message string) Outcome {
	return Outcome{Phase: PhaseFailure, SubmissionID: id, Message: message}
}
