// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase is the state of the upload client between and during submissions.
type Phase int

const (
	// PhaseIdle is the initial state and the state after an error is
	// dismissed.
	PhaseIdle Phase = iota
	// PhaseLoading means a submission is in flight.
	PhaseLoading
	// PhaseFailed means the last submission failed; Message holds the reason.
	PhaseFailed
	// PhaseSucceeded means the last submission produced a saved spreadsheet.
	PhaseSucceeded
)

// String returns a lower-case name of the phase for logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseFailed:
		return "failed"
	case PhaseSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

// UIState is a snapshot of the upload client state.
//
// Loading and a failure message are never set together: the phase carries
// exactly one of them.
type UIState struct {
	Phase Phase

	// Message is the error text shown to the user. Set only in PhaseFailed.
	Message string

	// SavedPath is where the last spreadsheet was written. Set only in
	// PhaseSucceeded.
	SavedPath string
}

// Loading reports whether a submission is in flight.
func (s UIState) Loading() bool {
	return s.Phase == PhaseLoading
}

// Error returns the error message, or "" when the state carries none.
func (s UIState) Error() string {
	if s.Phase != PhaseFailed {
		return ""
	}
	return s.Message
}

// Outcome is the resolution of one submission: either succeeded with the
// saved path or failed with a message.
type Outcome struct {
	Phase     Phase
	Message   string
	SavedPath string
}

// Succeeded builds a successful [Outcome].
func Succeeded(savedPath string) Outcome {
	return Outcome{Phase: PhaseSucceeded, SavedPath: savedPath}
}

// Failed builds a failed [Outcome].
func Failed(message string) Outcome {
	return Outcome{Phase: PhaseFailed, Message: message}
}

// OK reports whether the submission succeeded.
func (o Outcome) OK() bool {
	return o.Phase == PhaseSucceeded
}

// State converts the outcome into the resting [UIState] it leaves behind.
func (o Outcome) State() UIState {
	return UIState(o)
}
