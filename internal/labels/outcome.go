package labels

import (
	"context"
	"strings"
)

// AddLabelPath is the backend endpoint registrations are posted to.
const AddLabelPath = "/api/labels/addLabel"

// Routes the registration flow moves between.
const (
	RouteLabels   = "/labels"
	RouteRegister = "/labels/register"
)

// User-facing notification text.
const (
	MsgCreating       = "Creating account"
	MsgRegistered     = "Label registered successfully!"
	MsgRegisterFailed = "Failed to register label. Please try again."
)

// Response is the backend's reply to a registration.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Registrar submits registrations to the backend.
type Registrar interface {
	AddLabel(ctx context.Context, reg Registration) (Response, error)
}

// OutcomeKind classifies a finished registration call.
type OutcomeKind int

const (
	// OutcomeRegistered means the backend accepted the registration.
	OutcomeRegistered OutcomeKind = iota
	// OutcomeRejected means the backend answered with success=false.
	OutcomeRejected
	// OutcomeFailed means the call itself failed.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRegistered:
		return "registered"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is what the user gets told about a registration call.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Err     error // set for OutcomeFailed
}

// Classify maps the result of Registrar.AddLabel to an Outcome.
func Classify(resp Response, err error) Outcome {
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Message: MsgRegisterFailed, Err: err}
	}
	if resp.Success {
		return Outcome{Kind: OutcomeRegistered, Message: MsgRegistered}
	}
	msg := resp.Message
	if strings.TrimSpace(msg) == "" {
		msg = MsgRegisterFailed
	}
	return Outcome{Kind: OutcomeRejected, Message: msg}
}
