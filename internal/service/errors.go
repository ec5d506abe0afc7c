package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/salamaline/salama/models"
)

var (
	// ErrInvalidDataProvided is returned when a request is missing a
	// required field or carries a malformed value.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrPINRequired is returned when an operation targets a PIN-protected
	// case and no PIN was supplied. Distinct from [ErrInvalidPIN] so the
	// client can prompt instead of reporting a failure.
	ErrPINRequired = errors.New("PIN required")

	// ErrInvalidPIN is returned when the supplied PIN does not match the
	// stored hash.
	ErrInvalidPIN = errors.New("invalid PIN")

	// ErrInvalidPINFormat is returned when a supplied PIN is not exactly
	// four digits.
	ErrInvalidPINFormat = errors.New("PIN must be exactly 4 digits")

	// ErrCaseIDGenerationFailed is returned when the bounded number of
	// collision retries is exhausted while creating a case.
	ErrCaseIDGenerationFailed = errors.New("could not generate a unique case id")

	// ErrUnknownAction is returned by the consent engine when a requested
	// action has no entry in the action-to-flag table. Unknown actions are
	// always denied.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnknownConsentFlag is returned when a consent update names a flag
	// that does not exist.
	ErrUnknownConsentFlag = errors.New("unknown consent flag")

	// ErrConsentDenied is the base error for every consent refusal.
	// Structured refusals wrap it — see [ConsentRequiredError].
	ErrConsentDenied = errors.New("consent required")

	// ErrInvalidUrgency is returned when a handoff names an urgency outside
	// low/medium/high.
	ErrInvalidUrgency = errors.New("invalid urgency level")

	// ErrVersionIsNotSpecified is returned on startup when the application
	// version is missing from the configuration.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ConsentRequiredError is a consent refusal that names the flags which would
// satisfy the blocked action, so the caller can prompt the user instead of
// failing silently. It matches [ErrConsentDenied] under [errors.Is].
type ConsentRequiredError struct {
	// Flags lists every consent flag that would permit the action.
	// For partner handoff this is both allow_escalation and
	// partner_handoff: either one satisfies the gate.
	Flags []models.ConsentFlag
}

func (e *ConsentRequiredError) Error() string {
	names := make([]string, 0, len(e.Flags))
	for _, f := range e.Flags {
		names = append(names, string(f))
	}
	return fmt.Sprintf("consent required: %s", strings.Join(names, " or "))
}

func (e *ConsentRequiredError) Unwrap() error {
	return ErrConsentDenied
}
