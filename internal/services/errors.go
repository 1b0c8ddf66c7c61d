package services

import "errors"

// ErrClientNotFound is the shared not-found signal for client lookups.
// Handlers translate it to a 404.
var ErrClientNotFound = errors.New("client not found")

// ForbiddenError is a deterministic business rejection: the operation is
// refused based on current data, nothing was mutated. Handlers translate
// it to a 403 carrying the message.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// Rejection messages are part of the API contract and kept stable,
// wording included.
const (
	MsgClientExists      = "Client is already exist!"
	MsgInvalidData       = "Invalid data!"
	MsgClientHasInvoices = "Client remove is forbidden before remove client invoices!"
)
