package domain

import "errors"

// codedError is a domain error carrying a stable code for the presentation layer.
type codedError struct {
	code string
	msg  string
}

func (e *codedError) Error() string { return e.msg }

func newError(code, msg string) error {
	return &codedError{code: code, msg: msg}
}

// Domain errors.
var (
	ErrAlreadyRegistered    = newError("already_registered", "participant already registered")
	ErrSlotFull             = newError("slot_full", "slot is full")
	ErrNoActiveRegistration = newError("no_active_registration", "no active registration")
	ErrUnknownSlot          = newError("unknown_slot", "unknown slot")
	ErrDisplayNameRequired  = newError("display_name_required", "display name is required")
	ErrStoreRead            = newError("store_read", "row store read failed")
	ErrStoreWrite           = newError("store_write", "row store write failed")
	ErrBusy                 = newError("busy", "ledger busy")
)

// Code returns the code of the first domain error found in err's chain, or "".
func Code(err error) string {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	return ""
}
