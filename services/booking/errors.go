package booking

import (
	"errors"
	"fmt"
)

// Outcome codes for a submission attempt. Each non-success outcome is a
// distinct, inspectable value; none is fatal to the process.
const (
	CodeInvalidRequest  = "invalidRequest"
	CodeSlotTaken       = "slotTaken"
	CodePaymentDeclined = "paymentDeclined"
	CodePaymentService  = "paymentServiceError"
	CodePersistence     = "persistenceFailed"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidRequestError(msg string) error {
	return &BookingError{Code: CodeInvalidRequest, Message: msg}
}

func NewSlotTakenError(date, slot string) error {
	return &BookingError{
		Code:    CodeSlotTaken,
		Message: fmt.Sprintf("the %s slot on %s has just been booked, please pick another time", slot, date),
	}
}

func NewPaymentDeclinedError(reason string) error {
	return &BookingError{Code: CodePaymentDeclined, Message: reason}
}

func NewPaymentServiceError(msg string) error {
	return &BookingError{Code: CodePaymentService, Message: msg}
}

func NewPersistenceError(msg string) error {
	return &BookingError{Code: CodePersistence, Message: msg}
}

// ErrCode extracts the outcome code from err, or "" when err is not a
// BookingError.
func ErrCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
