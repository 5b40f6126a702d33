package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrInvalidAmount = errors.New("Invalid amount")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrInvalidLoanReference = errors.New("Invalid loan reference")
var ErrInvalidLoanTerm = errors.New("Invalid loan term")
var ErrLoanAlreadyPaidOff = errors.New("Loan already paid off")
var ErrPaymentBelowMinimum = errors.New("Payment below minimum monthly payment")
var ErrUnsupportedOperation = errors.New("Operation not supported for this account type")
var ErrAccountInactive = errors.New("Account is inactive")
