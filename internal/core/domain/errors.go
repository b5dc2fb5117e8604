package domain

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrEnquiryNotFound     = errors.New("enquiry not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrReceiptNotFound     = errors.New("receipt not found")
)
