package domain

import "errors"

// Request-classifiable failures. The HTTP layer maps each of these to a
// status code; anything else becomes a 500.
var (
	ErrCurrencyNotFound     = errors.New("currency not found")
	ErrExchangeRateNotFound = errors.New("exchange rate not found")
	ErrExchangeUnavailable  = errors.New("exchange cannot be performed")
	ErrCurrencyExists       = errors.New("currency already exists")
	ErrExchangeRateExists   = errors.New("exchange rate already exists")
	ErrCurrencyCodeMissing  = errors.New("currency code not specified")
	ErrFieldMissing         = errors.New("required field not specified")
	ErrInvalidCurrencyCode  = errors.New("currency code must be 3 characters long")
	ErrInvalidAmount        = errors.New("amount must be a number")
	ErrInvalidRate          = errors.New("rate must be a positive number")
	ErrInvalidPath          = errors.New("invalid path")
)
