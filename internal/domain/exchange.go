package domain

// ExchangeRate is a directed edge: valid from base to target only. The
// reverse rate is not stored implicitly; the resolver derives it when needed.
type ExchangeRate struct {
	ID             int64    `json:"id"`
	BaseCurrency   Currency `json:"baseCurrency"`
	TargetCurrency Currency `json:"targetCurrency"`
	Rate           float64  `json:"rate"`
}

// RateEdge is the stored form of an ExchangeRate, before currency records
// are joined in.
type RateEdge struct {
	ID               int64
	BaseCurrencyID   int64
	TargetCurrencyID int64
	Rate             float64
}

// Exchange is the result of a single conversion. Never persisted.
type Exchange struct {
	BaseCurrency    Currency `json:"baseCurrency"`
	TargetCurrency  Currency `json:"targetCurrency"`
	Rate            float64  `json:"rate"`
	Amount          float64  `json:"amount"`
	ConvertedAmount float64  `json:"convertedAmount"`
}
