package domain

type Currency struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Sign string `json:"sign"`
}

// CurrencyFilter narrows a single-record lookup. When both fields are set
// they are applied together, so a record must match the id AND the code.
type CurrencyFilter struct {
	ID   *int64
	Code *string
}

func ByID(id int64) CurrencyFilter { return CurrencyFilter{ID: &id} }

func ByCode(code string) CurrencyFilter { return CurrencyFilter{Code: &code} }
