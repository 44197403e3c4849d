package currency

import "currency-exchange/internal/domain"

const codeLength = 3

// ValidateCode rejects anything that is not exactly three characters. Codes
// are matched byte-for-byte as supplied; there is no case normalization.
func ValidateCode(code string) error {
	if len(code) != codeLength {
		return domain.ErrInvalidCurrencyCode
	}
	return nil
}
