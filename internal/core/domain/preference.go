package domain

// UserCurrencyPreference is the per-user allow-list of currency codes the user
// may convert between. At most one record exists per user; AllowedCurrencies is
// replaced wholesale on update.
type UserCurrencyPreference struct {
	UserID            string   `json:"userID"` // Primary Key
	AllowedCurrencies []string `json:"allowedCurrencies"`
	AuditFields
}

// Allows reports whether the given currency code is in the allow-list.
func (p UserCurrencyPreference) Allows(currencyCode string) bool {
	for _, code := range p.AllowedCurrencies {
		if code == currencyCode {
			return true
		}
	}
	return false
}
