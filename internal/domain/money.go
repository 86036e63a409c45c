package domain

import "github.com/shopspring/decimal"

// Money and ratio fields are decimal.Decimal. Clients read them as JSON
// numbers, so every payload built from these types encodes them unquoted.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
